package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"VidTube.com/pkg/utils"
)

// CheckUser must report a credential mismatch as ok=false with no error;
// a non-nil error is reserved for store failures so the service layer can
// answer 5xx instead of "incorrect username or password".
func TestCheckUserCredentialContract(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	config.Init()
	Init()

	ctx := context.Background()
	username := fmt.Sprintf("checkuser_%d", time.Now().UnixNano())
	hashed, err := utils.Crypt("right-password")
	if err != nil {
		t.Fatalf("crypt failed: %v", err)
	}
	user := &model.User{
		UserId:   utils.GenerateID(),
		UserName: username,
		Email:    username + "@example.com",
	}
	if err := CreateUser(ctx, user, hashed); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	got, err, ok := CheckUser(ctx, username, "right-password")
	if err != nil || !ok {
		t.Fatalf("valid credential: ok=%v err=%v", ok, err)
	}
	if got.UserId != user.UserId {
		t.Fatalf("expected user %d, got %d", user.UserId, got.UserId)
	}

	_, err, ok = CheckUser(ctx, username, "wrong-password")
	if ok {
		t.Fatal("wrong password must not authenticate")
	}
	if err != nil {
		t.Fatalf("wrong password is a mismatch, not a store failure: %v", err)
	}

	_, err, ok = CheckUser(ctx, "no_such_user_ever", "whatever")
	if ok {
		t.Fatal("unknown user must not authenticate")
	}
	if err != nil {
		t.Fatalf("unknown user is a mismatch, not a store failure: %v", err)
	}
}
