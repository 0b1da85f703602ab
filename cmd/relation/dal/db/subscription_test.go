package db

import (
	"context"
	"testing"

	"VidTube.com/config"
)

func TestSubscriptionToggleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	config.Init()
	Init()

	ctx := context.Background()
	const subscriberId, channelId = int64(910001), int64(910002)

	if _, err := DeleteSubscriptionIfPresent(ctx, subscriberId, channelId); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	created, err := InsertSubscriptionIfAbsent(ctx, subscriberId, channelId)
	if err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}

	created, err = InsertSubscriptionIfAbsent(ctx, subscriberId, channelId)
	if err != nil {
		t.Fatalf("second insert failed: %v", err)
	}
	if created {
		t.Fatal("second insert must be absorbed by the unique index")
	}

	count, err := GetSubscriberCount(ctx, channelId)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count < 1 {
		t.Fatalf("expected at least one subscriber, got %d", count)
	}

	deleted, err := DeleteSubscriptionIfPresent(ctx, subscriberId, channelId)
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
}
