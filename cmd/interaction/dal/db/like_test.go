package db

import (
	"context"
	"testing"

	"VidTube.com/config"
)

// Toggle round trip against a real database. Needs the mysql instance
// from config.yml, so it is skipped in short mode.
func TestVideoLikeToggleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	config.Init()
	Init()

	ctx := context.Background()
	const userId, videoId = int64(900001), int64(900002)

	// Start clean regardless of previous runs.
	if _, err := DeleteVideoLikeIfPresent(ctx, userId, videoId); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	created, err := InsertVideoLikeIfAbsent(ctx, userId, videoId)
	if err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if !created {
		t.Fatal("first insert should create the row")
	}

	created, err = InsertVideoLikeIfAbsent(ctx, userId, videoId)
	if err != nil {
		t.Fatalf("second insert failed: %v", err)
	}
	if created {
		t.Fatal("second insert must be absorbed by the unique index")
	}

	liked, err := IsVideoLikedByUser(ctx, userId, videoId)
	if err != nil {
		t.Fatalf("liked check failed: %v", err)
	}
	if !liked {
		t.Fatal("row should exist after insert")
	}

	deleted, err := DeleteVideoLikeIfPresent(ctx, userId, videoId)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("delete should remove the existing row")
	}

	deleted, err = DeleteVideoLikeIfPresent(ctx, userId, videoId)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted {
		t.Fatal("second delete must be a no-op")
	}
}
