package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Watch history order is carried entirely by row order; the collapse must
// not disturb it.
func TestCollapseWatchRowsPreservesOrder(t *testing.T) {
	rows := []watchHistoryRow{
		{VideoId: 30, UserId: 3, Title: "watched first", OwnerUserName: "carol"},
		{VideoId: 10, UserId: 1, Title: "watched second", OwnerUserName: "alice"},
		{VideoId: 20, UserId: 2, Title: "watched third", OwnerUserName: "bob"},
	}
	history := collapseWatchRows(rows)

	assert.Len(t, history, 3)
	assert.Equal(t, int64(30), history[0].VideoId)
	assert.Equal(t, int64(10), history[1].VideoId)
	assert.Equal(t, int64(20), history[2].VideoId)
}

// Each entry carries exactly one embedded owner object, not a list.
func TestCollapseWatchRowsEmbedsSingleOwner(t *testing.T) {
	rows := []watchHistoryRow{{
		VideoId:        7,
		UserId:         4,
		Title:          "tutorial",
		LikesCount:     12,
		OwnerUserName:  "dave",
		OwnerFullName:  "Dave D",
		OwnerAvatarUrl: "http://cdn/d.png",
	}}
	history := collapseWatchRows(rows)

	assert.Len(t, history, 1)
	entry := history[0]
	assert.Equal(t, int64(12), entry.LikesCount)
	assert.NotNil(t, entry.Owner)
	assert.Equal(t, int64(4), entry.Owner.UserId)
	assert.Equal(t, "dave", entry.Owner.UserName)
	assert.Equal(t, "Dave D", entry.Owner.FullName)
}

func TestCollapseWatchRowsEmpty(t *testing.T) {
	history := collapseWatchRows(nil)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
