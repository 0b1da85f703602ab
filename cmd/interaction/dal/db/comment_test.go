package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseCommentRowsPreservesOrder(t *testing.T) {
	rows := []commentOwnerRow{
		{CommentId: 3, UserId: 9, Content: "newest", OwnerUserName: "alice"},
		{CommentId: 2, UserId: 8, Content: "middle", OwnerUserName: "bob"},
		{CommentId: 1, UserId: 7, Content: "oldest", OwnerUserName: "carol"},
	}
	comments := collapseCommentRows(rows)

	assert.Len(t, comments, 3)
	assert.Equal(t, int64(3), comments[0].CommentId)
	assert.Equal(t, int64(2), comments[1].CommentId)
	assert.Equal(t, int64(1), comments[2].CommentId)
}

func TestCollapseCommentRowsEmbedsOwnerProjection(t *testing.T) {
	rows := []commentOwnerRow{{
		CommentId:      5,
		UserId:         11,
		VideoId:        20,
		Content:        "great video",
		OwnerUserName:  "erin",
		OwnerFullName:  "Erin E",
		OwnerAvatarUrl: "http://cdn/e.png",
	}}
	comments := collapseCommentRows(rows)

	assert.Len(t, comments, 1)
	comment := comments[0]
	assert.Equal(t, "great video", comment.Content)
	assert.NotNil(t, comment.Owner)
	assert.Equal(t, int64(11), comment.Owner.UserId)
	assert.Equal(t, "erin", comment.Owner.UserName)
	assert.Equal(t, "http://cdn/e.png", comment.Owner.AvatarUrl)
}

// A video without comments is a valid empty page.
func TestCollapseCommentRowsEmpty(t *testing.T) {
	comments := collapseCommentRows(nil)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
