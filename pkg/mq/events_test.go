package mq

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Comment like events must not carry a zero video_id: the consumer keys
// its reconciliation off whichever target id is present.
func TestLikeEventOmitsAbsentTarget(t *testing.T) {
	event := &LikeEvent{
		EventID:    "evt-1",
		UserID:     7,
		CommentID:  42,
		ActionType: "like",
		Timestamp:  1700000000,
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(body), "video_id"))
	assert.True(t, strings.Contains(string(body), `"comment_id":42`))
}
