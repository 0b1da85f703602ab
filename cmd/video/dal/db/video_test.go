package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColumnWhitelist(t *testing.T) {
	assert.Equal(t, "created_at", SortColumn("created_at"))
	assert.Equal(t, "duration", SortColumn("duration"))
	assert.Equal(t, "visit_count", SortColumn("visit_count"))
	assert.Equal(t, "likes_count", SortColumn("likes_count"))
}

func TestSortColumnRejectsUnknownFields(t *testing.T) {
	assert.Equal(t, "created_at", SortColumn(""))
	assert.Equal(t, "created_at", SortColumn("unknown"))
	assert.Equal(t, "created_at", SortColumn("created_at; drop table videos"))
}
