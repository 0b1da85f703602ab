package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToProfiles(t *testing.T) {
	rows := []subscriptionUserRow{
		{UserId: 1, UserName: "alice", FullName: "Alice A", AvatarUrl: "http://cdn/a.png"},
		{UserId: 2, UserName: "bob", FullName: "Bob B", AvatarUrl: ""},
	}
	profiles := toProfiles(rows)

	assert.Len(t, profiles, 2)
	assert.Equal(t, int64(1), profiles[0].UserId)
	assert.Equal(t, "alice", profiles[0].UserName)
	assert.Equal(t, "Bob B", profiles[1].FullName)
}

func TestToProfilesEmpty(t *testing.T) {
	profiles := toProfiles(nil)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}
