package utils

import (
	"testing"

	"VidTube.com/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(123), Transfer(int64(123)))
	assert.Equal(t, int64(123), Transfer(float64(123)))
	assert.Equal(t, int64(123), Transfer("123"))
	assert.Equal(t, int64(-1), Transfer("not-a-number"))
	assert.Equal(t, int64(-1), Transfer(nil))
}

func TestNormalizePage(t *testing.T) {
	num, size := NormalizePage(0, 0)
	assert.Equal(t, int64(constants.DefaultPageNum), num)
	assert.Equal(t, int64(constants.DefaultPageSize), size)

	num, size = NormalizePage(-3, -10)
	assert.Equal(t, int64(constants.DefaultPageNum), num)
	assert.Equal(t, int64(constants.DefaultPageSize), size)

	num, size = NormalizePage(5, 1000)
	assert.Equal(t, int64(5), num)
	assert.Equal(t, int64(constants.MaxPageSize), size)

	num, size = NormalizePage(2, 20)
	assert.Equal(t, int64(2), num)
	assert.Equal(t, int64(20), size)
}

// The DAL computes offsets as (pageNum-1)*pageSize; normalized values
// must keep that non-negative and bounded for any request input.
func TestNormalizePageOffsetBounds(t *testing.T) {
	for _, in := range [][2]int64{{-100, -100}, {0, 0}, {1, 1}, {999, 99999}} {
		num, size := NormalizePage(in[0], in[1])
		offset := (num - 1) * size
		assert.GreaterOrEqual(t, offset, int64(0))
		assert.LessOrEqual(t, size, int64(constants.MaxPageSize))
		assert.GreaterOrEqual(t, size, int64(1))
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(1))
	assert.False(t, IsValidID(0))
	assert.False(t, IsValidID(-5))
}

func TestConvertInt64ToString(t *testing.T) {
	assert.Equal(t, "9007199254740993", ConvertInt64ToString(9007199254740993))
}

func TestSnowflakeUnique(t *testing.T) {
	sf, err := NewSnowflake(1, 1)
	assert.NoError(t, err)

	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := sf.GenerateID()
		assert.True(t, id > 0)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate snowflake id %d", id)
		seen[id] = struct{}{}
	}
}

func TestCryptRoundTrip(t *testing.T) {
	hash, err := Crypt("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	err, ok := VerifyPassword("s3cret", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, ok = VerifyPassword("wrong", hash)
	assert.False(t, ok)
}
