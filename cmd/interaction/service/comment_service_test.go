package service

import (
	"strings"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestValidateCommentContent(t *testing.T) {
	assert.NoError(t, validateCommentContent("nice video"))
	assert.NoError(t, validateCommentContent(strings.Repeat("a", 500)))
}

func TestValidateCommentContentEmpty(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		err := validateCommentContent(content)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	}
}

func TestValidateCommentContentTooLong(t *testing.T) {
	err := validateCommentContent(strings.Repeat("a", 501))
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestValidateCommentContentCountsRunes(t *testing.T) {
	// 500 multi-byte characters are still 500 characters.
	assert.NoError(t, validateCommentContent(strings.Repeat("你", 500)))
	err := validateCommentContent(strings.Repeat("你", 501))
	assert.Error(t, err)
}
