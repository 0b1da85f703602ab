package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErrNil(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))
}

func TestConvertErrKeepsErrNo(t *testing.T) {
	err := ParamErr.WithMessage("bad video id")
	converted := ConvertErr(err)
	assert.Equal(t, int64(ParamErrCode), converted.ErrCode)
	assert.Equal(t, "bad video id", converted.ErrMsg)
}

func TestConvertErrWrappedErrNo(t *testing.T) {
	err := errors.Wrap(ForbiddenErr, "delete comment")
	converted := ConvertErr(err)
	assert.Equal(t, int64(ForbiddenCode), converted.ErrCode)
}

func TestConvertErrRecordNotFound(t *testing.T) {
	converted := ConvertErr(gorm.ErrRecordNotFound)
	assert.Equal(t, int64(RecordNotFoundCode), converted.ErrCode)
}

func TestConvertErrUnknown(t *testing.T) {
	converted := ConvertErr(errors.New("connection refused"))
	assert.Equal(t, int64(ServiceErrCode), converted.ErrCode)
	assert.Equal(t, "connection refused", converted.ErrMsg)
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	custom := ParamErr.WithMessage("custom")
	assert.Equal(t, "custom", custom.ErrMsg)
	assert.Equal(t, "Wrong Parameter has been given", ParamErr.ErrMsg)
}
