package errno

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	AuthorizationFailedCode = 10003
	TokenInvalidCode        = 10004
	RecordNotFoundCode      = 10005
	ForbiddenCode           = 10006
	PolicyViolationCode     = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage keeps the code and replaces the display message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr             = NewErrNo(ParamErrCode, "Invalid request")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	TokenInvalidErr        = NewErrNo(TokenInvalidCode, "Token is invalid")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundCode, "Record not found")
	ForbiddenErr           = NewErrNo(ForbiddenCode, "You do not have permission to operate this resource")
	PolicyViolationErr     = NewErrNo(PolicyViolationCode, "Operation violates platform policy")
)

// ConvertErr maps an arbitrary error to an ErrNo. Store-level not-found
// errors become RecordNotFoundErr, everything unrecognized becomes
// ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordNotFoundErr
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
