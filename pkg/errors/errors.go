package errors

import (
	"errors"
	"fmt"

	"nextrade/pkg/errors/ecode"
)

// 带业务错误码的error，供response层解码后返回给客户端

type codedError struct {
	code int
	msg  string
	err  error
}

func (e *codedError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *codedError) Unwrap() error {
	return e.err
}

// WithCode 创建一个带错误码的error
func WithCode(code int, msg string) error {
	if msg == "" {
		msg = ecode.Text(code)
	}
	return &codedError{code: code, msg: msg}
}

// Wrap 把底层error包装上业务错误码
func Wrap(err error, code int, msg string) error {
	if msg == "" {
		msg = ecode.Text(code)
	}
	return &codedError{code: code, msg: msg, err: err}
}

// DecodeErr 解析error中的错误码和提示信息
// nil 返回 Success
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Text(ecode.Success)
	}

	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code, ce.msg
	}
	return ecode.Unknown, err.Error()
}
