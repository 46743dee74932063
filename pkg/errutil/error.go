package errutil

import (
	"fmt"
)

type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BaseError struct {
	Code    Kind     `json:"code"`
	Message string   `json:"message"`
	Details []Detail `json:"details,omitempty"`
	Err     error    `json:"-"`
}

func (e BaseError) Status() Kind {
	return e.Code
}

func (e BaseError) JSON() interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"code":    e.Code,
			"message": e.messageWithErr(),
			"details": e.Details,
		},
	}
}

func (e BaseError) Unwrap() error {
	return e.Err
}

func (e BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.messageWithErr())
}

func (e BaseError) messageWithErr() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

type Option func(*BaseError)

func WithDetails(details ...Detail) Option {
	return func(be *BaseError) { be.Details = details }
}

func WithErr(err error) Option {
	return func(be *BaseError) { be.Err = err }
}

func New(code Kind, message string, opts ...Option) error {
	be := BaseError{Code: code, Message: message}
	for _, opt := range opts {
		opt(&be)
	}
	return be
}

func Validation(msg string, details ...Detail) error {
	return New(KindValidation, msg, WithDetails(details...))
}

func Transition(msg string, options ...Option) error {
	return New(KindTransition, msg, options...)
}

func Authorization(msg string, options ...Option) error {
	return New(KindAuthorization, msg, options...)
}

func NotFound(msg string, options ...Option) error {
	return New(KindNotFound, msg, options...)
}

func Conflict(msg string, options ...Option) error {
	return New(KindConflict, msg, options...)
}

func Persistence(msg string, err error, options ...Option) error {
	options = append(options, WithErr(err))
	return New(KindPersistence, msg, options...)
}

func Internal(msg string, err error, options ...Option) error {
	options = append(options, WithErr(err))
	return New(KindInternal, msg, options...)
}
