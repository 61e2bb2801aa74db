// Package errors defines the coded errors paraflow reports to users.
//
// Every failure that reaches the CLI or the HTTP API carries a [Code]. The
// code decides the HTTP status ([HTTPStatus]) and the process exit status
// ([ExitCode]); the message is what a person reads ([UserMessage]).
//
// Codes group into four families:
//   - INVALID_*: the caller supplied bad text, options or configuration
//   - NOT_FOUND, FILE_NOT_FOUND: a named resource is missing
//   - NETWORK_ERROR, TIMEOUT, RATE_LIMITED, UNAVAILABLE: an upstream failed
//   - INTERNAL_ERROR, UNSUPPORTED: a bug or a missing feature
//
// Create and inspect errors with [New], [Wrap] and [Is]:
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) { ... }
//
//	err = errors.Wrap(errors.ErrCodeNetwork, cause, "describe %q", topic)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeUnavailable Code = "UNAVAILABLE"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Exit statuses returned by [ExitCode].
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitUpstream = 3
)

type codeInfo struct {
	status int
	exit   int
}

var codes = map[Code]codeInfo{
	ErrCodeInvalidInput:   {http.StatusBadRequest, ExitUsage},
	ErrCodeInvalidFormat:  {http.StatusBadRequest, ExitUsage},
	ErrCodeInvalidVizType: {http.StatusBadRequest, ExitUsage},
	ErrCodeInvalidConfig:  {http.StatusBadRequest, ExitUsage},
	ErrCodeNotFound:       {http.StatusNotFound, ExitFailure},
	ErrCodeFileNotFound:   {http.StatusNotFound, ExitFailure},
	ErrCodeNetwork:        {http.StatusBadGateway, ExitUpstream},
	ErrCodeTimeout:        {http.StatusGatewayTimeout, ExitUpstream},
	ErrCodeRateLimited:    {http.StatusTooManyRequests, ExitUpstream},
	ErrCodeUnavailable:    {http.StatusServiceUnavailable, ExitUpstream},
	ErrCodeUnsupported:    {http.StatusNotImplemented, ExitFailure},
	ErrCodeInternal:       {http.StatusInternalServerError, ExitFailure},
}

// Error is an error with a [Code] and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an [Error] with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is [New] with a cause, which stays reachable through errors.Is and
// errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost [Error] in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the outermost [Error] in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	if e, ok := as[*Error](err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns err's message without the code prefix or cause.
func UserMessage(err error) string {
	if e, ok := as[*Error](err); ok {
		return e.Message
	}
	if rl, ok := as[*RateLimitedError](err); ok {
		return rl.Error()
	}
	return err.Error()
}

// RateLimitedError reports an upstream 429. RetryAfter is in seconds and
// zero when the upstream did not say.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter <= 0 {
		return "rate limited"
	}
	return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
}

// Code returns [ErrCodeRateLimited].
func (e *RateLimitedError) Code() Code { return ErrCodeRateLimited }

// CodeOf is [GetCode] that also recognizes [RateLimitedError] and falls
// back to [ErrCodeInternal].
func CodeOf(err error) Code {
	if _, ok := as[*RateLimitedError](err); ok {
		return ErrCodeRateLimited
	}
	if c := GetCode(err); c != "" {
		return c
	}
	return ErrCodeInternal
}

// HTTPStatus maps err to the status the HTTP API responds with. Uncoded
// errors map to 500.
func HTTPStatus(err error) int {
	if info, ok := codes[CodeOf(err)]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// ExitCode maps err to a process exit status: 0 for nil, [ExitUsage] for
// invalid input, [ExitUpstream] for upstream failures and [ExitFailure]
// otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if info, ok := codes[CodeOf(err)]; ok {
		return info.exit
	}
	return ExitFailure
}

func as[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
