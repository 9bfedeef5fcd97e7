package aws

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrorKind is a normalized category for AWS/API failures.
type ErrorKind string

const (
	ErrorKindAccessDenied ErrorKind = "access_denied"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindThrottled    ErrorKind = "throttled"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindTimeout      ErrorKind = "timeout"
	ErrorKindUnknown      ErrorKind = "unknown"
)

// hint is appended to the message of a classified error.
func (k ErrorKind) hint() string {
	switch k {
	case ErrorKindAccessDenied:
		return "check the credentials selected by --profile and the bucket policy"
	case ErrorKindThrottled:
		return "S3 is throttling requests, rerun the release step"
	case ErrorKindValidation:
		return "check the bucket and prefix of the s3:// record base"
	default:
		return ""
	}
}

// ClassifiedError wraps an error with a normalized category and the service
// error code. It unwraps to the original error, so context cancellation stays
// visible to errors.Is.
type ClassifiedError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e ClassifiedError) Error() string {
	msg := e.Message
	switch {
	case msg != "":
	case e.Err != nil:
		msg = e.Err.Error()
	default:
		msg = string(e.Kind)
	}
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if hint := e.Kind.hint(); hint != "" {
		msg += "; " + hint
	}
	return msg
}

func (e ClassifiedError) Unwrap() error {
	return e.Err
}

// ClassifyError maps context and AWS smithy API errors into normalized categories.
func ClassifyError(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{Kind: ErrorKindUnknown}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ClassifiedError{
			Kind:    ErrorKindTimeout,
			Message: "request canceled before S3 returned a response",
			Err:     err,
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.ErrorMessage()
		if message == "" {
			message = err.Error()
		}
		return ClassifiedError{
			Kind:    classifyByCode(apiErr.ErrorCode()),
			Code:    apiErr.ErrorCode(),
			Message: message,
			Err:     err,
		}
	}

	return ClassifiedError{Kind: ErrorKindUnknown, Message: err.Error(), Err: err}
}

func classifyByCode(code string) ErrorKind {
	lower := strings.ToLower(code)
	switch {
	case strings.Contains(lower, "accessdenied"), strings.Contains(lower, "unauthorized"),
		strings.Contains(lower, "forbidden"):
		return ErrorKindAccessDenied
	case strings.Contains(lower, "notfound"), strings.Contains(lower, "nosuch"):
		return ErrorKindNotFound
	case lower == "slowdown", strings.Contains(lower, "throttl"):
		return ErrorKindThrottled
	case strings.HasPrefix(lower, "invalid"), strings.Contains(lower, "validation"):
		return ErrorKindValidation
	default:
		return ErrorKindUnknown
	}
}
