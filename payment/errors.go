package payment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPayment is matched by every error the gateway itself reports.
	ErrPayment = errors.New("gmo payment error")

	ErrInvalidParams = errors.New("invalid parameters")
	ErrInvalidConfig = errors.New("invalid client configuration")
	ErrUnknownOp     = errors.New("unknown operation")
)

// APIError is returned when a response body carries ErrInfo.
type APIError struct {
	Response Response
	Locale   Locale
	Codes    []string
	Infos    []string
	Messages []string
}

func newAPIError(res Response, locale Locale) *APIError {
	e := &APIError{
		Response: res,
		Locale:   locale,
		Codes:    res.List(string(ErrCode)),
		Infos:    res.List(string(ErrInfo)),
	}
	e.Messages = make([]string, len(e.Infos))
	for i, info := range e.Infos {
		e.Messages[i] = Message(info, locale)
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ErrCode=%s&ErrInfo=%s&ErrMessage=%s",
		e.Response.Get(string(ErrCode)),
		e.Response.Get(string(ErrInfo)),
		strings.Join(e.Messages, "|"),
	)
}

func (e *APIError) Unwrap() error { return ErrPayment }

// HasInfo reports whether the gateway returned the given detail code.
func (e *APIError) HasInfo(code string) bool {
	for _, info := range e.Infos {
		if info == code {
			return true
		}
	}
	return false
}

// ServerError is returned for any non-2xx HTTP status.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("gmo server error: status %d", e.StatusCode)
}

func (e *ServerError) Unwrap() error { return ErrPayment }

// MissingParamsError lists the required fields absent from a call.
type MissingParamsError struct {
	Operation string
	Fields    []Field
}

func (e *MissingParamsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: required parameters missing: %s", e.Operation, strings.Join(names, ", "))
}

func (e *MissingParamsError) Unwrap() error { return ErrInvalidParams }
