package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ErrorCode classifies JSON-RPC protocol and application errors.
type ErrorCode int64

// Reserved JSON-RPC 2.0 error codes.
const (
	CodeParseError     ErrorCode = -32700
	CodeInvalidRequest ErrorCode = -32600
	CodeMethodNotFound ErrorCode = -32601
	CodeInvalidParams  ErrorCode = -32602
	CodeInternalError  ErrorCode = -32603
)

// Message returns the canonical message text for the code. Codes outside
// the reserved set map to "Server error".
func (c ErrorCode) Message() string {
	switch c {
	case CodeParseError:
		return "Parse error"
	case CodeInvalidRequest:
		return "Invalid Request"
	case CodeMethodNotFound:
		return "Method not found"
	case CodeInvalidParams:
		return "Invalid params"
	case CodeInternalError:
		return "Internal error"
	default:
		return "Server error"
	}
}

// Error represents a JSON-RPC 2.0 error object: the payload of an error
// response. Treat a constructed Error as immutable; WithData returns a
// copy instead of mutating.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewError creates an Error carrying the canonical message for code.
func NewError(code ErrorCode) *Error {
	return &Error{Code: int64(code), Message: code.Message()}
}

// NewCustomError creates an Error from an application-defined code and
// message.
func NewCustomError(code int64, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewParseError creates a parse error (-32700).
func NewParseError() *Error {
	return NewError(CodeParseError)
}

// NewInvalidRequest creates an invalid request error (-32600).
func NewInvalidRequest() *Error {
	return NewError(CodeInvalidRequest)
}

// NewMethodNotFound creates a method not found error (-32601).
func NewMethodNotFound() *Error {
	return NewError(CodeMethodNotFound)
}

// NewInvalidParams creates an invalid params error (-32602).
func NewInvalidParams() *Error {
	return NewError(CodeInvalidParams)
}

// NewInternalError creates an internal error (-32603).
func NewInternalError() *Error {
	return NewError(CodeInternalError)
}

// NewServerError creates an implementation-defined server error with the
// given code.
func NewServerError(code int64) *Error {
	return &Error{Code: code, Message: ErrorCode(code).Message()}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: %s (code: %d)", e.Message, e.Code)
}

// Is implements errors.Is comparison by error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithData returns a copy of the error with additional data attached.
func (e *Error) WithData(data any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Data:    data,
	}
}

// toValue returns the error object as a generic JSON value tree.
func (e *Error) toValue() any {
	v := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if e.Data != nil {
		v["data"] = e.Data
	}
	return v
}

// errorFromValue validates a decoded JSON value as an error object: an
// object with an integer "code" and a string "message", optionally "data".
func errorFromValue(v any) (*Error, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	code, ok := intFromValue(obj["code"])
	if !ok {
		return nil, false
	}
	message, ok := obj["message"].(string)
	if !ok {
		return nil, false
	}
	err := &Error{Code: code, Message: message}
	if data, present := obj["data"]; present {
		err.Data = data
	}
	return err, true
}

// intFromValue extracts an integer from a decoded JSON number.
func intFromValue(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
