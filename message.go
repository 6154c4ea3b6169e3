package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol version carried by every message.
const Version = "2.0"

// Kind identifies the concrete variant of a Message.
type Kind int

const (
	// KindInvalid marks input that failed validation.
	KindInvalid Kind = iota
	// KindRequest is a method call expecting a response.
	KindRequest
	// KindNotification is a method call expecting no response.
	KindNotification
	// KindSuccess is a successful response.
	KindSuccess
	// KindErrorResponse is an error response.
	KindErrorResponse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindSuccess:
		return "success"
	case KindErrorResponse:
		return "error"
	default:
		return "invalid"
	}
}

// Message is a JSON-RPC 2.0 message: a request, a notification, a success
// response, an error response, or the record of a failed validation. The
// set of implementations is closed.
//
// The accessors report ok=false for fields that do not apply to the
// concrete variant, so call sites check instead of type-switching. Asking
// a Success for its method is not a fault; it is simply absent.
type Message interface {
	// Kind reports the concrete variant.
	Kind() Kind
	// Version returns the protocol version marker, "2.0", for the four
	// real message kinds. An Invalid record carries no validated
	// version and returns the empty string.
	Version() string
	// MessageID returns the identifier of a request or response. The
	// returned ID may itself be the absent variant on an error response
	// whose original request id could not be recovered.
	MessageID() (ID, bool)
	// Method returns the method name of a request or notification.
	Method() (string, bool)
	// Params returns the parameters of a request or notification. The
	// returned Params may be the absent variant when the call carries
	// none.
	Params() (Params, bool)
	// Result returns the result value of a success response.
	Result() (any, bool)
	// ErrorObject returns the error payload of an error response.
	ErrorObject() (*Error, bool)
	// ToValue converts the message to a generic JSON value tree for
	// handoff to a JSON printer.
	ToValue() any

	json.Marshaler

	isMessage()
}

// base carries the accessor defaults; each variant overrides the ones
// that apply to it.
type base struct{}

func (base) Version() string { return Version }

func (base) MessageID() (ID, bool) { return ID{}, false }

func (base) Method() (string, bool) { return "", false }

func (base) Params() (Params, bool) { return Params{}, false }

func (base) Result() (any, bool) { return nil, false }

func (base) ErrorObject() (*Error, bool) { return nil, false }

func (base) isMessage() {}

// Request is a method call that expects a response.
type Request struct {
	base
	id     ID
	method string
	params Params
}

// NewRequest builds a request. The id must not be the absent variant; a
// call without an id is a notification, built with NewNotification. Pass
// the Params zero value when the call has no parameters.
func NewRequest(id ID, method string, params Params) *Request {
	return &Request{id: id, method: method, params: params}
}

// Kind returns KindRequest.
func (r *Request) Kind() Kind { return KindRequest }

// MessageID returns the request identifier.
func (r *Request) MessageID() (ID, bool) { return r.id, true }

// Method returns the method name.
func (r *Request) Method() (string, bool) { return r.method, true }

// Params returns the call parameters.
func (r *Request) Params() (Params, bool) { return r.params, true }

// ToValue converts the request to a generic JSON value tree.
func (r *Request) ToValue() any {
	v := map[string]any{
		"jsonrpc": Version,
		"method":  r.method,
		"id":      r.id.toValue(),
	}
	if !r.params.IsAbsent() {
		v["params"] = r.params.toValue()
	}
	return v
}

// MarshalJSON emits the wire envelope, "jsonrpc" first.
func (r *Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
		ID      ID     `json:"id"`
	}{Version, r.method, r.params.toValue(), r.id})
}

// Notification is a method call that expects no response. It has no id
// field at all; the absence is structural, not a null value.
type Notification struct {
	base
	method string
	params Params
}

// NewNotification builds a notification. Pass the Params zero value when
// the call has no parameters.
func NewNotification(method string, params Params) *Notification {
	return &Notification{method: method, params: params}
}

// Kind returns KindNotification.
func (n *Notification) Kind() Kind { return KindNotification }

// Method returns the method name.
func (n *Notification) Method() (string, bool) { return n.method, true }

// Params returns the call parameters.
func (n *Notification) Params() (Params, bool) { return n.params, true }

// ToValue converts the notification to a generic JSON value tree.
func (n *Notification) ToValue() any {
	v := map[string]any{
		"jsonrpc": Version,
		"method":  n.method,
	}
	if !n.params.IsAbsent() {
		v["params"] = n.params.toValue()
	}
	return v
}

// MarshalJSON emits the wire envelope, "jsonrpc" first.
func (n *Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
	}{Version, n.method, n.params.toValue()})
}

// Success is a successful response carrying the result of a call.
type Success struct {
	base
	id     ID
	result any
}

// NewSuccess builds a success response. The result may be any JSON value,
// including nil.
func NewSuccess(id ID, result any) *Success {
	return &Success{id: id, result: result}
}

// Kind returns KindSuccess.
func (s *Success) Kind() Kind { return KindSuccess }

// MessageID returns the identifier of the request being answered.
func (s *Success) MessageID() (ID, bool) { return s.id, true }

// Result returns the result value.
func (s *Success) Result() (any, bool) { return s.result, true }

// ToValue converts the response to a generic JSON value tree.
func (s *Success) ToValue() any {
	return map[string]any{
		"jsonrpc": Version,
		"result":  s.result,
		"id":      s.id.toValue(),
	}
}

// MarshalJSON emits the wire envelope, "jsonrpc" first. The "result"
// member is always present, even when the result is null.
func (s *Success) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Result  any    `json:"result"`
		ID      ID     `json:"id"`
	}{Version, s.result, s.id})
}

// ErrorResponse is a response reporting that a call failed.
type ErrorResponse struct {
	base
	id  ID
	err *Error
}

// NewErrorResponse builds an error response. The id may be the absent
// variant when the original request's id could not be determined, for
// example after a parse failure; it is then emitted as null.
func NewErrorResponse(id ID, err *Error) *ErrorResponse {
	return &ErrorResponse{id: id, err: err}
}

// Kind returns KindErrorResponse.
func (e *ErrorResponse) Kind() Kind { return KindErrorResponse }

// MessageID returns the identifier of the request being answered; it may
// be the absent variant.
func (e *ErrorResponse) MessageID() (ID, bool) { return e.id, true }

// ErrorObject returns the error payload.
func (e *ErrorResponse) ErrorObject() (*Error, bool) { return e.err, true }

// ToValue converts the response to a generic JSON value tree.
func (e *ErrorResponse) ToValue() any {
	return map[string]any{
		"jsonrpc": Version,
		"error":   e.err.toValue(),
		"id":      e.id.toValue(),
	}
}

// MarshalJSON emits the wire envelope, "jsonrpc" first. An absent id is
// emitted as null.
func (e *ErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Error   *Error `json:"error"`
		ID      ID     `json:"id"`
	}{Version, e.err, e.id})
}

// Failure records one rejected input and why it was rejected.
type Failure struct {
	// Code is the protocol error the failure maps to: CodeParseError for
	// JSON syntax errors, CodeInvalidRequest for structural ones.
	Code ErrorCode `json:"code"`
	// Reason describes what rule the input broke.
	Reason string `json:"reason"`
	// Value is the offending input as it was given.
	Value any `json:"value,omitempty"`
}

// Response builds the error response reporting this failure to the peer.
// The id is absent since a malformed input has no recoverable id.
func (f Failure) Response() *ErrorResponse {
	return NewErrorResponse(ID{}, NewError(f.Code).WithData(f.Reason))
}

// Invalid records input that failed validation. It is produced only by
// FromValue and its relatives, never transmitted on the wire.
type Invalid struct {
	base
	failures []Failure
}

func newInvalid(code ErrorCode, raw any, format string, args ...any) *Invalid {
	return &Invalid{failures: []Failure{{
		Code:   code,
		Reason: fmt.Sprintf(format, args...),
		Value:  raw,
	}}}
}

// Kind returns KindInvalid.
func (inv *Invalid) Kind() Kind { return KindInvalid }

// Version returns the empty string: the rejected input had no validated
// protocol version.
func (inv *Invalid) Version() string { return "" }

// Failures returns the recorded validation failures, in input order.
func (inv *Invalid) Failures() []Failure { return inv.failures }

// ToValue returns the offending input as it was given: the single raw
// value for a one-failure record, otherwise the slice of raw values.
func (inv *Invalid) ToValue() any {
	if len(inv.failures) == 1 {
		return inv.failures[0].Value
	}
	vals := make([]any, len(inv.failures))
	for i, f := range inv.failures {
		vals[i] = f.Value
	}
	return vals
}

// MarshalJSON encodes the failure records themselves, for diagnostics.
// An Invalid message has no wire envelope.
func (inv *Invalid) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.failures)
}
