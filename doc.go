// Package jsonrpc provides typed construction, validation, and
// serialization of JSON-RPC 2.0 messages.
//
// The package models the five message kinds as a closed set of types
// implementing the Message interface: Request, Notification, Success,
// ErrorResponse, and Invalid (the record of a failed validation). It does
// not dial connections, dispatch methods, or correlate requests with
// responses; it only builds protocol-conformant envelopes and classifies
// incoming JSON into them.
//
// # Building messages
//
// Each message kind has a constructor taking typed arguments:
//
//	req := jsonrpc.NewRequest(jsonrpc.NumberID(1), "subtract", jsonrpc.PositionalParams(42, 23))
//	note := jsonrpc.NewNotification("update", jsonrpc.Params{})
//	ok := jsonrpc.NewSuccess(jsonrpc.NumberID(1), 19)
//	fail := jsonrpc.NewErrorResponse(jsonrpc.ID{}, jsonrpc.NewError(jsonrpc.CodeMethodNotFound))
//
// Messages marshal to the wire envelope with encoding/json, or convert to
// a generic value tree with ToValue for handoff to another JSON printer.
//
// # Classifying incoming data
//
// FromValue inspects an already-decoded JSON value and classifies it as
// one message kind, or as Invalid with the rejection reason:
//
//	msg := jsonrpc.Parse([]byte(`{"jsonrpc":"2.0","method":"sum","params":[1,2],"id":1}`))
//	if method, ok := msg.Method(); ok {
//	    // request or notification
//	}
//
// Malformed input is data, not a Go error: an Invalid message carries the
// reason and the offending value so a server can answer with a proper
// ParseError or InvalidRequest response instead of failing.
//
// # Batches
//
// ParseBatch and FromValueBatch validate a JSON array element-wise. Each
// element yields its own outcome; one malformed element never invalidates
// its siblings. An empty batch is itself an InvalidRequest failure.
//
// All types are immutable after construction and safe to share between
// goroutines.
package jsonrpc
