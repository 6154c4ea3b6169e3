package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
)

// FromValue classifies an already-decoded JSON value as a JSON-RPC
// message. The value tree is the generic encoding/json representation:
// map[string]any, []any, string, bool, nil, and float64 or json.Number
// for numbers (int and int64 are also accepted in hand-built trees).
//
// Classification is a single structural pass, first match wins:
//
//  1. the value must be an object carrying "jsonrpc": "2.0" exactly
//  2. "method" (a string) with "id" present is a Request
//  3. "method" without "id" is a Notification
//  4. "result" (any value, including null) with "id" is a Success
//  5. "error" (an object with integer "code" and string "message") is an
//     ErrorResponse; its "id" may be missing or null
//
// An id must be a string, an integer, or null; a null id is accepted only
// on an error response, since a request with a null id would be
// indistinguishable from a notification. A "params" member of any shape
// other than array or object is a failure, not something to ignore.
//
// Anything rejected comes back as *Invalid carrying the reason and the
// offending value; FromValue never returns a Go error. Top-level arrays
// are rejected here; batches go through FromValueBatch.
func FromValue(v any) Message {
	obj, ok := v.(map[string]any)
	if !ok {
		return newInvalid(CodeInvalidRequest, v, "value is not a JSON object")
	}
	ver, present := obj["jsonrpc"]
	if !present {
		return newInvalid(CodeInvalidRequest, v, `missing "jsonrpc" version member`)
	}
	if s, ok := ver.(string); !ok || s != Version {
		return newInvalid(CodeInvalidRequest, v, `"jsonrpc" version must be %q`, Version)
	}

	if rawMethod, present := obj["method"]; present {
		method, ok := rawMethod.(string)
		if !ok {
			return newInvalid(CodeInvalidRequest, v, `"method" must be a string`)
		}
		var params Params
		if rawParams, present := obj["params"]; present {
			if params, ok = paramsFromValue(rawParams); !ok {
				return newInvalid(CodeInvalidRequest, v, `"params" must be an array or an object`)
			}
		}
		rawID, present := obj["id"]
		if !present {
			return NewNotification(method, params)
		}
		id, ok := idFromValue(rawID)
		if !ok {
			return newInvalid(CodeInvalidRequest, v, `"id" must be a string, an integer, or null`)
		}
		if id.IsAbsent() {
			return newInvalid(CodeInvalidRequest, v, `"id" must not be null on a request`)
		}
		return NewRequest(id, method, params)
	}

	if result, present := obj["result"]; present {
		rawID, present := obj["id"]
		if !present {
			return newInvalid(CodeInvalidRequest, v, `missing "id" member on a success response`)
		}
		id, ok := idFromValue(rawID)
		if !ok {
			return newInvalid(CodeInvalidRequest, v, `"id" must be a string, an integer, or null`)
		}
		if id.IsAbsent() {
			return newInvalid(CodeInvalidRequest, v, `"id" must not be null on a success response`)
		}
		return NewSuccess(id, result)
	}

	if rawErr, present := obj["error"]; present {
		errObj, ok := errorFromValue(rawErr)
		if !ok {
			return newInvalid(CodeInvalidRequest, v, `"error" must be an object with an integer "code" and a string "message"`)
		}
		var id ID
		if rawID, present := obj["id"]; present {
			if id, ok = idFromValue(rawID); !ok {
				return newInvalid(CodeInvalidRequest, v, `"id" must be a string, an integer, or null`)
			}
		}
		return NewErrorResponse(id, errObj)
	}

	return newInvalid(CodeInvalidRequest, v, "object matches no JSON-RPC message shape")
}

// FromValueBatch validates a JSON array element-wise. Every element gets
// its own outcome, in input order; one malformed element never
// invalidates its siblings. An empty array is itself a single
// InvalidRequest failure, and a non-array value falls through to
// FromValue as a one-element result.
func FromValueBatch(v any) []Message {
	arr, ok := v.([]any)
	if !ok {
		return []Message{FromValue(v)}
	}
	if len(arr) == 0 {
		return []Message{newInvalid(CodeInvalidRequest, v, "empty batch")}
	}
	out := make([]Message, len(arr))
	for i, elem := range arr {
		out[i] = FromValue(elem)
	}
	return out
}

// Parse decodes one JSON-RPC message from text. The tokenizing itself is
// delegated to encoding/json; a syntax error classifies as a ParseError
// failure rather than a Go error, so a server can answer it directly.
func Parse(data []byte) Message {
	v, err := decodeValue(data)
	if err != nil {
		return newInvalid(CodeParseError, string(data), "invalid JSON: %v", err)
	}
	return FromValue(v)
}

// ParseBatch decodes a batch of JSON-RPC messages from text, one outcome
// per element. A syntax error yields a single ParseError failure.
func ParseBatch(data []byte) []Message {
	v, err := decodeValue(data)
	if err != nil {
		return []Message{newInvalid(CodeParseError, string(data), "invalid JSON: %v", err)}
	}
	return FromValueBatch(v)
}

// decodeValue parses text into a generic value tree. UseNumber keeps
// 64-bit ids exact instead of rounding them through float64.
func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
