package jsonrpc

import "encoding/json"

type paramsKind int

const (
	paramsAbsent paramsKind = iota
	paramsArray
	paramsObject
)

// Params is the JSON-RPC parameters payload: a positional array, a named
// object, or absent. The zero value is the absent variant, used for calls
// that take no parameters.
//
// A Params value is owned by the message that embeds it; callers must not
// mutate the backing slice or map after construction.
type Params struct {
	kind   paramsKind
	array  []any
	object map[string]any
}

// PositionalParams returns an ordered, by-position parameters payload.
// An empty call yields an empty array, not the absent variant, so it
// still serializes as "params":[].
func PositionalParams(values ...any) Params {
	if values == nil {
		values = []any{}
	}
	return Params{kind: paramsArray, array: values}
}

// NamedParams returns a by-name parameters payload. A nil map yields an
// empty object, not the absent variant.
func NamedParams(values map[string]any) Params {
	if values == nil {
		values = map[string]any{}
	}
	return Params{kind: paramsObject, object: values}
}

// IsAbsent reports whether no parameters are present.
func (p Params) IsAbsent() bool {
	return p.kind == paramsAbsent
}

// Array returns the parameters as a slice if they are positional.
func (p Params) Array() ([]any, bool) {
	if p.kind != paramsArray {
		return nil, false
	}
	return p.array, true
}

// Object returns the parameters as a map if they are named.
func (p Params) Object() (map[string]any, bool) {
	if p.kind != paramsObject {
		return nil, false
	}
	return p.object, true
}

// MarshalJSON encodes the payload; the absent variant encodes as null.
// Messages omit the "params" member entirely when it is absent, so null
// only appears when a Params value is marshalled on its own.
func (p Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toValue())
}

// toValue returns the payload as a generic JSON value, or nil when absent.
func (p Params) toValue() any {
	switch p.kind {
	case paramsArray:
		return p.array
	case paramsObject:
		return p.object
	default:
		return nil
	}
}

// paramsFromValue classifies a decoded JSON value as a parameters payload.
// ok is false for any shape other than an array or an object; a present
// "params" member of the wrong shape is a validation failure, not
// something to ignore.
func paramsFromValue(v any) (Params, bool) {
	switch t := v.(type) {
	case []any:
		return PositionalParams(t...), true
	case map[string]any:
		return NamedParams(t), true
	default:
		return Params{}, false
	}
}
