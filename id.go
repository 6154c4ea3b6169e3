package jsonrpc

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

type idKind int

const (
	idAbsent idKind = iota
	idNumber
	idString
)

// ID is a JSON-RPC request identifier: an integer, a string, or absent.
//
// The zero value is the absent variant. Absent covers both a missing "id"
// member and a JSON null one; whether that is legal depends on the message
// kind (error responses may carry a null id, requests may not).
type ID struct {
	kind idKind
	num  int64
	str  string
}

// NumberID returns an integer identifier.
func NumberID(n int64) ID {
	return ID{kind: idNumber, num: n}
}

// StringID returns a string identifier.
func StringID(s string) ID {
	return ID{kind: idString, str: s}
}

// RandomID returns a string identifier backed by a random UUID. Clients
// that need unique identifiers without coordinating a counter can use it
// when building requests.
func RandomID() ID {
	return StringID(uuid.NewString())
}

// IsAbsent reports whether no identifier is present.
func (id ID) IsAbsent() bool {
	return id.kind == idAbsent
}

// Number returns the identifier as an int64 if it is the integer variant.
func (id ID) Number() (int64, bool) {
	if id.kind != idNumber {
		return 0, false
	}
	return id.num, true
}

// Text returns the identifier as a string if it is the string variant.
func (id ID) Text() (string, bool) {
	if id.kind != idString {
		return "", false
	}
	return id.str, true
}

// String implements fmt.Stringer for logs and test failures.
func (id ID) String() string {
	switch id.kind {
	case idNumber:
		return strconv.FormatInt(id.num, 10)
	case idString:
		return strconv.Quote(id.str)
	default:
		return "<absent>"
	}
}

// MarshalJSON encodes the identifier; the absent variant encodes as null.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.toValue())
}

// toValue returns the identifier as a generic JSON value: int64, string,
// or nil for the absent variant.
func (id ID) toValue() any {
	switch id.kind {
	case idNumber:
		return id.num
	case idString:
		return id.str
	default:
		return nil
	}
}

// idFromValue classifies a decoded JSON value as an identifier. Null maps
// to the absent variant. ok is false when the value is not a string, an
// integer, or null; fractional numbers are rejected.
func idFromValue(v any) (ID, bool) {
	switch n := v.(type) {
	case nil:
		return ID{}, true
	case string:
		return StringID(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return ID{}, false
		}
		return NumberID(i), true
	case float64:
		i := int64(n)
		if float64(i) != n {
			return ID{}, false
		}
		return NumberID(i), true
	case int:
		return NumberID(int64(n)), true
	case int64:
		return NumberID(n), true
	default:
		return ID{}, false
	}
}
