// Package testutil provides helpers for testing code that produces or
// consumes JSON-RPC messages.
//
// Example usage:
//
//	func TestHandler(t *testing.T) {
//	    msg := testutil.MustParse(t, `{"jsonrpc":"2.0","method":"sum","params":[1,2],"id":1}`)
//	    testutil.RequireKind(t, msg, jsonrpc.KindRequest)
//	    testutil.AssertRoundTrip(t, msg)
//	}
package testutil

import (
	"encoding/json"
	"testing"

	jsonrpc "github.com/iorust/jsonrpc-lite"
)

// MustParse parses text into a message and fails the test if the input
// does not classify as a valid message kind.
func MustParse(tb testing.TB, text string) jsonrpc.Message {
	tb.Helper()
	msg := jsonrpc.Parse([]byte(text))
	if inv, ok := msg.(*jsonrpc.Invalid); ok {
		tb.Fatalf("input did not validate: %v", inv.Failures())
	}
	return msg
}

// RequireKind fails the test when the message is not of the wanted kind.
func RequireKind(tb testing.TB, msg jsonrpc.Message, want jsonrpc.Kind) {
	tb.Helper()
	if got := msg.Kind(); got != want {
		tb.Fatalf("Kind() = %v, want %v", got, want)
	}
}

// AssertRoundTrip serializes the message, re-validates the result, and
// checks that the classification and wire form survive unchanged.
func AssertRoundTrip(tb testing.TB, msg jsonrpc.Message) {
	tb.Helper()

	wire, err := json.Marshal(msg)
	if err != nil {
		tb.Fatalf("marshal: %v", err)
	}
	again := jsonrpc.Parse(wire)
	if again.Kind() != msg.Kind() {
		tb.Fatalf("round trip changed kind: %v -> %v (wire %s)", msg.Kind(), again.Kind(), wire)
	}
	wire2, err := json.Marshal(again)
	if err != nil {
		tb.Fatalf("marshal after round trip: %v", err)
	}
	if !jsonEqual(tb, wire, wire2) {
		tb.Errorf("round trip changed wire form:\n first %s\nsecond %s", wire, wire2)
	}
}

// jsonEqual compares two JSON texts structurally, ignoring key order.
func jsonEqual(tb testing.TB, a, b []byte) bool {
	tb.Helper()
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		tb.Fatalf("unmarshal %s: %v", a, err)
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		tb.Fatalf("unmarshal %s: %v", b, err)
	}
	na, _ := json.Marshal(va)
	nb, _ := json.Marshal(vb)
	return string(na) == string(nb)
}
