// Benchmarks for parsing and classification over representative payloads.
package jsonrpc_test

import (
	"testing"

	jsonrpc "github.com/iorust/jsonrpc-lite"
)

const batchJSON = `[
  {"jsonrpc": "2.0", "method": "sum", "params": [1,2,4], "id": "1"},
  {"jsonrpc": "2.0", "method": "notify_hello", "params": [7]},
  {"jsonrpc": "2.0", "method": "subtract", "params": [42,23], "id": 2},
  {"jsonrpc": "2.0", "method": "foo.get", "params": {"name": "myself"}, "id": "5"},
  {"jsonrpc": "2.0", "method": "get_data", "id": "9"},
  {"jsonrpc": "2.0", "result": 7, "id": "1"},
  {"jsonrpc": "2.0", "result": 19, "id": "2"},
  {"jsonrpc": "2.0", "error": {"code": -32600, "message": "Invalid Request"}, "id": 4},
  {"jsonrpc": "2.0", "error": {"code": -32601, "message": "Method not found"}, "id": "5"},
  {"jsonrpc": "2.0", "result": ["hello", 5], "id": "9"},
  {"jsonrpc": "2.0", "method": "sum", "params": [1,2,4], "id": "1"},
  {"jsonrpc": "2.0", "method": "notify_hello", "params": [7]},
  {"jsonrpc": "2.0", "method": "subtract", "params": [42,23], "id": "2"},
  {"jsonrpc": "2.0", "method": "foo.get", "params": {"name": "myself"}, "id": "5"},
  {"jsonrpc": "2.0", "method": "get_data", "id": "9"},
  {"jsonrpc": "2.0", "result": 7, "id": "1"},
  {"jsonrpc": "2.0", "result": 19, "id": "2"},
  {"jsonrpc": "2.0", "error": {"code": -32600, "message": "Invalid Request"}, "id": 3},
  {"jsonrpc": "2.0", "error": {"code": -32601, "message": "Method not found"}, "id": "5"},
  {"jsonrpc": "2.0", "result": ["hello", 5], "id": "9"}
]`

// BenchmarkParse measures single-request parse and classification.
func BenchmarkParse(b *testing.B) {
	data := []byte(`{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msg := jsonrpc.Parse(data)
		if msg.Kind() != jsonrpc.KindRequest {
			b.Fatalf("Kind() = %v, want %v", msg.Kind(), jsonrpc.KindRequest)
		}
	}
}

// BenchmarkParseBatch measures a mixed 20-element batch.
func BenchmarkParseBatch(b *testing.B) {
	data := []byte(batchJSON)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msgs := jsonrpc.ParseBatch(data)
		if len(msgs) != 20 {
			b.Fatalf("len = %d, want 20", len(msgs))
		}
	}
}

// BenchmarkFromValue isolates classification from JSON decoding.
func BenchmarkFromValue(b *testing.B) {
	value := map[string]any{
		"jsonrpc": "2.0",
		"method":  "subtract",
		"params":  []any{int64(42), int64(23)},
		"id":      int64(1),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msg := jsonrpc.FromValue(value)
		if msg.Kind() != jsonrpc.KindRequest {
			b.Fatalf("Kind() = %v, want %v", msg.Kind(), jsonrpc.KindRequest)
		}
	}
}
