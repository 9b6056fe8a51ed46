package footprint

import (
	"bytes"
	"testing"
)

type record struct {
	A int     `msgpack:"a"`
	B float64 `msgpack:"b"`
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode("rec", record{A: 3, B: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Encode("rec", record{A: 3, B: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("equal records must encode identically")
	}
}

func TestEncodeDistinguishes(t *testing.T) {
	base, _ := Encode("rec", record{A: 3, B: 0.5})

	other, _ := Encode("rec", record{A: 4, B: 0.5})
	if bytes.Equal(base, other) {
		t.Error("differing field values must encode differently")
	}

	tagged, _ := Encode("other", record{A: 3, B: 0.5})
	if bytes.Equal(base, tagged) {
		t.Error("differing tags must encode differently")
	}
}

func TestKey(t *testing.T) {
	key, err := Key("rec", record{A: 1, B: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(key))
	}

	again, _ := Key("rec", record{A: 1, B: 2})
	if key != again {
		t.Error("key must be stable")
	}
}
