package wrapped

import (
	"encoding/json"
	"testing"

	"github.com/otcore/collabtext/pkg/ot"
)

func TestApplyDelegates(t *testing.T) {
	w := New(ot.New().Retain(5).Insert("!"), Meta{"clientId": "a"})
	got, err := w.Apply("hello")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got != "hello!" {
		t.Errorf("expected hello!, got %q", got)
	}
}

func TestInvertKeepsMetadata(t *testing.T) {
	w := New(ot.New().Retain(3).Insert("x"), Meta{"clientId": "a"})
	inv := w.Invert("abc")
	if inv.Meta["clientId"] != "a" {
		t.Errorf("expected invert to keep metadata, got %v", inv.Meta)
	}
	restored, err := inv.Apply("abcx")
	if err != nil {
		t.Fatalf("Apply(invert) failed: %v", err)
	}
	if restored != "abc" {
		t.Errorf("expected abc, got %q", restored)
	}
}

func TestComposeMergesMetaRightBiased(t *testing.T) {
	a := New(ot.New().Retain(3), Meta{"clientId": "a", "cursor": 1})
	b := New(ot.New().Retain(3).Insert("!"), Meta{"cursor": 2})

	c, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if c.Meta["clientId"] != "a" {
		t.Errorf("expected clientId preserved from a, got %v", c.Meta["clientId"])
	}
	if c.Meta["cursor"] != 2 {
		t.Errorf("expected cursor overwritten by b, got %v", c.Meta["cursor"])
	}
}

func TestTransformDoesNotMergeMeta(t *testing.T) {
	a := New(ot.New().Retain(3).Insert("a"), Meta{"clientId": "alice"})
	b := New(ot.New().Retain(3).Insert("b"), Meta{"clientId": "bob"})

	aPrime, bPrime, err := Transform(a, b)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if aPrime.Meta["clientId"] != "alice" {
		t.Errorf("expected a' to keep alice's metadata, got %v", aPrime.Meta)
	}
	if bPrime.Meta["clientId"] != "bob" {
		t.Errorf("expected b' to keep bob's metadata, got %v", bPrime.Meta)
	}
}

func TestSerdeRoundTrip(t *testing.T) {
	w := New(ot.New().Retain(2).Insert("hi"), Meta{"clientId": "a", "cursor": float64(2)})

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Operation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Op.Equals(w.Op) {
		t.Errorf("operation mismatch after round trip")
	}
	if decoded.Meta["clientId"] != "a" {
		t.Errorf("expected clientId preserved, got %v", decoded.Meta["clientId"])
	}
}
