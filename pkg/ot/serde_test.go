package ot

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSerdeRoundTrip(t *testing.T) {
	o := New().Retain(1).Delete(1).Insert("abc")

	data, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if !o.Equals(back) {
		t.Errorf("round trip mismatch: original=%s decoded=%s", o, back)
	}
}

func TestSerdeRecordShape(t *testing.T) {
	o := New().Retain(2).Insert("hi").Delete(3)

	data, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	ops, ok := raw["ops"].([]any)
	if !ok || len(ops) != 3 {
		t.Fatalf("expected 3 ops records, got %v", raw["ops"])
	}
	first := ops[0].(map[string]any)
	if _, ok := first["retain"]; !ok {
		t.Errorf("expected first record to have a retain key: %v", first)
	}
	second := ops[1].(map[string]any)
	if _, ok := second["insert"]; !ok {
		t.Errorf("expected second record to have an insert key: %v", second)
	}
	third := ops[2].(map[string]any)
	if _, ok := third["delete"]; !ok {
		t.Errorf("expected third record to have a delete key: %v", third)
	}
}

func TestSerdeMismatchedLengths(t *testing.T) {
	data := []byte(`{"ops":[{"retain":5}],"baseLength":999,"targetLength":999}`)
	if _, err := FromJSON(data); !errors.Is(err, ErrDeserializationMismatch) {
		t.Errorf("expected ErrDeserializationMismatch, got %v", err)
	}
}

func TestSerdeUnknownAction(t *testing.T) {
	tests := []string{
		`{"ops":[{}],"baseLength":0,"targetLength":0}`,
		`{"ops":[{"retain":1,"insert":"x"}],"baseLength":1,"targetLength":1}`,
	}
	for _, data := range tests {
		if _, err := FromJSON([]byte(data)); !errors.Is(err, ErrUnknownAction) {
			t.Errorf("expected ErrUnknownAction for %s, got %v", data, err)
		}
	}
}

func TestSerdeViaEncodingJSON(t *testing.T) {
	o := New().Insert("hello").Retain(3)

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded Operation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if !o.Equals(&decoded) {
		t.Errorf("round trip mismatch: original=%s decoded=%s", o, &decoded)
	}
}
