package ot

import "testing"

func TestNewIsEmptyNoop(t *testing.T) {
	o := New()
	if !o.IsNoop() {
		t.Error("expected new operation to be a noop")
	}
	if o.BaseLength() != 0 || o.TargetLength() != 0 {
		t.Errorf("expected lengths 0,0, got %d,%d", o.BaseLength(), o.TargetLength())
	}
}

func TestLengthsAccumulate(t *testing.T) {
	o := New()
	o.Retain(5)
	if o.BaseLength() != 5 || o.TargetLength() != 5 {
		t.Fatalf("after Retain(5): got %d,%d", o.BaseLength(), o.TargetLength())
	}
	o.Insert("abc")
	if o.BaseLength() != 5 || o.TargetLength() != 8 {
		t.Fatalf("after Insert(abc): got %d,%d", o.BaseLength(), o.TargetLength())
	}
	o.Retain(2)
	if o.BaseLength() != 7 || o.TargetLength() != 10 {
		t.Fatalf("after Retain(2): got %d,%d", o.BaseLength(), o.TargetLength())
	}
	o.Delete(2)
	if o.BaseLength() != 9 || o.TargetLength() != 10 {
		t.Fatalf("after Delete(2): got %d,%d", o.BaseLength(), o.TargetLength())
	}
}

func TestZeroLengthActionsAreNoops(t *testing.T) {
	o := New()
	o.Retain(0)
	o.Insert("")
	o.Delete(0)
	o.Retain(-3)
	o.Delete(-1)
	if len(o.Actions()) != 0 {
		t.Errorf("expected 0 actions, got %d", len(o.Actions()))
	}
}

func TestAdjacentSameKindActionsCoalesce(t *testing.T) {
	o := New()
	o.Retain(2)
	o.Retain(3)
	o.Insert("abc")
	o.Insert("xyz")
	o.Delete(1)
	o.Delete(1)

	if len(o.Actions()) != 3 {
		t.Fatalf("expected 3 coalesced actions, got %d: %s", len(o.Actions()), o)
	}
	r, ok := isRetain(o.Actions()[0])
	if !ok || r != 5 {
		t.Errorf("expected retain(5), got %v", o.Actions()[0])
	}
	ins, ok := isInsert(o.Actions()[1])
	if !ok || ins != "abcxyz" {
		t.Errorf("expected insert(abcxyz), got %v", o.Actions()[1])
	}
	d, ok := isDelete(o.Actions()[2])
	if !ok || d != 2 {
		t.Errorf("expected delete(2), got %v", o.Actions()[2])
	}
}

func TestInsertIsReorderedBeforeTrailingDelete(t *testing.T) {
	o := New()
	o.Delete(2)
	o.Insert("x")

	if len(o.Actions()) != 2 {
		t.Fatalf("expected 2 actions, got %d: %s", len(o.Actions()), o)
	}
	if _, ok := isInsert(o.Actions()[0]); !ok {
		t.Errorf("expected insert first, got %v", o.Actions()[0])
	}
	if _, ok := isDelete(o.Actions()[1]); !ok {
		t.Errorf("expected delete second, got %v", o.Actions()[1])
	}
}

func TestInsertMergesAcrossReorderedDelete(t *testing.T) {
	o := New()
	o.Insert("a")
	o.Delete(2)
	o.Insert("b")

	if len(o.Actions()) != 2 {
		t.Fatalf("expected 2 actions, got %d: %s", len(o.Actions()), o)
	}
	ins, ok := isInsert(o.Actions()[0])
	if !ok || ins != "ab" {
		t.Errorf("expected insert(ab), got %v", o.Actions()[0])
	}
}

func TestInsertCountsRunesNotBytes(t *testing.T) {
	o := New()
	o.Insert("héllo")
	if o.TargetLength() != 5 {
		t.Errorf("expected target length 5 (rune count), got %d", o.TargetLength())
	}
}

func TestIsNoop(t *testing.T) {
	o := New()
	if !o.IsNoop() {
		t.Error("expected empty operation to be noop")
	}
	o.Retain(5)
	if !o.IsNoop() {
		t.Error("expected single-retain operation to be noop")
	}
	o.Insert("x")
	if o.IsNoop() {
		t.Error("expected operation with insert to not be noop")
	}
}

func TestEquals(t *testing.T) {
	a := New()
	a.Delete(1)
	a.Insert("lo")
	a.Retain(2)

	b := New()
	b.Delete(1)
	b.Insert("l")
	b.Insert("o")
	b.Retain(1)
	b.Retain(1)

	if !a.Equals(b) {
		t.Errorf("expected coalesced operations to be equal: %s vs %s", a, b)
	}
}
