package ot

import (
	"errors"
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		a      func() *Operation
		b      func() *Operation
		expect string
	}{
		{
			name:   "insert then delete part of it cancels",
			s:      "foo",
			a:      func() *Operation { return New().Insert("hi").Retain(3) },
			b:      func() *Operation { return New().Delete(2).Retain(3) },
			expect: "foo",
		},
		{
			name:   "retain then insert",
			s:      "abc",
			a:      func() *Operation { return New().Retain(3) },
			b:      func() *Operation { return New().Retain(3).Insert("def") },
			expect: "abcdef",
		},
		{
			name:   "delete composed with retain",
			s:      "hello world",
			a:      func() *Operation { return New().Delete(6).Retain(5) },
			b:      func() *Operation { return New().Retain(5) },
			expect: "world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(), tt.b()
			c, err := Compose(a, b)
			if err != nil {
				t.Fatalf("Compose failed: %v", err)
			}

			composed, err := c.Apply(tt.s)
			if err != nil {
				t.Fatalf("Apply(composed) failed: %v", err)
			}
			if composed != tt.expect {
				t.Errorf("expected %q, got %q", tt.expect, composed)
			}

			afterA, err := a.Apply(tt.s)
			if err != nil {
				t.Fatalf("Apply(a) failed: %v", err)
			}
			afterAB, err := b.Apply(afterA)
			if err != nil {
				t.Fatalf("Apply(b, afterA) failed: %v", err)
			}
			if afterAB != composed {
				t.Errorf("compose mismatch: sequential=%q composed=%q", afterAB, composed)
			}
		})
	}
}

func TestComposeLengthMismatch(t *testing.T) {
	a := New().Retain(3)
	b := New().Retain(5)
	if _, err := Compose(a, b); !errors.Is(err, ErrComposeLengthMismatch) {
		t.Errorf("expected ErrComposeLengthMismatch, got %v", err)
	}
}

func TestComposeAssociative(t *testing.T) {
	s := "hello world"
	a := New().Delete(6).Retain(5)
	b := New().Retain(5).Insert("!")
	c := New().Retain(6).Delete(0).Insert(" bar")

	ab, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose(a,b) failed: %v", err)
	}
	left, err := Compose(ab, c)
	if err != nil {
		t.Fatalf("Compose(ab,c) failed: %v", err)
	}

	bc, err := Compose(b, c)
	if err != nil {
		t.Fatalf("Compose(b,c) failed: %v", err)
	}
	right, err := Compose(a, bc)
	if err != nil {
		t.Fatalf("Compose(a,bc) failed: %v", err)
	}

	leftResult, err := left.Apply(s)
	if err != nil {
		t.Fatalf("Apply(left) failed: %v", err)
	}
	rightResult, err := right.Apply(s)
	if err != nil {
		t.Fatalf("Apply(right) failed: %v", err)
	}
	if leftResult != rightResult {
		t.Errorf("associativity failed: (a.b).c=%q a.(b.c)=%q", leftResult, rightResult)
	}
}
