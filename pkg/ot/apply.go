package ot

import "strings"

// Apply runs the operation over str, returning the resulting string.
//
// str's rune length must equal o.BaseLength(); retains may not run past
// the end of str; and the operation must consume str exactly, or Apply
// fails with ErrBaseLengthMismatch, ErrRetainOverflow, or
// ErrIncompleteApply respectively.
func (o *Operation) Apply(str string) (string, error) {
	runes := []rune(str)
	if len(runes) != o.baseLength {
		return "", ErrBaseLengthMismatch
	}

	var out strings.Builder
	out.Grow(o.targetLength)
	i := 0

	for _, action := range o.actions {
		switch a := action.(type) {
		case RetainAction:
			n := int(a)
			if i+n > len(runes) {
				return "", ErrRetainOverflow
			}
			for _, r := range runes[i : i+n] {
				out.WriteRune(r)
			}
			i += n
		case InsertAction:
			out.WriteString(string(a))
		case DeleteAction:
			i += int(a)
		}
	}

	if i != len(runes) {
		return "", ErrIncompleteApply
	}
	return out.String(), nil
}

// Invert computes the operation that undoes o, given the string o was
// originally applied to: Apply(Invert(o, str), Apply(o, str)) == str.
func (o *Operation) Invert(str string) *Operation {
	runes := []rune(str)
	inv := New()
	i := 0

	for _, action := range o.actions {
		switch a := action.(type) {
		case RetainAction:
			inv.Retain(int(a))
			i += int(a)
		case InsertAction:
			inv.DeleteStr(string(a))
		case DeleteAction:
			n := int(a)
			inv.Insert(string(runes[i : i+n]))
			i += n
		}
	}

	return inv
}
