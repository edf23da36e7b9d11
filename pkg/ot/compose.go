package ot

// actionCursor walks an action slice, allowing the in-progress action to be
// replaced with a shortened remainder when a merge-walk splits it.
type actionCursor struct {
	actions []Action
	idx     int
}

func newActionCursor(actions []Action) *actionCursor {
	return &actionCursor{actions: actions}
}

func (c *actionCursor) next() Action {
	if c.idx >= len(c.actions) {
		return nil
	}
	a := c.actions[c.idx]
	c.idx++
	return a
}

// Compose merges two consecutive operations A and B into one operation C
// equivalent to applying A then B: for every S of rune length
// A.BaseLength(), Apply(C, S) == Apply(B, Apply(A, S)).
//
// Fails with ErrComposeLengthMismatch if A.TargetLength() != B.BaseLength(),
// or ErrComposeStructural if the merge-walk runs one side out before the
// other (malformed input).
func Compose(a, b *Operation) (*Operation, error) {
	if a.targetLength != b.baseLength {
		return nil, ErrComposeLengthMismatch
	}

	result := New()
	ca := newActionCursor(a.actions)
	cb := newActionCursor(b.actions)

	x := ca.next()
	y := cb.next()

	for {
		if x == nil && y == nil {
			return result, nil
		}

		if d, ok := isDelete(x); ok {
			result.Delete(int(d))
			x = ca.next()
			continue
		}
		if ins, ok := isInsert(y); ok {
			result.Insert(string(ins))
			y = cb.next()
			continue
		}
		if x == nil || y == nil {
			return nil, ErrComposeStructural
		}

		rx, xIsRetain := isRetain(x)
		ry, yIsRetain := isRetain(y)
		if xIsRetain && yIsRetain {
			switch {
			case int(rx) < int(ry):
				result.Retain(int(rx))
				y = RetainAction(int(ry) - int(rx))
				x = ca.next()
			case int(rx) == int(ry):
				result.Retain(int(rx))
				x = ca.next()
				y = cb.next()
			default:
				result.Retain(int(ry))
				x = RetainAction(int(rx) - int(ry))
				y = cb.next()
			}
			continue
		}

		ix, xIsInsert := isInsert(x)
		dy, yIsDelete := isDelete(y)
		if xIsInsert && yIsDelete {
			insRunes := []rune(string(ix))
			switch {
			case len(insRunes) < int(dy):
				y = DeleteAction(int(dy) - len(insRunes))
				x = ca.next()
			case len(insRunes) == int(dy):
				x = ca.next()
				y = cb.next()
			default:
				x = InsertAction(string(insRunes[dy:]))
				y = cb.next()
			}
			continue
		}

		if xIsInsert && yIsRetain {
			insRunes := []rune(string(ix))
			switch {
			case len(insRunes) < int(ry):
				result.Insert(string(ix))
				y = RetainAction(int(ry) - len(insRunes))
				x = ca.next()
			case len(insRunes) == int(ry):
				result.Insert(string(ix))
				x = ca.next()
				y = cb.next()
			default:
				result.Insert(string(insRunes[:ry]))
				x = InsertAction(string(insRunes[ry:]))
				y = cb.next()
			}
			continue
		}

		if xIsRetain && yIsDelete {
			switch {
			case int(rx) < int(dy):
				result.Delete(int(rx))
				y = DeleteAction(int(dy) - int(rx))
				x = ca.next()
			case int(rx) == int(dy):
				result.Delete(int(dy))
				x = ca.next()
				y = cb.next()
			default:
				result.Delete(int(dy))
				x = RetainAction(int(rx) - int(dy))
				y = cb.next()
			}
			continue
		}

		return nil, ErrComposeStructural
	}
}
