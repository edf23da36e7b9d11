package ot

// Transform takes two operations A and B defined over the same base
// document and produces (A', B') such that applying A then B' converges
// with applying B then A':
//
//	Apply(B', Apply(A, S)) == Apply(A', Apply(B, S))
//
// for every S of rune length A.BaseLength(). Fails with
// ErrTransformLengthMismatch if A.BaseLength() != B.BaseLength().
//
// Tie-break: when A and B both insert at the same position, A's insert is
// placed first in both resulting documents, unconditionally — this is
// positional (which argument is "A"), never a comparison of the inserted
// text. Callers pick "A" by convention as their own operation, so that a
// client's local edit always wins the race against a remote edit arriving
// at the same point.
func Transform(a, b *Operation) (*Operation, *Operation, error) {
	if a.baseLength != b.baseLength {
		return nil, nil, ErrTransformLengthMismatch
	}

	aPrime := New()
	bPrime := New()

	ca := newActionCursor(a.actions)
	cb := newActionCursor(b.actions)

	x := ca.next()
	y := cb.next()

	for {
		if x == nil && y == nil {
			return aPrime, bPrime, nil
		}

		if ix, ok := isInsert(x); ok {
			aPrime.Insert(string(ix))
			bPrime.Retain(ix.Len())
			x = ca.next()
			continue
		}
		if iy, ok := isInsert(y); ok {
			aPrime.Retain(iy.Len())
			bPrime.Insert(string(iy))
			y = cb.next()
			continue
		}
		if x == nil || y == nil {
			return nil, nil, ErrTransformIncompatible
		}

		rx, xIsRetain := isRetain(x)
		ry, yIsRetain := isRetain(y)
		if xIsRetain && yIsRetain {
			switch {
			case int(rx) < int(ry):
				aPrime.Retain(int(rx))
				bPrime.Retain(int(rx))
				y = RetainAction(int(ry) - int(rx))
				x = ca.next()
			case int(rx) == int(ry):
				aPrime.Retain(int(rx))
				bPrime.Retain(int(rx))
				x = ca.next()
				y = cb.next()
			default:
				aPrime.Retain(int(ry))
				bPrime.Retain(int(ry))
				x = RetainAction(int(rx) - int(ry))
				y = cb.next()
			}
			continue
		}

		dx, xIsDelete := isDelete(x)
		dy, yIsDelete := isDelete(y)
		if xIsDelete && yIsDelete {
			switch {
			case int(dx) < int(dy):
				y = DeleteAction(int(dy) - int(dx))
				x = ca.next()
			case int(dx) == int(dy):
				x = ca.next()
				y = cb.next()
			default:
				x = DeleteAction(int(dx) - int(dy))
				y = cb.next()
			}
			continue
		}

		if xIsDelete && yIsRetain {
			switch {
			case int(dx) < int(ry):
				aPrime.Delete(int(dx))
				y = RetainAction(int(ry) - int(dx))
				x = ca.next()
			case int(dx) == int(ry):
				aPrime.Delete(int(dx))
				x = ca.next()
				y = cb.next()
			default:
				aPrime.Delete(int(ry))
				x = DeleteAction(int(dx) - int(ry))
				y = cb.next()
			}
			continue
		}

		if xIsRetain && yIsDelete {
			switch {
			case int(rx) < int(dy):
				bPrime.Delete(int(rx))
				y = DeleteAction(int(dy) - int(rx))
				x = ca.next()
			case int(rx) == int(dy):
				bPrime.Delete(int(dy))
				x = ca.next()
				y = cb.next()
			default:
				bPrime.Delete(int(dy))
				x = RetainAction(int(rx) - int(dy))
				y = cb.next()
			}
			continue
		}

		return nil, nil, ErrTransformIncompatible
	}
}
