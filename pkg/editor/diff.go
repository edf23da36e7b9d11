package editor

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/otcore/collabtext/pkg/ot"
)

var dmp = diffmatchpatch.New()

// DiffOperation derives an Operation that turns oldText into newText from
// the two whole-document snapshots, using a Myers diff. This is how a
// plain textarea-style integration — one that only reports "the document
// is now X" rather than structured edit events — still produces a valid
// Operation to hand to Client.ApplyClient.
func DiffOperation(oldText, newText string) (*ot.Operation, error) {
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	op := ot.New()
	for _, d := range diffs {
		runes := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op.Retain(runes)
		case diffmatchpatch.DiffDelete:
			op.Delete(runes)
		case diffmatchpatch.DiffInsert:
			op.Insert(d.Text)
		}
	}
	return op, nil
}
