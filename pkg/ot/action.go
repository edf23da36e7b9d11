package ot

import "fmt"

// actionKind tags the three primitive action types.
//
// A flat enum discriminant keeps the inner loops of Compose and Transform
// doing a type switch on a handful of concrete types rather than dynamic
// dispatch through an arbitrary number of implementations.
type actionKind int

const (
	kindRetain actionKind = iota
	kindInsert
	kindDelete
)

// Action is one primitive edit step: retain, insert, or delete.
type Action interface {
	kind() actionKind
	// Len returns the number of characters (runes) this action consumes
	// from the input (retain, delete) or produces in the output (insert).
	Len() int
	String() string
}

// RetainAction advances n runes through the input unchanged.
type RetainAction int

func (a RetainAction) kind() actionKind { return kindRetain }
func (a RetainAction) Len() int         { return int(a) }
func (a RetainAction) String() string   { return fmt.Sprintf("retain(%d)", int(a)) }

// InsertAction inserts Text at the current position.
type InsertAction string

func (a InsertAction) kind() actionKind { return kindInsert }
func (a InsertAction) Len() int         { return len([]rune(string(a))) }
func (a InsertAction) String() string   { return fmt.Sprintf("insert(%q)", string(a)) }

// DeleteAction removes n runes from the current position.
type DeleteAction int

func (a DeleteAction) kind() actionKind { return kindDelete }
func (a DeleteAction) Len() int         { return int(a) }
func (a DeleteAction) String() string   { return fmt.Sprintf("delete(%d)", int(a)) }

func isRetain(a Action) (RetainAction, bool) { r, ok := a.(RetainAction); return r, ok }
func isInsert(a Action) (InsertAction, bool) { i, ok := a.(InsertAction); return i, ok }
func isDelete(a Action) (DeleteAction, bool) { d, ok := a.(DeleteAction); return d, ok }
