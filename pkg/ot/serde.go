package ot

import "encoding/json"

// actionRecord is the wire shape of a single action: exactly one of
// Retain, Insert, Delete is set (§6.3).
type actionRecord struct {
	Retain *int    `json:"retain,omitempty"`
	Insert *string `json:"insert,omitempty"`
	Delete *int    `json:"delete,omitempty"`
}

// record is the wire shape of an Operation (§6.3/§4.1.6).
type record struct {
	Ops          []actionRecord `json:"ops"`
	BaseLength   int            `json:"baseLength"`
	TargetLength int            `json:"targetLength"`
}

func (o *Operation) toRecord() record {
	ops := make([]actionRecord, len(o.actions))
	for i, a := range o.actions {
		switch v := a.(type) {
		case RetainAction:
			n := int(v)
			ops[i] = actionRecord{Retain: &n}
		case InsertAction:
			s := string(v)
			ops[i] = actionRecord{Insert: &s}
		case DeleteAction:
			n := int(v)
			ops[i] = actionRecord{Delete: &n}
		}
	}
	return record{Ops: ops, BaseLength: o.baseLength, TargetLength: o.targetLength}
}

// MarshalJSON encodes the operation as {ops, baseLength, targetLength}.
func (o *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toRecord())
}

// UnmarshalJSON decodes an operation from its wire record, rebuilding it
// through the builder calls (re-enforcing the coalescing invariant) and
// verifying the declared baseLength/targetLength match what the ops
// actually produce.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	decoded, err := fromRecord(rec)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

func fromRecord(rec record) (*Operation, error) {
	op := New()
	for _, a := range rec.Ops {
		set := 0
		if a.Retain != nil {
			set++
		}
		if a.Insert != nil {
			set++
		}
		if a.Delete != nil {
			set++
		}
		if set != 1 {
			return nil, ErrUnknownAction
		}

		switch {
		case a.Retain != nil:
			if *a.Retain < 1 {
				return nil, ErrUnknownAction
			}
			op.Retain(*a.Retain)
		case a.Insert != nil:
			if *a.Insert == "" {
				return nil, ErrUnknownAction
			}
			op.Insert(*a.Insert)
		case a.Delete != nil:
			if *a.Delete < 1 {
				return nil, ErrUnknownAction
			}
			op.Delete(*a.Delete)
		}
	}

	if op.baseLength != rec.BaseLength || op.targetLength != rec.TargetLength {
		return nil, ErrDeserializationMismatch
	}
	return op, nil
}

// FromJSON decodes an operation from its wire JSON form, returning
// ErrDeserializationMismatch or ErrUnknownAction on invalid input.
func FromJSON(data []byte) (*Operation, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return fromRecord(rec)
}

// ToJSON encodes the operation to its wire JSON form.
func (o *Operation) ToJSON() ([]byte, error) {
	return json.Marshal(o.toRecord())
}
