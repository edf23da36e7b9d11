package wrapped

import (
	"encoding/json"

	"github.com/otcore/collabtext/pkg/ot"
)

type wireOperation struct {
	Operation *ot.Operation `json:"operation"`
	Meta      Meta          `json:"meta,omitempty"`
}

// MarshalJSON encodes the wrapped operation as {"operation":..., "meta":...}.
func (w *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireOperation{Operation: w.Op, Meta: w.Meta})
}

// UnmarshalJSON decodes a wrapped operation from its wire form.
func (w *Operation) UnmarshalJSON(data []byte) error {
	var wire wireOperation
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	w.Op = wire.Operation
	w.Meta = wire.Meta
	return nil
}
