package feature

import "encoding/json"

// Entry associates one retained coefficient with its feature identity.
//
// Entries are the unit the record codec emits and consumes: an encoded model
// record is an ordered sequence of entries, magnitude-descending.
type Entry struct {
	Identity Identity
	Value    float64
}

// entryJSON is the flattened wire form of an Entry. The identity pair is
// inlined so a persisted record stays readable without nesting.
type entryJSON struct {
	Name  string  `json:"name"`
	Term  string  `json:"term"`
	Value float64 `json:"value"`
}

// MarshalJSON encodes the entry as {"name": ..., "term": ..., "value": ...}.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Name:  e.Identity.Name,
		Term:  e.Identity.Term,
		Value: e.Value,
	})
}

// UnmarshalJSON decodes the flattened entry form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var ej entryJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}

	e.Identity = Identity{Name: ej.Name, Term: ej.Term}
	e.Value = ej.Value

	return nil
}
