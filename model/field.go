package model

import "fmt"

// Field represents one piece of structured detail about an entity: either a
// directly claimed property (label = property name, value = claim value) or
// a related entity (label = related entity label, value = its URI).
type Field struct {
	ID    string `json:"id"`     // Ex. P106
	IDURL string `json:"id_url"` // Ex. https://www.wikidata.org/prop/direct/P106
	Label string `json:"label"`  // Ex. occupation
	Value string `json:"value"`  // Ex. novelist
}

// NewField creates a Field from a detail result row. The short ID is derived
// from the property or entity URI.
func NewField(idURL string, label string, value string) (*Field, error) {
	id, err := LastSegment(idURL)
	if err != nil {
		return nil, err
	}
	return &Field{
		ID:    id,
		IDURL: idURL,
		Label: label,
		Value: value,
	}, nil
}

func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.Label, f.Value)
}
