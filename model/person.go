package model

import "fmt"

// Person represents a human entity matched by an exact name search.
type Person struct {
	ID          string `json:"id"`     // Ex. Q42
	IDURL       string `json:"id_url"` // Ex. https://www.wikidata.org/entity/Q42
	Name        string `json:"name"`   // Ex. Douglas Adams
	Description string `json:"description"`
}

// NewPerson creates a Person from a name search result row. The short ID is
// derived from the entity URI, never constructed ad hoc.
func NewPerson(name string, description string, idURL string) (*Person, error) {
	id, err := LastSegment(idURL)
	if err != nil {
		return nil, err
	}
	return &Person{
		ID:          id,
		IDURL:       idURL,
		Name:        name,
		Description: description,
	}, nil
}

func (p *Person) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.ID, p.Name, p.Description)
}
