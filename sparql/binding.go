package sparql

import "fmt"

// MissingBindingError reports a result row without a required variable.
// This indicates a mismatch between the query's SELECT clause and the
// mapper's expectations, or an unexpectedly optional graph pattern.
type MissingBindingError struct {
	Variable string
}

func (e MissingBindingError) Error() string {
	return fmt.Sprintf("result row is missing required binding %q", e.Variable)
}

// BindingValue represents one bound term in a query result row.
type BindingValue struct {
	Type     string `json:"type"` // uri, literal or bnode
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// BindingRow represents one query result row, mapping selected variable
// names to bound terms.
type BindingRow map[string]BindingValue

// RequireValues reads the bound value for each required variable, in order.
// If any variable is unbound, it fails with MissingBindingError instead of
// substituting an empty value, since domain objects assume all fields are
// present.
func (r BindingRow) RequireValues(names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		binding, ok := r[name]
		if !ok {
			return nil, MissingBindingError{Variable: name}
		}
		values = append(values, binding.Value)
	}
	return values, nil
}
