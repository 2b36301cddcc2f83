package wikidata

import (
	"context"
	"io"
	"log/slog"

	"github.com/siherrmann/wikigraph/sparql"
)

// mockExecutor returns a fixed row set and records every submitted query.
type mockExecutor struct {
	rows    []sparql.BindingRow
	err     error
	queries []string
}

func (m *mockExecutor) Select(ctx context.Context, query string) ([]sparql.BindingRow, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uriBinding(value string) sparql.BindingValue {
	return sparql.BindingValue{Type: "uri", Value: value}
}

func literalBinding(value string) sparql.BindingValue {
	return sparql.BindingValue{Type: "literal", Value: value, Lang: "en"}
}
