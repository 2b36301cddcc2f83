package wikidata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siherrmann/wikigraph/helper"
	"github.com/siherrmann/wikigraph/model"
	"github.com/siherrmann/wikigraph/sparql"
)

// PeopleHandlerFunctions defines the interface for person search operations.
type PeopleHandlerFunctions interface {
	SearchPeople(ctx context.Context, name string) ([]*model.Person, error)
}

// PeopleHandler handles person search queries against the query service.
type PeopleHandler struct {
	executor sparql.Executor
	log      *slog.Logger
}

// NewPeopleHandler creates a new people handler on top of an executor.
func NewPeopleHandler(executor sparql.Executor, logger *slog.Logger) (*PeopleHandler, error) {
	if executor == nil {
		return nil, helper.NewError("validate executor", fmt.Errorf("executor is nil"))
	}
	if logger == nil {
		return nil, helper.NewError("validate logger", fmt.Errorf("logger is nil"))
	}

	logger.Info("Initialized PeopleHandler")

	return &PeopleHandler{
		executor: executor,
		log:      logger,
	}, nil
}

// SearchPeople returns every person entity whose English label exactly
// equals name, in the service's row order. An ambiguous name yields
// multiple people; an unknown one yields an empty slice, not an error.
func (h *PeopleHandler) SearchPeople(ctx context.Context, name string) ([]*model.Person, error) {
	query := sparql.NameSearchQuery(name)

	rows, err := h.executor.Select(ctx, query)
	if err != nil {
		return nil, helper.NewError("execute name search", err)
	}

	people := make([]*model.Person, 0, len(rows))
	for _, row := range rows {
		values, err := row.RequireValues("id", "name", "description")
		if err != nil {
			return nil, helper.NewError("map name search row", err)
		}

		person, err := model.NewPerson(values[1], values[2], values[0])
		if err != nil {
			return nil, helper.NewError("map name search row", err)
		}
		people = append(people, person)
	}

	h.log.Debug("Searched people by name", slog.String("name", name), slog.Int("num_results", len(people)))

	return people, nil
}
