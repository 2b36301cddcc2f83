package wikidata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siherrmann/wikigraph/helper"
	"github.com/siherrmann/wikigraph/model"
	"github.com/siherrmann/wikigraph/sparql"
)

// EntityHandlerFunctions defines the interface for entity detail operations.
type EntityHandlerFunctions interface {
	SelectEntityFields(ctx context.Context, id string, config *model.QueryConfig) ([]*model.Field, error)
	SelectEntityRelations(ctx context.Context, id string, config *model.QueryConfig) ([]*model.Field, error)
}

// EntityHandler handles entity detail queries against the query service.
type EntityHandler struct {
	executor sparql.Executor
	log      *slog.Logger
}

// NewEntityHandler creates a new entity handler on top of an executor.
func NewEntityHandler(executor sparql.Executor, logger *slog.Logger) (*EntityHandler, error) {
	if executor == nil {
		return nil, helper.NewError("validate executor", fmt.Errorf("executor is nil"))
	}
	if logger == nil {
		return nil, helper.NewError("validate logger", fmt.Errorf("logger is nil"))
	}

	logger.Info("Initialized EntityHandler")

	return &EntityHandler{
		executor: executor,
		log:      logger,
	}, nil
}

// SelectEntityFields returns every property directly claimed by the entity,
// one Field per (property, value) pair, ordered by the service (uppercased
// property id). The id must be an entity short code (ex. Q42).
func (h *EntityHandler) SelectEntityFields(ctx context.Context, id string, config *model.QueryConfig) ([]*model.Field, error) {
	query, err := sparql.EntityDetailQuery(id, sparql.DetailModeProperties, config)
	if err != nil {
		return nil, err
	}

	rows, err := h.executor.Select(ctx, query)
	if err != nil {
		return nil, helper.NewError("execute entity detail", err)
	}

	fields := make([]*model.Field, 0, len(rows))
	for _, row := range rows {
		values, err := row.RequireValues("propID", "propLabel", "valueLabel")
		if err != nil {
			return nil, helper.NewError("map entity detail row", err)
		}

		field, err := model.NewField(values[0], values[1], values[2])
		if err != nil {
			return nil, helper.NewError("map entity detail row", err)
		}
		fields = append(fields, field)
	}

	h.log.Debug("Selected entity fields", slog.String("id", id), slog.Int("num_fields", len(fields)))

	return fields, nil
}

// SelectEntityRelations returns every entity connected to the target by any
// property in either direction, one Field per related entity with its
// English label and URI, ordered by the service (uppercased label).
func (h *EntityHandler) SelectEntityRelations(ctx context.Context, id string, config *model.QueryConfig) ([]*model.Field, error) {
	query, err := sparql.EntityDetailQuery(id, sparql.DetailModeRelations, config)
	if err != nil {
		return nil, err
	}

	rows, err := h.executor.Select(ctx, query)
	if err != nil {
		return nil, helper.NewError("execute entity relations", err)
	}

	fields := make([]*model.Field, 0, len(rows))
	for _, row := range rows {
		values, err := row.RequireValues("related", "relatedLabel")
		if err != nil {
			return nil, helper.NewError("map entity relations row", err)
		}

		field, err := model.NewField(values[0], values[1], values[0])
		if err != nil {
			return nil, helper.NewError("map entity relations row", err)
		}
		fields = append(fields, field)
	}

	h.log.Debug("Selected entity relations", slog.String("id", id), slog.Int("num_relations", len(fields)))

	return fields, nil
}
