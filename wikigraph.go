package wikigraph

import (
	"context"
	"log/slog"
	"os"

	"github.com/siherrmann/wikigraph/helper"
	"github.com/siherrmann/wikigraph/model"
	"github.com/siherrmann/wikigraph/sparql"
	"github.com/siherrmann/wikigraph/wikidata"
)

// Client provides a unified interface to the Wikidata query service
type Client struct {
	Config   *helper.ClientConfiguration
	Executor sparql.Executor
	People   *wikidata.PeopleHandler
	Entities *wikidata.EntityHandler
	// Logging
	log *slog.Logger
}

// NewClient creates a new Client with all handlers initialized. A nil
// config loads the configuration from the environment.
func NewClient(config *helper.ClientConfiguration) (*Client, error) {
	if config == nil {
		var err error
		config, err = helper.NewClientConfiguration()
		if err != nil {
			return nil, helper.NewError("load client configuration", err)
		}
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	executor := sparql.NewHTTPExecutor(config.EndpointURL, config.Timeout(), logger)

	people, err := wikidata.NewPeopleHandler(executor, logger)
	if err != nil {
		return nil, helper.NewError("create people handler", err)
	}

	entities, err := wikidata.NewEntityHandler(executor, logger)
	if err != nil {
		return nil, helper.NewError("create entity handler", err)
	}

	logger.Info("Initialized wikigraph client", slog.String("endpoint", config.EndpointURL))

	return &Client{
		Config:   config,
		Executor: executor,
		People:   people,
		Entities: entities,
		log:      logger,
	}, nil
}

// SearchPeople searches for person entities by exact English display name.
// The result keeps the service's row order; an ambiguous name returns
// multiple people.
func (c *Client) SearchPeople(ctx context.Context, name string) ([]*model.Person, error) {
	return c.People.SearchPeople(ctx, name)
}

// EntityFields returns the properties directly claimed by an entity, using
// an exact ID (ex. Q42). A nil config uses the client's default, which
// filters values to entities only and prefers the configured language with
// English as fallback.
func (c *Client) EntityFields(ctx context.Context, id string, config *model.QueryConfig) ([]*model.Field, error) {
	if config == nil {
		config = c.defaultQueryConfig()
	}
	return c.Entities.SelectEntityFields(ctx, id, config)
}

// EntityRelations returns the entities connected to an entity by any
// property, in either direction.
func (c *Client) EntityRelations(ctx context.Context, id string) ([]*model.Field, error) {
	return c.Entities.SelectEntityRelations(ctx, id, c.defaultQueryConfig())
}

// EntityDetail returns structured detail about an entity in the given mode,
// either its directly claimed properties or its related entities.
func (c *Client) EntityDetail(ctx context.Context, id string, mode sparql.DetailMode, config *model.QueryConfig) ([]*model.Field, error) {
	switch mode {
	case sparql.DetailModeProperties:
		return c.EntityFields(ctx, id, config)
	case sparql.DetailModeRelations:
		return c.Entities.SelectEntityRelations(ctx, id, config)
	default:
		return nil, model.InvalidInputError{Input: string(mode), Expected: `a detail mode of "properties" or "relations"`}
	}
}

func (c *Client) defaultQueryConfig() *model.QueryConfig {
	config := model.DefaultQueryConfig()
	if c.Config.Language != "" {
		config.Languages = []string{c.Config.Language, "en"}
	}
	return &config
}
