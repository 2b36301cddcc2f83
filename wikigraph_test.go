package wikigraph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siherrmann/wikigraph/helper"
	"github.com/siherrmann/wikigraph/model"
	"github.com/siherrmann/wikigraph/sparql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const peopleResultsDocument = `{
	"head": { "vars": ["id", "name", "description"] },
	"results": {
		"bindings": [
			{
				"id": { "type": "uri", "value": "https://www.wikidata.org/entity/Q123" },
				"name": { "type": "literal", "value": "William Carpenter", "xml:lang": "en" },
				"description": { "type": "literal", "value": "English poet", "xml:lang": "en" }
			},
			{
				"id": { "type": "uri", "value": "https://www.wikidata.org/entity/Q456" },
				"name": { "type": "literal", "value": "William Carpenter", "xml:lang": "en" },
				"description": { "type": "literal", "value": "American physician", "xml:lang": "en" }
			}
		]
	}
}`

const fieldsResultsDocument = `{
	"head": { "vars": ["propID", "propLabel", "value", "valueLabel"] },
	"results": {
		"bindings": [
			{
				"propID": { "type": "uri", "value": "http://www.wikidata.org/prop/direct/P106" },
				"propLabel": { "type": "literal", "value": "occupation", "xml:lang": "en" },
				"value": { "type": "uri", "value": "http://www.wikidata.org/entity/Q6625963" },
				"valueLabel": { "type": "literal", "value": "novelist", "xml:lang": "en" }
			}
		]
	}
}`

func initClient(t *testing.T, resultsDocument string) (*Client, *[]string) {
	queries := &[]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		*queries = append(*queries, r.PostFormValue("query"))
		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(resultsDocument))
	}))
	t.Cleanup(server.Close)

	helper.SetTestClientConfigEnvs(t, server.URL)
	config, err := helper.NewClientConfiguration()
	require.NoError(t, err, "failed to create client configuration")

	client, err := NewClient(config)
	require.NoError(t, err, "failed to create client")
	require.NotNil(t, client, "expected client to be non-nil")

	return client, queries
}

func TestNewClient(t *testing.T) {
	t.Run("Valid call NewClient", func(t *testing.T) {
		client, _ := initClient(t, peopleResultsDocument)

		assert.NotNil(t, client.Config, "Expected client to have a configuration")
		assert.NotNil(t, client.Executor, "Expected client to have an executor")
		assert.NotNil(t, client.People, "Expected client to have a people handler")
		assert.NotNil(t, client.Entities, "Expected client to have an entity handler")
	})

	t.Run("Nil config loads the environment configuration", func(t *testing.T) {
		helper.SetTestClientConfigEnvs(t, "http://localhost:9999/sparql")

		client, err := NewClient(nil)
		require.NoError(t, err, "Expected NewClient to not return an error")
		assert.Equal(t, "http://localhost:9999/sparql", client.Config.EndpointURL)
	})
}

func TestClientSearchPeople(t *testing.T) {
	t.Run("Returns people in service row order", func(t *testing.T) {
		client, _ := initClient(t, peopleResultsDocument)

		people, err := client.SearchPeople(context.Background(), "William Carpenter")
		require.NoError(t, err, "Expected SearchPeople to not return an error")
		require.Len(t, people, 2, "Expected two people for the ambiguous name")

		assert.Equal(t, "Q123", people[0].ID)
		assert.Equal(t, "Q456", people[1].ID)
	})
}

func TestClientEntityDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Properties mode returns claimed fields", func(t *testing.T) {
		client, queries := initClient(t, fieldsResultsDocument)

		fields, err := client.EntityDetail(ctx, "Q8006577", sparql.DetailModeProperties, nil)
		require.NoError(t, err, "Expected EntityDetail to not return an error")
		require.Len(t, fields, 1)

		assert.Equal(t, "P106", fields[0].ID)
		assert.Equal(t, "occupation: novelist", fields[0].String())

		require.Len(t, *queries, 1)
		assert.Contains(t, (*queries)[0], "wd:Q8006577")
		assert.Contains(t, (*queries)[0], "wikibase:directClaim")
	})

	t.Run("Relations mode submits the relations shape", func(t *testing.T) {
		client, queries := initClient(t, `{"head":{"vars":[]},"results":{"bindings":[]}}`)

		fields, err := client.EntityDetail(ctx, "Q8006577", sparql.DetailModeRelations, nil)
		require.NoError(t, err)
		assert.Empty(t, fields)

		require.Len(t, *queries, 1)
		assert.Contains(t, (*queries)[0], "ORDER BY UCASE(?relatedLabel)")
	})

	t.Run("Configured language drives the label service", func(t *testing.T) {
		client, queries := initClient(t, fieldsResultsDocument)
		client.Config.Language = "de"

		_, err := client.EntityFields(ctx, "Q8006577", nil)
		require.NoError(t, err)

		require.Len(t, *queries, 1)
		assert.Contains(t, (*queries)[0], `wikibase:language "de,en"`,
			"Expected the configured language with English fallback")
	})

	t.Run("Rejects an unknown detail mode", func(t *testing.T) {
		client, queries := initClient(t, fieldsResultsDocument)

		_, err := client.EntityDetail(ctx, "Q8006577", sparql.DetailMode("everything"), nil)
		require.Error(t, err, "Expected an unknown mode to be rejected")

		var invalidInput model.InvalidInputError
		assert.ErrorAs(t, err, &invalidInput, "Expected an InvalidInputError")
		assert.Empty(t, *queries, "Expected no query to be submitted")
	})

	t.Run("Rejects an invalid id before submitting a query", func(t *testing.T) {
		client, queries := initClient(t, fieldsResultsDocument)

		_, err := client.EntityDetail(ctx, "P106", sparql.DetailModeProperties, nil)
		require.Error(t, err, "Expected a property id to be rejected")

		var invalidInput model.InvalidInputError
		assert.ErrorAs(t, err, &invalidInput, "Expected an InvalidInputError")
		assert.Empty(t, *queries, "Expected no query to be submitted")
	})
}
