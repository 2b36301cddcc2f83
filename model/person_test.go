package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("Derives the short id from the entity URI", func(t *testing.T) {
		person, err := NewPerson("Douglas Adams", "English author and humourist", "https://www.wikidata.org/entity/Q42")
		require.NoError(t, err, "Expected NewPerson to not return an error")

		assert.Equal(t, "Q42", person.ID, "Expected the id to be the short code, never the full URI")
		assert.Equal(t, "https://www.wikidata.org/entity/Q42", person.IDURL)
		assert.Equal(t, "Douglas Adams", person.Name)
		assert.Equal(t, "English author and humourist", person.Description)
	})

	t.Run("Fails for a malformed entity URI", func(t *testing.T) {
		_, err := NewPerson("Douglas Adams", "English author", "https://www.wikidata.org/entity/")
		require.Error(t, err)

		var malformed MalformedURIError
		assert.ErrorAs(t, err, &malformed, "Expected a MalformedURIError")
	})

	t.Run("String form is id, name and description", func(t *testing.T) {
		person, err := NewPerson("Douglas Adams", "English author and humourist (1952-2001)", "https://www.wikidata.org/entity/Q42")
		require.NoError(t, err)

		assert.Equal(t, "Q42: Douglas Adams (English author and humourist (1952-2001))", person.String())
	})
}

func TestNewField(t *testing.T) {
	t.Run("Derives the short id from the property URI", func(t *testing.T) {
		field, err := NewField("http://www.wikidata.org/prop/direct/P106", "occupation", "novelist")
		require.NoError(t, err, "Expected NewField to not return an error")

		assert.Equal(t, "P106", field.ID)
		assert.Equal(t, "http://www.wikidata.org/prop/direct/P106", field.IDURL)
		assert.Equal(t, "occupation", field.Label)
		assert.Equal(t, "novelist", field.Value)
	})

	t.Run("Fails for a malformed property URI", func(t *testing.T) {
		_, err := NewField("http://www.wikidata.org/prop/direct/", "occupation", "novelist")

		var malformed MalformedURIError
		assert.ErrorAs(t, err, &malformed, "Expected a MalformedURIError")
	})

	t.Run("String form is label and value", func(t *testing.T) {
		field, err := NewField("http://www.wikidata.org/prop/direct/P106", "occupation", "novelist")
		require.NoError(t, err)

		assert.Equal(t, "occupation: novelist", field.String())
	})
}
