package sparql

import (
	"fmt"
	"strings"

	"github.com/siherrmann/wikigraph/model"
)

// DetailMode selects the shape of an entity detail query.
type DetailMode string

const (
	// DetailModeProperties selects every (property, value) pair directly
	// claimed by the target entity.
	DetailModeProperties DetailMode = "properties"
	// DetailModeRelations selects every other entity connected to the
	// target by any property, in either direction.
	DetailModeRelations DetailMode = "relations"
)

// prefixHeader is prepended to every generated query, as expected by the
// Wikidata query service.
const prefixHeader = `PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX p: <http://www.wikidata.org/prop/>
PREFIX ps: <http://www.wikidata.org/prop/statement/>
PREFIX bd: <http://www.bigdata.com/rdf#>
`

const nameSearchTemplate = `SELECT
  ?id          # Ex. Q42
  ?name        # Ex. Douglas Adams
  ?description # Ex. English author and humourist (1952-2001)
WHERE {
  VALUES ?name {
    """%s"""@en
  }

  ?id wdt:P31 wd:Q5;                 # The ID of an instance of human,
    rdfs:label ?name;                # ...whose entity label matches ?name,
    schema:description ?description. # ...and their single-sentence description

  FILTER((LANG(?name)) = "en")
  FILTER((LANG(?description)) = "en")
}
`

const propertiesTemplate = `SELECT DISTINCT
  ?propID     # Ex. P734
  ?propLabel  # Ex. family name
  ?value      # Ex. Q351735
  ?valueLabel # Ex. Adams
WHERE {
  VALUES ?target {
    wd:%s
  }

  ?target ?propID ?value.

  ?prop wikibase:directClaim ?propID.

  %sFILTER(CONTAINS(STR(?value), "/entity/Q"))

  SERVICE wikibase:label { bd:serviceParam wikibase:language "%s". }
}
ORDER BY UCASE(STR(?propID))
`

const relationsTemplate = `SELECT DISTINCT
  ?related      # Ex. Q351735
  ?relatedLabel # Ex. Adams
WHERE {
  VALUES ?target {
    wd:%s
  }

  { ?target ?prop ?related. }
  UNION
  { ?related ?prop ?target. }

  FILTER(ISIRI(?related))
  FILTER(CONTAINS(STR(?related), "/entity/Q"))

  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
ORDER BY UCASE(?relatedLabel)
`

// NameSearchQuery builds the query matching entities that are instances of
// human and whose English label exactly equals name. The name literal is
// escaped and embedded in a triple-quoted literal, so free text including
// newlines is safe.
func NameSearchQuery(name string) string {
	return prefixHeader + "\n" + fmt.Sprintf(nameSearchTemplate, Escape(name))
}

// EntityDetailQuery builds the detail query for one entity. The id must be
// an entity short code (ex. Q42); it is embedded verbatim, so it is
// validated instead of escaped. A nil config uses DefaultQueryConfig.
//
// In properties mode the result is restricted to genuine direct claims,
// optionally to entity-typed values only, with labels resolved through the
// configured language preference list. In relations mode labels are
// English only. Both orderings are over uppercased display strings, which
// sorts non-ASCII and mixed-case values only approximately.
func EntityDetailQuery(id string, mode DetailMode, config *model.QueryConfig) (string, error) {
	if err := model.ValidateEntityID(id); err != nil {
		return "", err
	}
	if config == nil {
		defaultConfig := model.DefaultQueryConfig()
		config = &defaultConfig
	}

	switch mode {
	case DetailModeProperties:
		// A disabled entity filter stays in the query as a comment, so the
		// generated text documents both variants of the shape.
		commentMarker := ""
		if !config.OnlyEntityValues {
			commentMarker = "# "
		}
		languages := strings.Join(config.Languages, ",")
		if languages == "" {
			languages = "[AUTO_LANGUAGE],en"
		}
		return prefixHeader + "\n" + fmt.Sprintf(propertiesTemplate, id, commentMarker, languages), nil
	case DetailModeRelations:
		return prefixHeader + "\n" + fmt.Sprintf(relationsTemplate, id), nil
	default:
		return "", model.InvalidInputError{Input: string(mode), Expected: `a detail mode of "properties" or "relations"`}
	}
}
