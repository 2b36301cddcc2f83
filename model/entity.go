package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	entityIDRegex  = regexp.MustCompile(`^Q[0-9]+$`)
	shortCodeRegex = regexp.MustCompile(`^[QP][0-9]+$`)
)

// InvalidInputError reports caller input that does not have the required
// shape. It is returned before any query is built or submitted.
type InvalidInputError struct {
	Input    string
	Expected string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q, expected %s", e.Input, e.Expected)
}

// MalformedURIError reports a URI without an extractable trailing
// identifier segment.
type MalformedURIError struct {
	URI string
}

func (e MalformedURIError) Error() string {
	return fmt.Sprintf("malformed uri %q, no trailing identifier segment", e.URI)
}

// ValidateEntityID checks that id is an entity short code (ex. Q42).
// Short codes are embedded unescaped into queries, so anything else is
// rejected up front.
func ValidateEntityID(id string) error {
	if !entityIDRegex.MatchString(id) {
		return InvalidInputError{Input: id, Expected: "an entity id of the form Q42"}
	}
	return nil
}

// ValidateShortCode checks that id is an entity or property short code
// (ex. Q42 or P106).
func ValidateShortCode(id string) error {
	if !shortCodeRegex.MatchString(id) {
		return InvalidInputError{Input: id, Expected: "a short code of the form Q42 or P106"}
	}
	return nil
}

// LastSegment returns the last segment of the path of a URI (ex. Q42 for
// https://www.wikidata.org/entity/Q42). A URI ending in a slash or with an
// empty path fails with MalformedURIError.
func LastSegment(rawURI string) (string, error) {
	parsed, err := url.Parse(rawURI)
	if err != nil {
		return "", MalformedURIError{URI: rawURI}
	}
	path := parsed.Path
	if path == "" {
		path = parsed.Opaque
	}
	segment := path[strings.LastIndex(path, "/")+1:]
	if segment == "" {
		return "", MalformedURIError{URI: rawURI}
	}
	return segment, nil
}
