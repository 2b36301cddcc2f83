package helper

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the public Wikidata query service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

// ClientConfiguration holds the connection settings for the remote query
// service.
type ClientConfiguration struct {
	// EndpointURL is the fixed remote query endpoint.
	EndpointURL string
	// TimeoutSeconds bounds a single query execution at the transport.
	TimeoutSeconds int
	// Language is the preferred label language; English is always the
	// fallback.
	Language string
}

// NewClientConfiguration reads the client configuration from the
// environment. A .env file is loaded first if present; real environment
// variables take precedence.
//
// Recognized variables: WIKIGRAPH_ENDPOINT, WIKIGRAPH_TIMEOUT_SECONDS and
// WIKIGRAPH_LANGUAGE.
func NewClientConfiguration() (*ClientConfiguration, error) {
	// Ignores a missing .env file, envs may be set directly.
	godotenv.Load()

	endpoint := os.Getenv("WIKIGRAPH_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint url %q: %w", endpoint, err)
	}

	timeoutSeconds := 60
	if value := os.Getenv("WIKIGRAPH_TIMEOUT_SECONDS"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid timeout %q, expected a positive number of seconds", value)
		}
		timeoutSeconds = parsed
	}

	return &ClientConfiguration{
		EndpointURL:    endpoint,
		TimeoutSeconds: timeoutSeconds,
		Language:       os.Getenv("WIKIGRAPH_LANGUAGE"),
	}, nil
}

// Timeout returns the configured timeout as a duration.
func (c *ClientConfiguration) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetTestClientConfigEnvs sets the configuration envs for a test, pointing
// the client at the given endpoint (usually an httptest server).
func SetTestClientConfigEnvs(t *testing.T, endpoint string) {
	t.Setenv("WIKIGRAPH_ENDPOINT", endpoint)
	t.Setenv("WIKIGRAPH_TIMEOUT_SECONDS", "5")
	t.Setenv("WIKIGRAPH_LANGUAGE", "en")
}
