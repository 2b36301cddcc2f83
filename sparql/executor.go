package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const userAgent = "wikigraph/1.0 (https://github.com/siherrmann/wikigraph)"

// QueryExecutionError reports a failed query execution: network failure,
// remote service failure or a malformed-query rejection. It wraps the
// underlying cause and is never retried.
type QueryExecutionError struct {
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// Executor defines the interface for executing a SELECT query against a
// query service and returning its result rows.
type Executor interface {
	Select(ctx context.Context, query string) ([]BindingRow, error)
}

// HTTPExecutor executes queries against a remote SPARQL endpoint over HTTP,
// using the standard SPARQL JSON results format.
type HTTPExecutor struct {
	Endpoint string
	client   *http.Client
	log      *slog.Logger
}

// NewHTTPExecutor creates a new executor for the given endpoint. A zero
// timeout leaves the request bound only by the caller context.
func NewHTTPExecutor(endpoint string, timeout time.Duration, logger *slog.Logger) *HTTPExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPExecutor{
		Endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      logger,
	}
}

// selectResponse is the SPARQL 1.1 JSON results document.
type selectResponse struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []BindingRow `json:"bindings"`
	} `json:"results"`
}

// Select submits the query and returns the result rows in service order.
// Every failure is surfaced as a QueryExecutionError wrapping the cause;
// there is no retry. Cancelling the context aborts the request and the
// consumption of the response.
func (e *HTTPExecutor) Select(ctx context.Context, query string) ([]BindingRow, error) {
	requestID := uuid.New().String()

	form := url.Values{}
	form.Set("query", query)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &QueryExecutionError{Err: err}
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/sparql-results+json")
	request.Header.Set("User-Agent", userAgent)

	e.log.Debug("Executing query",
		slog.String("request_id", requestID),
		slog.String("endpoint", e.Endpoint),
		slog.Int("query_length", len(query)))

	response, err := e.client.Do(request)
	if err != nil {
		return nil, &QueryExecutionError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return nil, &QueryExecutionError{
			Err: fmt.Errorf("endpoint returned status %d: %s", response.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var result selectResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, &QueryExecutionError{Err: fmt.Errorf("decode results: %w", err)}
	}

	e.log.Debug("Received query results",
		slog.String("request_id", requestID),
		slog.Int("num_rows", len(result.Results.Bindings)))

	return result.Results.Bindings, nil
}
