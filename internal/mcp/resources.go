// resources.go serves the built-in suites as read-only resources so a client
// can load the recorded behaviour of a dialect as context.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/pathoracle/internal/oracle"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const suitePrefix = "pathoracle://suites/"

// readSuite handles pathoracle://suites/{dialect} resource requests.
func (h *handlers) readSuite(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	name, err := parseSuiteURI(uri)
	if err != nil {
		return nil, err
	}

	s, err := oracle.Builtin(name)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	if err := s.Encode(&b); err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/yaml",
			Text:     b.String(),
		},
	}, nil
}

// parseSuiteURI extracts the dialect from pathoracle://suites/{dialect}.
func parseSuiteURI(uri string) (string, error) {
	name, ok := strings.CutPrefix(uri, suitePrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return name, nil
}
