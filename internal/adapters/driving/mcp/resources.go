package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for solidkit resources.
	uriScheme = "solidkit://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "examples",
		Name:        "examples",
		Description: "The example catalog",
		MIMEType:    "application/json",
	}, s.handleExamplesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "examples/{principle}/{variant}",
		Name:        "example",
		Description: "Description of one example",
		MIMEType:    "text/markdown",
	}, s.handleExampleResource)
}

// handleExamplesResource returns the whole catalog as JSON.
func (s *Server) handleExamplesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	list := s.ports.Catalog.List(domain.ExampleFilter{})
	infos := make([]ExampleOutput, len(list))
	for i := range list {
		infos[i] = toExampleOutput(list[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling examples: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleExampleResource describes one example in markdown.
func (s *Server) handleExampleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractExampleID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	example, err := s.ports.Catalog.Get(id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     describeExample(example),
		}},
	}, nil
}

func describeExample(e *domain.Example) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "%s, %s variant (`%s`)\n\n", e.Principle.Description(), e.Variant, e.ID)
	b.WriteString(e.Summary)
	b.WriteString("\n")
	if len(e.Notes) > 0 {
		b.WriteString("\n")
		for _, note := range e.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

// extractExampleID extracts "principle/variant" from a URI like
// solidkit://examples/{principle}/{variant}.
func extractExampleID(uri string) string {
	const prefix = uriScheme + "examples/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	principle, variant, ok := strings.Cut(id, "/")
	if !ok || principle == "" || variant == "" || strings.Contains(variant, "/") {
		return ""
	}
	return id
}
