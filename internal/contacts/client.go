package contacts

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	people "google.golang.org/api/people/v1"
)

const searchReadMask = "names,emailAddresses,organizations"

// Client wraps the Google People API service
type Client struct {
	service *people.Service
}

// NewClient creates a People client on an authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := people.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create People service: %w", err)
	}
	return &Client{service: service}, nil
}

// Search looks up contacts by name query and returns display strings
// of the form "Name (Org, Dept, Title) <email>".
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	resp, err := c.service.People.SearchContacts().
		Context(ctx).
		Query(query).
		ReadMask(searchReadMask).
		PageSize(10).
		Do()
	if err != nil {
		return nil, fmt.Errorf("contact search failed: %w", err)
	}

	results := make([]string, 0, len(resp.Results))
	for _, item := range resp.Results {
		if item.Person == nil {
			continue
		}
		results = append(results, formatPerson(item.Person))
	}
	return results, nil
}

// formatPerson builds the display string, omitting absent decorations.
func formatPerson(p *people.Person) string {
	name := "No Name"
	if len(p.Names) > 0 && p.Names[0].DisplayName != "" {
		name = p.Names[0].DisplayName
	}

	var sb strings.Builder
	sb.WriteString(name)

	if len(p.Organizations) > 0 {
		org := p.Organizations[0]
		var parts []string
		for _, part := range []string{org.Name, org.Department, org.Title} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			sb.WriteString(" (")
			sb.WriteString(strings.Join(parts, ", "))
			sb.WriteString(")")
		}
	}

	if len(p.EmailAddresses) > 0 && p.EmailAddresses[0].Value != "" {
		sb.WriteString(" <")
		sb.WriteString(p.EmailAddresses[0].Value)
		sb.WriteString(">")
	}

	return sb.String()
}
