// Package segments provides the segment export tools. Both handlers
// fabricate demonstration data in place of the Braze segments API.
package segments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alucardeht/braze-mcp/internal/tools"
)

// Segment mirrors the shape of a Braze segment export entry.
type Segment struct {
	ID                       string
	Name                     string
	AnalyticsTrackingEnabled bool
	Tags                     []string
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Description              string
	TextDescription          string
	Teams                    []string
}

func GetTools() []tools.Tool {
	return []tools.Tool{
		NewListSegmentsTool(),
		NewSegmentDetailsTool(),
	}
}

type ListSegmentsTool struct{}

func NewListSegmentsTool() *ListSegmentsTool { return &ListSegmentsTool{} }

func (t *ListSegmentsTool) Name() string {
	return "list-segments"
}

func (t *ListSegmentsTool) Description() string {
	return "Export a list of segments with their details"
}

func (t *ListSegmentsTool) Annotations() map[string]bool {
	return tools.RemoteReadAnnotations()
}

func (t *ListSegmentsTool) RequiresAuth() bool { return true }

func (t *ListSegmentsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"page": {
				"type": "integer",
				"description": "The page of segments to return (defaults to 0)",
				"minimum": 0,
				"default": 0
			},
			"sort_direction": {
				"type": "string",
				"enum": ["asc", "desc"],
				"description": "Sort creation time (asc=oldest to newest, desc=newest to oldest)",
				"default": "asc"
			}
		}
	}`)
}

func (t *ListSegmentsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	page := args.Int("page", 0)
	sortDirection := args.String("sort_direction")

	// Placeholder for the paginated segments/list call.
	sample := []Segment{
		{
			ID:                       "segment1",
			Name:                     "Active Users",
			AnalyticsTrackingEnabled: true,
			Tags:                     []string{"engagement", "active"},
		},
		{
			ID:                       "segment2",
			Name:                     "Churned Users",
			AnalyticsTrackingEnabled: true,
			Tags:                     []string{"retention", "inactive"},
		},
	}

	lines := make([]string, len(sample))
	for i, seg := range sample {
		lines[i] = fmt.Sprintf(
			"- %s (ID: %s)\n  Tags: %s\n  Analytics Enabled: %t",
			seg.Name, seg.ID, strings.Join(seg.Tags, ", "), seg.AnalyticsTrackingEnabled,
		)
	}

	return fmt.Sprintf("Segments (Page %d, Sort: %s):\n%s", page, sortDirection, strings.Join(lines, "\n")), nil
}

type SegmentDetailsTool struct{}

func NewSegmentDetailsTool() *SegmentDetailsTool { return &SegmentDetailsTool{} }

func (t *SegmentDetailsTool) Name() string {
	return "get-segment-details"
}

func (t *SegmentDetailsTool) Description() string {
	return "Get detailed information about a specific segment"
}

func (t *SegmentDetailsTool) Annotations() map[string]bool {
	return tools.RemoteReadAnnotations()
}

func (t *SegmentDetailsTool) RequiresAuth() bool { return true }

func (t *SegmentDetailsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"segment_id": {
				"type": "string",
				"description": "The Segment API identifier"
			}
		},
		"required": ["segment_id"]
	}`)
}

func (t *SegmentDetailsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	segmentID := args.String("segment_id")

	// Placeholder for the segments/details call. The two timestamps are
	// captured independently and need not be equal.
	sample := Segment{
		ID:                       segmentID,
		Name:                     "Sample Segment",
		AnalyticsTrackingEnabled: true,
		Tags:                     []string{"sample", "test"},
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
		Description:              "Users who match specific criteria",
		TextDescription:          "This is a sample segment description",
		Teams:                    []string{"Marketing", "Product"},
	}

	return fmt.Sprintf(
		"Segment Details for %s:\nName: %s\nCreated: %s\nUpdated: %s\nDescription: %s\nText Description: %s\nTags: %s\nTeams: %s\nAnalytics Tracking: %t",
		segmentID,
		sample.Name,
		sample.CreatedAt,
		sample.UpdatedAt,
		sample.Description,
		sample.TextDescription,
		strings.Join(sample.Tags, ", "),
		strings.Join(sample.Teams, ", "),
		sample.AnalyticsTrackingEnabled,
	), nil
}
