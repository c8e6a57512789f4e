package segments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/braze-mcp/internal/tools"
)

func TestListSegments(t *testing.T) {
	out, err := NewListSegmentsTool().Execute(context.Background(), tools.Arguments{
		"page":           2,
		"sort_direction": "desc",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Page 2")
	assert.Contains(t, out, "Sort: desc")
	assert.Contains(t, out, "Active Users (ID: segment1)")
	assert.Contains(t, out, "Churned Users (ID: segment2)")
	assert.Equal(t, 2, strings.Count(out, "(ID: segment"))
	assert.Contains(t, out, "Tags: engagement, active")
}

func TestSegmentDetails(t *testing.T) {
	out, err := NewSegmentDetailsTool().Execute(context.Background(), tools.Arguments{
		"segment_id": "seg-42",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Segment Details for seg-42")
	assert.Contains(t, out, "Name: Sample Segment")
	assert.Contains(t, out, "Description: Users who match specific criteria")
	assert.Contains(t, out, "Tags: sample, test")
	assert.Contains(t, out, "Teams: Marketing, Product")
	assert.Contains(t, out, "Analytics Tracking: true")
}

func TestSegmentToolsAreGated(t *testing.T) {
	for _, tool := range GetTools() {
		assert.True(t, tool.RequiresAuth(), tool.Name())
	}
}
