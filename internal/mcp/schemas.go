package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// classifyPartTool returns the tool definition for classify_part
func classifyPartTool() mcp.Tool {
	return mcp.Tool{
		Name:        "classify_part",
		Description: "Classify a manufacturer part number into a component type with extracted attributes",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mpn": map[string]interface{}{
					"type":        "string",
					"description": "Manufacturer part number, e.g. 'RC0805FR-0710KL'",
				},
				"all_candidates": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, include every candidate classification, not just the best one (second-sourced parts match several manufacturers)",
					"default":     false,
				},
			},
			Required: []string{"mpn"},
		},
	}
}

// classifyBatchTool returns the tool definition for classify_batch
func classifyBatchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "classify_batch",
		Description: "Classify a bill of materials: every item concurrently, results in input order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"items": map[string]interface{}{
					"type":        "array",
					"description": "BOM lines to classify",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"mpn": map[string]interface{}{
								"type":        "string",
								"description": "Manufacturer part number",
							},
							"reference": map[string]interface{}{
								"type":        "string",
								"description": "Reference designator, e.g. 'R12'",
							},
							"quantity": map[string]interface{}{
								"type":        "integer",
								"description": "Line quantity",
								"minimum":     1,
							},
						},
						"required": []string{"mpn"},
					},
				},
			},
			Required: []string{"items"},
		},
	}
}

// comparePartsTool returns the tool definition for compare_parts
func comparePartsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "compare_parts",
		Description: "Score the similarity of two part numbers under a substitution profile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mpn_a": map[string]interface{}{
					"type":        "string",
					"description": "First part number",
				},
				"mpn_b": map[string]interface{}{
					"type":        "string",
					"description": "Second part number",
				},
				"profile": map[string]interface{}{
					"type":        "string",
					"description": "Substitution profile controlling strictness",
					"enum": []string{
						"design-phase", "replacement", "performance-upgrade",
						"cost-optimization", "emergency-sourcing",
					},
					"default": "replacement",
				},
			},
			Required: []string{"mpn_a", "mpn_b"},
		},
	}
}

// listProfilesTool returns the tool definition for list_profiles
func listProfilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_profiles",
		Description: "List the available substitution profiles and their acceptance thresholds",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report registry, cache and store statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
