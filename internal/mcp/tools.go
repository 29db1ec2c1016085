package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/partmatch-mcp/internal/batch"
	"github.com/dshills/partmatch-mcp/internal/metadata"
	"github.com/dshills/partmatch-mcp/internal/storage"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams  = -32602 // Invalid method parameters
	ErrorCodeInternalError  = -32603 // Internal JSON-RPC error
	ErrorCodeMalformedMPN   = -32001 // MPN is blank or unparseable
	ErrorCodeUnknownProfile = -32002 // Requested profile does not exist
	ErrorCodeEmptyBatch     = -32003 // Batch contains no items
)

// handleClassifyPart handles the classify_part tool invocation
func (s *Server) handleClassifyPart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	mpn, ok := args["mpn"].(string)
	if !ok || mpn == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "mpn parameter is required", map[string]interface{}{
			"param":  "mpn",
			"reason": "missing or empty",
		})
	}
	allCandidates := getBoolDefault(args, "all_candidates", false)

	part, err := s.classifier.Classify(mpn)
	if errors.Is(err, types.ErrMalformedInput) {
		return nil, newMCPError(ErrorCodeMalformedMPN, "malformed MPN", map[string]interface{}{
			"mpn": mpn,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "classification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	candidates, err := s.classifier.ClassifyAll(mpn)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "classification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	tier := types.TierLow
	if len(candidates) > 0 {
		tier = candidates[0].Tier
	}

	// Audit trail is best effort: a full store never blocks classification.
	if !part.IsUnknown() {
		if err := s.storage.RecordClassification(ctx, storage.FromResolvedPart(part, tier)); err != nil {
			log.Printf("WARNING: failed to record classification: %v", err)
		}
	}

	response := partResponse(part, tier)
	if allCandidates {
		response["candidates"] = candidateList(candidates)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleClassifyBatch handles the classify_batch tool invocation
func (s *Server) handleClassifyBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	rawItems, ok := args["items"].([]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "items parameter is required", map[string]interface{}{
			"param":  "items",
			"reason": "missing or not an array",
		})
	}
	if len(rawItems) == 0 {
		return nil, newMCPError(ErrorCodeEmptyBatch, "batch contains no items", nil)
	}

	items := make([]batch.Item, 0, len(rawItems))
	for i, raw := range rawItems {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid batch item", map[string]interface{}{
				"index": i,
			})
		}
		mpn, _ := entry["mpn"].(string)
		if mpn == "" {
			return nil, newMCPError(ErrorCodeInvalidParams, "batch item missing mpn", map[string]interface{}{
				"index": i,
			})
		}
		items = append(items, batch.Item{
			MPN:       mpn,
			Reference: getStringDefault(entry, "reference", ""),
			Quantity:  getIntDefault(entry, "quantity", 0),
		})
	}

	results, err := s.runner.Classify(ctx, items)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "batch classification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	stats := batch.Summarize(results)
	out := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		entry := map[string]interface{}{
			"mpn": res.Item.MPN,
		}
		if res.Item.Reference != "" {
			entry["reference"] = res.Item.Reference
		}
		if res.Item.Quantity > 0 {
			entry["quantity"] = res.Item.Quantity
		}
		if res.Err != nil {
			entry["error"] = res.Err.Error()
		} else {
			entry["part"] = partResponse(res.Part, "")
		}
		out = append(out, entry)
	}

	response := map[string]interface{}{
		"results": out,
		"summary": map[string]interface{}{
			"total":      stats.Total,
			"classified": stats.Classified,
			"unknown":    stats.Unknown,
			"failed":     stats.Failed,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCompareParts handles the compare_parts tool invocation
func (s *Server) handleCompareParts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	mpnA, ok := args["mpn_a"].(string)
	if !ok || mpnA == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "mpn_a parameter is required", map[string]interface{}{
			"param":  "mpn_a",
			"reason": "missing or empty",
		})
	}
	mpnB, ok := args["mpn_b"].(string)
	if !ok || mpnB == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "mpn_b parameter is required", map[string]interface{}{
			"param":  "mpn_b",
			"reason": "missing or empty",
		})
	}
	profileName := getStringDefault(args, "profile", metadata.ProfileNameReplacement)

	result, err := s.classifier.Compare(mpnA, mpnB, profileName)
	if errors.Is(err, types.ErrUnknownProfile) {
		return nil, newMCPError(ErrorCodeUnknownProfile, "unknown profile", map[string]interface{}{
			"profile": profileName,
		})
	}
	if errors.Is(err, types.ErrMalformedInput) {
		return nil, newMCPError(ErrorCodeMalformedMPN, "malformed MPN", nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "comparison failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := s.storage.RecordComparison(ctx, storage.FromSimilarityResult(mpnA, mpnB, result)); err != nil {
		log.Printf("WARNING: failed to record comparison: %v", err)
	}

	breakdown := make([]map[string]interface{}, 0, len(result.Breakdown))
	for _, entry := range result.Breakdown {
		breakdown = append(breakdown, map[string]interface{}{
			"name":         entry.Name,
			"importance":   string(entry.Importance),
			"raw_score":    entry.Raw,
			"weight":       entry.Weight,
			"contribution": entry.Contribution,
			"missing":      entry.Missing,
		})
	}

	response := map[string]interface{}{
		"mpn_a":           types.NormalizeMPN(mpnA),
		"mpn_b":           types.NormalizeMPN(mpnB),
		"profile":         result.Profile,
		"score":           result.Score,
		"acceptable":      result.Acceptable,
		"short_circuited": result.ShortCircuited,
		"unscored":        result.Unscored,
		"breakdown":       breakdown,
	}
	if result.Reason != "" {
		response["reason"] = result.Reason
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListProfiles handles the list_profiles tool invocation
func (s *Server) handleListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profiles := make([]map[string]interface{}, 0, 5)
	for _, p := range metadata.Profiles() {
		profiles = append(profiles, map[string]interface{}{
			"name":          p.Name,
			"minimum_score": p.MinimumScore,
		})
	}

	response := map[string]interface{}{
		"profiles": profiles,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	clsStatus := s.classifier.Status()

	storeStatus, err := s.storage.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server": map[string]interface{}{
			"name":    ServerName,
			"version": ServerVersion,
		},
		"registry": map[string]interface{}{
			"providers":      clsStatus.Providers,
			"rules":          clsStatus.Rules,
			"rule_errors":    clsStatus.RuleErrors,
			"metadata_types": clsStatus.MetadataTypes,
			"cached_parts":   clsStatus.CachedParts,
		},
		"store": map[string]interface{}{
			"database_accessible": storeStatus.DatabaseAccessible,
			"cross_references":    storeStatus.CrossReferences,
			"classifications":     storeStatus.Classifications,
			"comparisons":         storeStatus.Comparisons,
			"schema_version":      storeStatus.SchemaVersion,
			"build_mode":          storeStatus.BuildMode,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// partResponse formats a resolved part for tool output. tier may be empty
// when confidence is not known (batch entries).
func partResponse(part types.ResolvedPart, tier types.ConfidenceTier) map[string]interface{} {
	response := map[string]interface{}{
		"mpn":     part.MPN,
		"unknown": part.IsUnknown(),
	}
	if part.IsUnknown() {
		return response
	}

	response["type"] = string(part.Type)
	response["base_type"] = string(part.Type.BaseType())
	response["manufacturer"] = string(part.Manufacturer)
	if part.PackageCode != "" {
		response["package_code"] = part.PackageCode
	}
	if part.Series != "" {
		response["series"] = part.Series
	}
	if tier != "" {
		response["confidence"] = string(tier)
	}
	if len(part.Attributes) > 0 {
		attrs := make(map[string]interface{}, len(part.Attributes))
		for name, val := range part.Attributes {
			if val.IsNumeric {
				attrs[name] = val.Num
			} else {
				attrs[name] = val.Raw
			}
		}
		response["attributes"] = attrs
	}
	return response
}

// candidateList formats ranked candidates for tool output.
func candidateList(candidates []types.Candidate) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, map[string]interface{}{
			"manufacturer": string(c.Owner),
			"type":         string(c.Type),
			"confidence":   string(c.Tier),
			"score":        c.Score,
		})
	}
	return out
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
