// Package mcp implements the Model Context Protocol (MCP) server for
// PartMatch.
//
// The server exposes five tools:
//   - classify_part: classify one MPN into a component type with attributes
//   - classify_batch: classify a bill of materials concurrently
//   - compare_parts: score two MPNs under a substitution profile
//   - list_profiles: enumerate the substitution profiles
//   - get_status: registry, cache and store statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Tool: classify_part
//
//	Request:
//	{
//	  "name": "classify_part",
//	  "arguments": {
//	    "mpn": "RC0805FR-0710KL",
//	    "all_candidates": false
//	  }
//	}
//
//	Response:
//	{
//	  "mpn": "RC0805FR-0710KL",
//	  "unknown": false,
//	  "type": "resistor.yageo-chip",
//	  "base_type": "resistor",
//	  "manufacturer": "yageo",
//	  "package_code": "0805",
//	  "confidence": "medium",
//	  "attributes": {
//	    "resistance": 10000,
//	    "tolerance": 1,
//	    "power": 0.125,
//	    "package": "0805"
//	  }
//	}
//
// # Tool: compare_parts
//
//	Request:
//	{
//	  "name": "compare_parts",
//	  "arguments": {
//	    "mpn_a": "RC0805FR-0710KL",
//	    "mpn_b": "CRCW080510K0FKEA",
//	    "profile": "replacement"
//	  }
//	}
//
//	Response:
//	{
//	  "score": 1.0,
//	  "acceptable": true,
//	  "profile": "replacement",
//	  "short_circuited": false,
//	  "breakdown": [...]
//	}
//
// # Error Handling
//
// The server returns standard JSON-RPC error responses. Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (database, filesystem, etc.)
//   - -32001: Malformed MPN
//   - -32002: Unknown profile
//   - -32003: Empty batch
//
// # Logging
//
// The server logs to stderr (stdout is reserved for MCP protocol).
package mcp
