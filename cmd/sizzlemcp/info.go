package main

import (
	"flag"
	"fmt"
	"os"
)

// runInfo handles the "sizzlemcp info" subcommand.
// It prints general MCP configuration information and, with flags,
// client-specific configuration snippets.
func runInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	opencode := fs.Bool("opencode", false, "show OpenCode MCP client configuration")
	claude := fs.Bool("claude", false, "show Claude Desktop MCP client configuration")
	cursor := fs.Bool("cursor", false, "show Cursor MCP client configuration")
	fs.Parse(args)

	switch {
	case *opencode:
		printOpenCodeConfig()
	case *claude:
		printClaudeConfig()
	case *cursor:
		printCursorConfig()
	default:
		printGeneralInfo()
	}
}

func printGeneralInfo() {
	fmt.Fprintf(os.Stdout, `sizzlemcp %s — AI cinematography pipeline MCP server

sizzlemcp exposes the sizzle pipeline — scene analysis, sequence
planning, shot grammar resolution, guardrail validation, and sequence
evaluation — as MCP tools.

TRANSPORT MODES

  stdio (default)
    Communicates over stdin/stdout using JSON-RPC 2.0. Used when launched
    as a subprocess by an MCP client.

  http
    MCP Streamable HTTP transport (spec 2025-03-26), mounted on gin with
    per-session rate limiting.

    Endpoint:      POST /mcp
    Health check:  GET /health
    Default port:  21453

  ws
    WebSocket transport for long-lived bidirectional clients. Frames
    carry the same JSON-RPC envelope as stdio.

    Endpoint:      /mcp
    Default port:  21453

TOOLS (9)

  analyze_scene           Classify a scene's content_type, visual_weight,
                           motion_energy, intent_tags, and shot_grammar.
  plan_sequence            Order scenes and build a sequence manifest.
  validate_choreography    Check a scene or a single layer in isolation.
  validate_guardrails      Check a camera move or manifest against safety
                           bounds.
  evaluate_sequence        Score pacing, variety, flow, and style
                           adherence.
  get_personality          Look up a personality by slug.
  get_style_pack           Look up a style pack by name.
  search_primitives        Search the animation primitives registry.
  get_primitive            Look up a single animation primitive by ID.

PROMPTS (1)

  sizzle-guide   Walkthrough of the pipeline, step by step.

RESOURCES (2)

  sizzle://catalog-schema   Reference for the five catalog documents.
  sizzle://tool-reference   Tool usage quick reference.

GETTING STARTED

  1. Look up a personality and style pack.
  2. Analyze each authored scene.
  3. Plan the sequence.
  4. Check guardrails against the resulting manifest.
  5. Evaluate the sequence.

CLIENT CONFIGURATION

  To see configuration for a specific MCP client, run:

    sizzlemcp info --opencode    OpenCode (.opencode.json)
    sizzlemcp info --claude      Claude Desktop (claude_desktop_config.json)
    sizzlemcp info --cursor      Cursor (.cursor/mcp.json)
`, Version)
}

func printOpenCodeConfig() {
	printStdioConfig("OpenCode", ".opencode.json or opencode.json", `{
  "mcpServers": {
    "sizzle": {
      "command": "sizzlemcp"
    }
  }
}`)

	printHTTPConfig("OpenCode", ".opencode.json or opencode.json", `{
  "mcpServers": {
    "sizzle": {
      "type": "streamable-http",
      "url": "http://your-sizzlemcp-server:21453/mcp"
    }
  }
}`)
}

func printClaudeConfig() {
	printStdioConfig("Claude Desktop", "claude_desktop_config.json", `{
  "mcpServers": {
    "sizzle": {
      "command": "sizzlemcp"
    }
  }
}`)

	printHTTPConfig("Claude Desktop", "claude_desktop_config.json", `{
  "mcpServers": {
    "sizzle": {
      "type": "streamable-http",
      "url": "http://your-sizzlemcp-server:21453/mcp"
    }
  }
}`)
}

func printCursorConfig() {
	printStdioConfig("Cursor", ".cursor/mcp.json", `{
  "mcpServers": {
    "sizzle": {
      "command": "sizzlemcp"
    }
  }
}`)

	printHTTPConfig("Cursor", ".cursor/mcp.json", `{
  "mcpServers": {
    "sizzle": {
      "type": "streamable-http",
      "url": "http://your-sizzlemcp-server:21453/mcp"
    }
  }
}`)
}

func printStdioConfig(client, file, cfg string) {
	fmt.Fprintf(os.Stdout, `%s — stdio mode

Add to %s:

%s

sizzlemcp runs as a subprocess — no server needed.

`, client, file, cfg)
}

func printHTTPConfig(client, file, cfg string) {
	fmt.Fprintf(os.Stdout, `%s — HTTP mode (remote server)

Add to %s:

%s

`, client, file, cfg)
}
