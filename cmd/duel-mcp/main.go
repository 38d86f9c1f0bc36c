// Command duel-mcp exposes the planner as an MCP stdio server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/cardforge/duelcore/internal/mcpagent"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to decks YAML file")
	flag.Parse()

	mcpagent.SetDecksFile(*decks)

	s := server.NewMCPServer("duelcore", "1.0.0")
	mcpagent.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
