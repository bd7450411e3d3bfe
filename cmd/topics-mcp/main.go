package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pluggentipsar/intervju-transkribering/internal/mcpserver"
)

const version = "0.3.0"

func main() {
	log := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	s := mcpserver.New(version)
	log.Info("serving MCP over stdio", "version", version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
