package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/powerup/internal/mcp"
	"github.com/meltforce/powerup/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dbPath := flag.String("db", "", "path to the local workout database")
	remote := flag.String("remote", "", "base URL of a remote Power Up server (e.g. http://powerup:80)")
	flag.Parse()

	// Logs go to stderr: stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	switch {
	case *remote != "":
		ds = mcp.NewHTTPClient(*remote)
		log.Info("mcp server starting", "mode", "remote", "url", *remote)
	case *dbPath != "":
		db, err := storage.New(context.Background(), *dbPath)
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("mcp server starting", "mode", "local", "db", *dbPath)
	default:
		log.Error("either -db or -remote is required")
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
