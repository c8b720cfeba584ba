// Command lookup resolves words through the dictionary, AI and fallback
// tiers and prints the resulting records as JSON. It does not touch the
// database.
//
// Usage:
//
//	lookup [-timeout 20s] word [word...]
//
// Exit codes: 0 = every word resolved, 1 = error or at least one word not found.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moe-backend/internal/app"
	"github.com/heartmarshall/moe-backend/internal/config"
	"github.com/heartmarshall/moe-backend/internal/domain"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout for all lookups")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lookup [-timeout 30s] word [word...]")
		os.Exit(1)
	}

	cfg, err := config.LoadLookup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resolver, err := app.NewResolver(ctx, cfg, logger)
	if err != nil {
		logger.Error("build resolver", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	failed := false
	for _, arg := range flag.Args() {
		word := domain.NormalizeText(arg)
		details, err := resolver.Resolve(ctx, word)
		if err != nil {
			logger.Error("lookup failed", slog.String("word", word), slog.String("error", err.Error()))
			failed = true
			continue
		}
		if err := enc.Encode(details); err != nil {
			logger.Error("encode result", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if failed {
		os.Exit(1)
	}
}
