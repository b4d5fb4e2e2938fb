// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// pokedex-snapshot downloads the whole catalog from a GraphQL endpoint
// into a snapshot file that pokedex can browse offline.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pokedex/lib/clock"
	"github.com/bureau-foundation/pokedex/lib/config"
	"github.com/bureau-foundation/pokedex/lib/graphql"
	"github.com/bureau-foundation/pokedex/lib/logging"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/snapshot"
	"github.com/bureau-foundation/pokedex/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run writes the snapshot. A nil logger logs to stderr at the
// configured level.
func run(args []string, stdout io.Writer, logger *slog.Logger) error {
	var (
		configPath  string
		envFile     string
		endpoint    string
		output      string
		batchSize   int
		compression string
	)
	flagSet := pflag.NewFlagSet("pokedex-snapshot", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "config file (YAML, or JSON with comments); default $POKEDEX_CONFIG")
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flagSet.StringVar(&endpoint, "endpoint", "", "GraphQL endpoint URL (overrides config and $POKEDEX_API_URL)")
	flagSet.StringVarP(&output, "output", "o", "", "snapshot file to write (required)")
	flagSet.IntVar(&batchSize, "batch-size", 100, "items requested per page while downloading")
	flagSet.StringVar(&compression, "compression", "zstd", "body compression: zstd, lz4 or none")
	flagSet.BoolP("help", "h", false, "show help")

	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, "pokedex-snapshot")
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if output == "" {
		return errors.New("--output is required")
	}
	if batchSize < 1 || batchSize > 100 {
		return fmt.Errorf("--batch-size must be between 1 and 100, got %d", batchSize)
	}
	codec, err := snapshot.ParseCompression(compression)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{Path: configPath, EnvFile: envFile})
	if err != nil {
		return err
	}
	if flagSet.Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	if logger == nil {
		logger = logging.NewCommandLogger(cfg.Level())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := graphql.NewClient(graphql.Config{
		Endpoint: cfg.Endpoint,
		Headers:  map[string]string{"User-Agent": "pokedex-snapshot/" + version.Version},
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	timeSource := clock.Real()
	start := timeSource.Now()
	iterator := query.NewPageIterator(query.NewRemoteSource(client), batchSize)
	items, err := iterator.Collect(ctx)
	if err != nil {
		return fmt.Errorf("downloading catalog: %s", query.Describe(err))
	}
	if total := iterator.PageInfo().Total; total != len(items) {
		logger.Warn("catalog changed while downloading", "expected", total, "received", len(items))
	}

	digest, err := snapshot.WriteFile(output, snapshot.Snapshot{
		CreatedAt: timeSource.Now().UTC(),
		Endpoint:  cfg.Endpoint,
		Items:     items,
	}, codec)
	if err != nil {
		return err
	}

	logger.Info("snapshot written",
		"path", output,
		"items", len(items),
		"compression", codec.String(),
		"digest", digest.String(),
		"duration", clock.Since(timeSource, start),
	)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `pokedex-snapshot downloads the whole catalog into a snapshot file.

The file can be browsed offline with "pokedex --snapshot FILE". The
file is replaced atomically, so a running pokedex watching it picks up
the new catalog without seeing a partial write.

Usage:
  pokedex-snapshot --output FILE [flags]

Examples:
  # Snapshot the local development server
  pokedex-snapshot -o pokedex.snap

  # Snapshot another endpoint with LZ4 compression
  pokedex-snapshot -o pokedex.snap --endpoint https://pokedex.example.com/graphql --compression lz4

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
