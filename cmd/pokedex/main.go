// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// pokedex browses a Pokémon catalog served over GraphQL, or from a
// snapshot file, in an interactive terminal UI. When stdout is not a
// terminal (or with --plain) it prints the requested route once and
// exits.
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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/pokedex/lib/catalogui"
	"github.com/bureau-foundation/pokedex/lib/config"
	"github.com/bureau-foundation/pokedex/lib/graphql"
	"github.com/bureau-foundation/pokedex/lib/logging"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/snapshot"
	"github.com/bureau-foundation/pokedex/lib/sprite"
	"github.com/bureau-foundation/pokedex/lib/store"
	"github.com/bureau-foundation/pokedex/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line.
type options struct {
	configPath string
	envFile    string
	endpoint   string
	perPage    int
	snapshot   string
	route      string
	page       int
	search     string
	plain      bool
	noSprites  bool
	logOutput  string
}

func run(args []string, stdout io.Writer) error {
	var flags options
	flagSet := pflag.NewFlagSet("pokedex", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&flags.configPath, "config", "", "config file (YAML, or JSON with comments); default $POKEDEX_CONFIG")
	flagSet.StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flagSet.StringVar(&flags.endpoint, "endpoint", "", "GraphQL endpoint URL (overrides config and $POKEDEX_API_URL)")
	flagSet.IntVar(&flags.perPage, "per-page", 0, "items per list page")
	flagSet.StringVar(&flags.snapshot, "snapshot", "", "browse this snapshot file instead of the endpoint")
	flagSet.StringVar(&flags.route, "route", "/", "initial route: /, /pokemon/<id or name>, /about")
	flagSet.IntVar(&flags.page, "page", 1, "initial list page")
	flagSet.StringVar(&flags.search, "search", "", "initial search term")
	flagSet.BoolVar(&flags.plain, "plain", false, "print the route as text instead of starting the UI")
	flagSet.BoolVar(&flags.noSprites, "no-sprites", false, "do not draw artwork")
	flagSet.StringVar(&flags.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status line)")
	flagSet.BoolP("help", "h", false, "show help")

	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, "pokedex")
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

	cfg, err := config.Load(config.Options{Path: flags.configPath, EnvFile: flags.envFile})
	if err != nil {
		return err
	}
	if flagSet.Changed("endpoint") {
		cfg.Endpoint = flags.endpoint
	}
	if flagSet.Changed("per-page") {
		cfg.PerPage = flags.perPage
	}
	if flagSet.Changed("snapshot") {
		cfg.Snapshot = flags.snapshot
	}
	if flags.noSprites {
		cfg.Sprites.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	shared := store.New()
	if flags.search != "" {
		shared.SetSearchTerm(flags.search)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if flags.plain || !isTerminal(stdout) {
		logger := logging.NewCommandLogger(cfg.Level())
		source, _, closeSource, err := openSource(cfg, logger, false)
		if err != nil {
			return err
		}
		defer closeSource()
		return catalogui.Print(ctx, stdout, catalogui.Config{
			Source:  source,
			Store:   shared,
			PerPage: cfg.PerPage,
			Route:   flags.route,
			Page:    flags.page,
			Timeout: cfg.Timeout(),
			Logger:  logger,
		})
	}

	return runBrowser(cfg, flags, shared)
}

// runBrowser runs the interactive UI. Log records go to the status
// line, since stderr writes would corrupt the alternate screen, and
// optionally to a file as well.
func runBrowser(cfg *config.Config, flags options, shared *store.Store) error {
	statusHandler := catalogui.NewLogHandler(max(cfg.Level(), slog.LevelWarn))
	var handler slog.Handler = statusHandler
	if flags.logOutput != "" {
		fileHandler, closeFile, err := logging.OpenFileHandler(flags.logOutput)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", flags.logOutput, err)
		}
		defer closeFile()
		handler = logging.FanoutHandler{statusHandler, fileHandler}
	}
	logger := slog.New(handler)

	source, updates, closeSource, err := openSource(cfg, logger, true)
	if err != nil {
		return err
	}
	defer closeSource()

	var sprites *sprite.Loader
	if cfg.Sprites.Enabled {
		sprites = sprite.NewLoader(sprite.Config{
			Width:   cfg.Sprites.Width,
			Profile: termenv.EnvColorProfile(),
			Logger:  logger,
		})
	}

	model := catalogui.NewModel(catalogui.Config{
		Source:  source,
		Store:   shared,
		PerPage: cfg.PerPage,
		Route:   flags.route,
		Page:    flags.page,
		Sprites: sprites,
		Updates: updates,
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	statusHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

// openSource returns the catalog source the configuration names. With
// watch, a snapshot file is watched and the returned channel signals
// reloads.
func openSource(cfg *config.Config, logger *slog.Logger, watch bool) (query.Source, <-chan struct{}, func(), error) {
	if cfg.Snapshot != "" {
		source, err := snapshot.Open(cfg.Snapshot)
		if err != nil {
			return nil, nil, nil, err
		}
		stop := func() {}
		if watch {
			if stop, err = snapshot.Watch(cfg.Snapshot, source, logger); err != nil {
				return nil, nil, nil, err
			}
		}
		logger.Debug("serving snapshot",
			"path", cfg.Snapshot,
			"items", source.Len(),
			"created_at", source.CreatedAt(),
			"endpoint", source.Endpoint(),
		)
		return source, source.Subscribe(), stop, nil
	}

	client, err := graphql.NewClient(graphql.Config{
		Endpoint: cfg.Endpoint,
		Headers:  map[string]string{"User-Agent": "pokedex/" + version.Version},
		Logger:   logger,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return query.NewRemoteSource(client), nil, func() {}, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `pokedex browses a Pokémon catalog in the terminal.

The catalog comes from a GraphQL endpoint (default %s, or
$POKEDEX_API_URL), or from a snapshot file written by pokedex-snapshot.
A snapshot is watched and the view refreshes when the file is replaced.

When stdout is not a terminal, or with --plain, the route is printed
once as text. Exit status is 2 when the route or Pokémon does not
exist and 1 when a fetch fails.

Usage:
  pokedex [flags]

Examples:
  # Browse the local development server
  pokedex

  # Open Pikachu's page
  pokedex --route /pokemon/25

  # Print page 3 of the list filtered to names containing "saur"
  pokedex --plain --page 3 --search saur

  # Browse offline
  pokedex --snapshot pokedex.snap

Flags:
`, config.DefaultEndpoint)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
