// Command careconsole runs the call-handling console in the terminal, or
// serves its assistant knowledge base over MCP with "careconsole mcp".
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jwulff/careconsole/internal/app"
	"github.com/jwulff/careconsole/internal/assist"
	"github.com/jwulff/careconsole/internal/config"
	"github.com/jwulff/careconsole/internal/console"
	"github.com/jwulff/careconsole/internal/db"
	"github.com/jwulff/careconsole/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()

	opts, err := parseArgs(cfg, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.showVersion {
		fmt.Printf("careconsole version %s\n", version)
		return nil
	}

	logger, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	transcript := loadTranscript(cfg, logger)

	switch opts.command {
	case "":
		return runTUI(cfg, logger, transcript)
	case "mcp":
		kb := assist.DefaultKnowledgeBase()
		if len(transcript) > 0 {
			kb.Transcript = transcript
		}
		logger.Info("serving mcp on stdio")
		return assist.Serve(kb, version)
	}
	return nil
}

type cliOptions struct {
	command     string
	showVersion bool
}

// parseArgs applies flags to cfg. Flags are accepted on either side of the
// subcommand, so "careconsole mcp -transcript-db x" works.
func parseArgs(cfg *config.Config, args []string) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("careconsole", flag.ContinueOnError)
	fs.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	cfg.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: careconsole [flags] [mcp [flags]]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() == 0 {
		return opts, nil
	}

	opts.command = fs.Arg(0)
	if opts.command != "mcp" {
		fs.Usage()
		return opts, fmt.Errorf("unknown command %q", opts.command)
	}
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

// loadTranscript reads the configured transcript database. Failures fall
// back to the built-in transcript.
func loadTranscript(cfg *config.Config, logger *logging.Logger) []console.TranscriptMessage {
	if cfg.TranscriptDB == "" {
		return nil
	}
	lines, err := db.LoadTranscript(cfg.TranscriptDB)
	if err != nil {
		logger.Warn("using built-in transcript", "path", cfg.TranscriptDB, "error", err)
		return nil
	}
	logger.Info("transcript loaded", "path", cfg.TranscriptDB, "lines", len(lines))
	return lines
}

func runTUI(cfg *config.Config, logger *logging.Logger, transcript []console.TranscriptMessage) error {
	c := console.New(console.Options{
		ReplyDelay: cfg.ReplyDelay,
		Transcript: transcript,
	})
	m := app.New(c, app.Options{
		Logger:    logger,
		NotifyTTL: cfg.NotifyTTL,
		AgentName: cfg.AgentName,
	})

	logger.Info("console started", "customer", c.Profile().Name, "reply_delay", cfg.ReplyDelay.String())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("console exited", "notifications", len(c.Notifications()))
	return nil
}
