// Command litmapgen generates static lookup code from a pattern manifest.
//
// Typical use from a go:generate directive:
//
//	//go:generate go run github.com/coregx/litmap/cmd/litmapgen --manifest mime.yaml --out mime_lookup.go
//
// With --check the generated output is compared with the file named by
// --out and the command fails if they differ, which keeps committed
// generated code in sync with its manifest.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/coregx/litmap/codegen"
	"github.com/coregx/litmap/internal/manifest"
)

type cli struct {
	Manifest string `short:"m" required:"" type:"existingfile" help:"YAML manifest listing patterns and values"`
	Out      string `short:"o" help:"Output file; stdout when empty"`
	Dialect  string `default:"go" enum:"go,dot,json" help:"Output dialect (go, dot, json)"`
	Strategy string `default:"" enum:",switch,table" help:"Override the manifest's dispatch strategy (switch, table)"`
	Check    bool   `help:"Do not write; fail if --out differs from the generated output"`
	Verbose  bool   `short:"v" help:"Log debug details"`
}

var errStale = errors.New("generated file is out of date")

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("litmapgen"),
		kong.Description("Generate allocation-free literal lookup code from a manifest."),
	)

	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(params, os.Stdout, logger); err != nil {
		logger.Error("Generation failed", "manifest", params.Manifest, "error", err)
		os.Exit(1)
	}
}

func run(params cli, stdout io.Writer, logger *slog.Logger) error {
	m, err := manifest.Load(params.Manifest)
	if err != nil {
		return err
	}
	logger.Debug("Loaded manifest", "path", params.Manifest, "patterns", len(m.Patterns),
		"caseInsensitive", m.CaseInsensitive)

	a, err := m.Compile()
	if err != nil {
		return err
	}
	logger.Debug("Built automaton", "states", a.States(), "terminals", a.Terminals(),
		"classes", a.ByteClasses().AlphabetLen())

	opts := m.Options()
	if opts.Dialect, err = codegen.ParseDialect(params.Dialect); err != nil {
		return err
	}
	if params.Strategy != "" {
		if opts.Strategy, err = codegen.ParseStrategy(params.Strategy); err != nil {
			return err
		}
	}

	out, err := codegen.Emit(a, opts)
	if err != nil {
		return err
	}

	switch {
	case params.Check:
		if params.Out == "" {
			return errors.New("--check requires --out")
		}
		current, err := os.ReadFile(params.Out)
		if err != nil {
			return fmt.Errorf("check %s: %w", params.Out, err)
		}
		if !bytes.Equal(current, out) {
			return fmt.Errorf("%w: %s (regenerate from %s)", errStale, params.Out, params.Manifest)
		}
		logger.Info("Generated file is up to date", "file", params.Out)
		return nil

	case params.Out == "":
		_, err := stdout.Write(out)
		return err

	default:
		if err := os.WriteFile(params.Out, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", params.Out, err)
		}
		logger.Info("Wrote generated file", "file", params.Out, "dialect", opts.Dialect,
			"strategy", opts.Strategy, "bytes", len(out))
		return nil
	}
}
