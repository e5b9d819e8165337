// Package main provides the CLI entrypoint for conversion-table.
//
// conversion-table generates boundary tables for integer conversions:
//   - Prints the YAML suite of a target kind (-target UInt8)
//   - Writes it to a file (-o suite.yaml)
//   - Verifies a stored suite against the oracle (-verify suite.yaml)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"conversion-oracle/boundary"
	"conversion-oracle/conversion"
	"conversion-oracle/internal/common"
	"conversion-oracle/primitive"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("conversion-table", flag.ContinueOnError)
	fs.SetOutput(stderr)

	target := fs.String("target", "UInt8", "integer target kind, e.g. UInt8, Int64, uint")
	sources := fs.String("sources", "", "comma separated source kinds (default: all)")
	output := fs.String("o", "", "write the suite to this file instead of stdout")
	verify := fs.String("verify", "", "verify a stored suite instead of generating one")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if path := *verify; path != "" {
		return verifySuite(ctx, logger, path)
	}

	if arg, ok := common.First(fs.Args()); ok {
		logger.ErrorContext(ctx, "unexpected argument", "arg", arg)
		return 2
	}

	opts, targetKind, err := parseGenerateFlags(*target, *sources)
	if err != nil {
		logger.ErrorContext(ctx, "invalid flags", "error", err)
		return 2
	}

	suite, err := boundary.Generate(targetKind, opts)
	if err != nil {
		logger.ErrorContext(ctx, "generate failed", "target", *target, "error", err)
		return 1
	}

	logger.DebugContext(ctx, "suite generated",
		"name", suite.Name,
		"sections", len(suite.Sections),
		"pointer_bits", suite.PointerBits,
	)

	if *output != "" {
		if err := boundary.WriteFile(suite, *output); err != nil {
			logger.ErrorContext(ctx, "write failed", "error", err)
			return 1
		}

		logger.InfoContext(ctx, "suite written", "name", suite.Name, "file", *output)
		return 0
	}

	data, err := boundary.Marshal(suite)
	if err != nil {
		logger.ErrorContext(ctx, "marshal failed", "error", err)
		return 1
	}

	if _, err := stdout.Write(data); err != nil {
		logger.ErrorContext(ctx, "write failed", "error", err)
		return 1
	}

	return 0
}

func parseGenerateFlags(target, sources string) (boundary.Options, primitive.KindEnum, error) {
	var opts boundary.Options

	targetKind, err := primitive.ParseKind(target)
	if err != nil {
		return opts, 0, fmt.Errorf("-target: %w", err)
	}

	if sources == "" {
		return opts, targetKind, nil
	}

	for _, name := range strings.Split(sources, ",") {
		kind, err := primitive.ParseKind(name)
		if err != nil {
			return opts, 0, fmt.Errorf("-sources: %w", err)
		}

		opts.Sources = append(opts.Sources, kind)
	}

	return opts, targetKind, nil
}

func verifySuite(ctx context.Context, logger *slog.Logger, path string) int {
	suite, err := boundary.LoadFile(path)
	if err != nil {
		logger.ErrorContext(ctx, "load failed", "error", err)
		return 1
	}

	diags := boundary.Verify(conversion.New(conversion.WithLogger(logger)), suite)
	for _, d := range diags.Errors {
		logger.ErrorContext(ctx, d.Message, "code", d.Code, "pair", d.Pair, "case", d.Case)
	}

	for _, d := range diags.Infos {
		logger.InfoContext(ctx, d.Message, "code", d.Code, "suite", d.Pair)
	}

	if diags.HasErrors() {
		return 1
	}

	return 0
}
