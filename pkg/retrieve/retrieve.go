// Package retrieve selects source files under a directory, concatenates
// them and hands the text to a sink.
package retrieve

import (
	"context"
	"fmt"
	"io"
	"time"

	"coderetriever/pkg/ignore"
	"coderetriever/pkg/languages"
	"coderetriever/pkg/sink"
	"coderetriever/pkg/source"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Deps are the collaborators a run talks to.
type Deps struct {
	Resolver  *source.Resolver
	Clipboard sink.Writer // Used unless Arguments.Output is set.
	Stdout    io.Writer   // Completion message and tree.
	Logger    *zap.Logger
}

// Run executes one retrieval: resolve the source, select files, read them,
// write the joined text and remove any temporary clone. The clone is removed
// on every path once it has been attempted; a removal failure is returned
// even when everything before it succeeded.
func Run(ctx context.Context, args Arguments, deps Deps) (err error) {
	startTime := time.Now()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Starting retrieval",
		zap.String("source", args.Source),
		zap.String("targetSubdirectory", args.TargetSubdir))

	criteria, err := buildCriteria(args, logger)
	if err != nil {
		return err
	}

	resolver := deps.Resolver
	if resolver == nil {
		resolver = &source.Resolver{}
	}
	src, err := resolver.Resolve(ctx, args.Source, args.TargetSubdir, logger)
	defer func() {
		err = multierr.Append(err, src.Cleanup(logger))
	}()
	if err != nil {
		logger.Error("Failed to resolve source", zap.Error(err))
		return fmt.Errorf("failed to resolve source: %w", err)
	}

	files, err := SelectFiles(src.Root, criteria, logger)
	if err != nil {
		return fmt.Errorf("failed to select files: %w", err)
	}

	results := ReadFiles(files, logger)
	text := JoinLines(CombineLines(results))

	w, message := deps.Clipboard, "Code and comments have been copied to clipboard."
	if args.Output != "" {
		w = sink.NewFile(args.Output, logger)
		message = fmt.Sprintf("Code and comments have been written to %s.", args.Output)
	}
	if w == nil {
		return fmt.Errorf("no output destination configured")
	}
	if err := w.Write(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	out := deps.Stdout
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintln(out, message)

	if args.Tree {
		var copied []string
		for _, r := range results {
			if r.OK() {
				copied = append(copied, r.Path)
			}
		}
		fmt.Fprint(out, RenderTree(src.Root, copied))
	}

	skipped := 0
	for _, r := range results {
		if !r.OK() {
			skipped++
		}
	}
	logger.Info("Retrieval completed",
		zap.Int("selectedFiles", len(files)),
		zap.Int("skippedFiles", skipped),
		zap.Int("bytes", len(text)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

func buildCriteria(args Arguments, logger *zap.Logger) (Criteria, error) {
	table := languages.Default()
	if args.ExtensionsFile != "" {
		t, err := languages.LoadFile(args.ExtensionsFile, logger)
		if err != nil {
			return Criteria{}, err
		}
		table = t
	}

	exts, err := table.Extensions(args.Languages)
	if err != nil {
		return Criteria{}, err
	}

	ig, err := ignore.Compile(args.IgnorePatterns...)
	if err != nil {
		return Criteria{}, fmt.Errorf("failed to compile ignore patterns: %w", err)
	}
	if ig.Len() > 0 {
		logger.Debug("Compiled ignore patterns", zap.Int("count", ig.Len()))
	}

	return NewCriteria(exts, args.ExcludeFiles, args.Recursive, ig), nil
}
