package cmd

import (
	"coderetriever/pkg/retrieve"
	"coderetriever/pkg/sink"
	"coderetriever/pkg/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultDeps wires the real git binary and system clipboard.
func defaultDeps(cmd *cobra.Command, logger *zap.Logger) retrieve.Deps {
	return retrieve.Deps{
		Resolver:  &source.Resolver{Cloner: source.NewGitCloner(logger)},
		Clipboard: sink.NewClipboard(logger),
		Stdout:    cmd.OutOrStdout(),
		Logger:    logger,
	}
}
