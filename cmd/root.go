package cmd

import (
	"fmt"
	"strings"

	"coderetriever/pkg/languages"
	"coderetriever/pkg/logging"
	"coderetriever/pkg/retrieve"
	"coderetriever/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the coderetriever command.
var RootCmd = newRootCmd(defaultDeps)

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// depsFunc builds the run's collaborators once logging is configured.
type depsFunc func(cmd *cobra.Command, logger *zap.Logger) retrieve.Deps

func newRootCmd(deps depsFunc) *cobra.Command {
	var (
		excludeFiles string
		debug        bool
		args         retrieve.Arguments
	)

	cmd := &cobra.Command{
		Use:   "coderetriever <repo_or_directory_path> <target_subdirectory>",
		Short: "Copy source files from a directory or repository to the clipboard",
		Long: `coderetriever collects the source files under a directory, or under a
freshly cloned GitHub, GitLab or Bitbucket repository, concatenates them
and places the result on the system clipboard.

Languages: ` + strings.Join(languages.Default().Names(), ", "),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if err := logging.Setup(debug, "coderetriever", version.Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			args.Source = positional[0]
			args.TargetSubdir = positional[1]
			args.ExcludeFiles = retrieve.ParseExcludeList(excludeFiles)

			return retrieve.Run(cmd.Context(), args, deps(cmd, logging.Logger))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&excludeFiles, "exclude-files", retrieve.DefaultExcludeFiles, "Comma-separated list of file names to exclude")
	flags.StringSliceVar(&args.Languages, "languages", nil, "Languages to include (comma-separated or repeated); default is all")
	flags.BoolVar(&args.Recursive, "recursive", false, "Include files in all subdirectories")
	flags.StringSliceVar(&args.IgnorePatterns, "ignore", nil, "Gitignore-style path patterns to skip, relative to the target directory")
	flags.StringVar(&args.ExtensionsFile, "extensions-file", "", "YAML file mapping languages to suffixes, replacing the built-in table")
	flags.StringVarP(&args.Output, "output", "o", "", "Write to this file instead of the clipboard")
	flags.BoolVar(&args.Tree, "tree", false, "Print a tree of the copied files")
	flags.BoolVar(&debug, "debug", false, "Enable development logging at debug level")

	addVersion(cmd)
	return cmd
}
