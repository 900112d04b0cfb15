// File: cmd/version.go
package cmd

import (
	"coderetriever/pkg/version"

	"github.com/spf13/cobra"
)

// addVersion enables --version on cmd, printing the full build information.
func addVersion(cmd *cobra.Command) {
	v := version.Get()
	cmd.Version = v.Version
	cmd.SetVersionTemplate(v.String() + "\n")
}
