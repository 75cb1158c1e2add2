package cmd

import (
	"fmt"
	"io"

	"github.com/ezerfernandes/mdsql/internal/mdsql"
	"github.com/spf13/cobra"
)

// Fixed by the Study-Sync project layout. The tool takes no flags.
const (
	sourcePath = "/home/ace/Projects/Study-Sync/database-design.md"
	destPath   = "/home/ace/Projects/Study-Sync/studysync-backend/scripts/migrations/001_initial_schema.sql"
)

func rootCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "mdsql",
		Short: "Write the design document's sql block to the initial migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(sourcePath, destPath, cmd.OutOrStdout())
		},

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}
}

func run(source, dest string, out io.Writer) error {
	if err := mdsql.File(source, dest); err != nil {
		return err
	}

	fmt.Fprintln(out, "Done")

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd()

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}
