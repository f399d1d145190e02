package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/release-server/internal/service/server"
)

var (
	// exportCmd writes every stored release to a snapshot file.
	exportCmd = &cobra.Command{
		Use:   "export FILE",
		Short: "Export all releases to a JSON snapshot file.",
		Long: `Writes every stored release to FILE. The snapshot can be imported into another
store, for example to move releases from SQLite to MySQL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := server.Export(cmd.Context(), options, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d releases to %s\n", count, args[0])

			return nil
		},
	}

	// importCmd publishes the releases of a snapshot file.
	importCmd = &cobra.Command{
		Use:   "import FILE",
		Short: "Import releases from a JSON snapshot file.",
		Long: `Publishes every release of FILE under the configured policy.
Releases that already exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := server.Import(cmd.Context(), options, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d releases, skipped %d already present\n",
				report.Imported, report.Skipped)

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
