package cmd

import (
	"fmt"

	"gql2csv/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	sourcePath string
	outPath    string
)

var convertCmd = &cobra.Command{
	Use:   "convert [schema.graphql] [mapping.csv]",
	Short: "Convert one GraphQL schema into a mapping spreadsheet",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Positional arguments win over flags.
		if len(args) > 0 {
			sourcePath = args[0]
		}
		if len(args) > 1 {
			outPath = args[1]
		}

		job := pipeline.Job{Source: sourcePath, Destination: outPath}
		res := pipeline.Run(cmd.Context(), job, pipeline.Options{
			BoolStyle: Settings.BoolStyle(),
			Logger:    Logger,
		})
		if res.Err != nil {
			return res.Err
		}

		if res.CreatedDir != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Created directory: %s\n", res.CreatedDir)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Mapping spreadsheet created: %s (%d fields across %d types)\n",
			res.Destination, res.Rows, res.Types)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&sourcePath, "source", "s", "", "GraphQL schema file (.graphql)")
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "destination CSV file (.csv)")
}
