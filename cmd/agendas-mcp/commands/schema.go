package commands

import (
	"encoding/json"

	"agendas-mcp/internal/dataset"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the dataset document",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := dataset.Schema()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(schema)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
