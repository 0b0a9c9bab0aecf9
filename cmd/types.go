package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pokedex-mcp/mcpserver"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types <type>",
	Short: "Print the effectiveness chart for a type",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	defer client.Close()

	data, err := client.GetTypeInfo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch type %s: %w", args[0], err)
	}

	fmt.Println(mcpserver.FormatTypeEffectiveness(args[0], data))
	return nil
}
