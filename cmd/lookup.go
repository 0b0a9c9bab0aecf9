package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pokedex-mcp/mcpserver"
)

var lookupStats bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <name-or-id>",
	Short: "Look up a Pokemon by name or ID",
	Long:  `Fetch a Pokemon from the upstream database and print its profile as markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&lookupStats, "stats", false, "print the stat analysis instead of the info card")
}

func runLookup(cmd *cobra.Command, args []string) error {
	defer client.Close()

	pokemon, err := client.GetPokemon(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", args[0], err)
	}

	if lookupStats {
		fmt.Println(mcpserver.FormatStatsAnalysis(pokemon))
		return nil
	}
	fmt.Println(mcpserver.FormatPokemonInfo(pokemon))
	return nil
}
