package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pokedex-mcp/mcpserver"
)

var (
	searchLimit  int
	searchOffset int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List Pokemon from the paginated index",
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "maximum number of results")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "offset for pagination")
}

func runSearch(cmd *cobra.Command, args []string) error {
	defer client.Close()

	result, err := client.Search(cmd.Context(), searchLimit, searchOffset)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Println(mcpserver.FormatSearchResults(result, searchOffset))
	return nil
}
