package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/pokedex-mcp/filter"
	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

// textResult wraps markdown text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps a user-facing failure message in a tool error
// result. Fetch failures are rendered for the caller, never surfaced as
// protocol errors.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// fetchFailureText renders a typed fetch error as a friendly message.
func fetchFailureText(identifier string, err error) string {
	switch {
	case pokeapi.IsNotFound(err):
		return fmt.Sprintf("❌ Pokemon '%s' not found. Please check the name or ID.", identifier)
	case pokeapi.IsRateLimited(err):
		return "❌ The Pokemon database is rate limiting requests. Please try again shortly."
	case pokeapi.IsTimeout(err):
		return fmt.Sprintf("❌ Timed out fetching '%s'. Please try again.", identifier)
	default:
		return fmt.Sprintf("❌ Error retrieving '%s': %v", identifier, err)
	}
}

// GetPokemonInfoInput is the input for the get_pokemon_info tool.
type GetPokemonInfoInput struct {
	NameOrID string `json:"name_or_id" jsonschema:"Pokemon name or ID to look up"`
}

// GetPokemonInfoTool defines the tool schema for Pokemon lookups.
func GetPokemonInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_pokemon_info",
		Description: "Get detailed information about a Pokemon by name or ID",
	}
}

// GetPokemonInfoHandler fetches a Pokemon and renders its info card.
func GetPokemonInfoHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[GetPokemonInfoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetPokemonInfoInput) (*mcp.CallToolResult, any, error) {
		logger.Info().Str("identifier", input.NameOrID).Msg("get_pokemon_info called")

		pokemon, err := api.GetPokemon(ctx, input.NameOrID)
		if err != nil {
			return errorResult(fetchFailureText(input.NameOrID, err)), nil, nil
		}
		return textResult(FormatPokemonInfo(pokemon)), nil, nil
	}
}

// SearchPokemonInput is the input for the search_pokemon tool.
type SearchPokemonInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
	Offset int `json:"offset,omitempty" jsonschema:"offset for pagination"`
}

// SearchPokemonTool defines the tool schema for paginated search.
func SearchPokemonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_pokemon",
		Description: "Search for Pokemon with pagination",
	}
}

// SearchPokemonHandler returns one page of the Pokemon index.
func SearchPokemonHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[SearchPokemonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchPokemonInput) (*mcp.CallToolResult, any, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 20
		}
		logger.Info().Int("limit", limit).Int("offset", input.Offset).Msg("search_pokemon called")

		result, err := api.Search(ctx, limit, input.Offset)
		if err != nil {
			return errorResult(fmt.Sprintf("❌ Error searching Pokemon: %v", err)), nil, nil
		}
		return textResult(FormatSearchResults(result, input.Offset)), nil, nil
	}
}

// TypeEffectivenessInput is the input for the get_type_effectiveness tool.
type TypeEffectivenessInput struct {
	AttackingType string `json:"attacking_type" jsonschema:"attacking type name, e.g. fire or water"`
}

// TypeEffectivenessTool defines the tool schema for type charts.
func TypeEffectivenessTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_type_effectiveness",
		Description: "Get the type effectiveness chart for a Pokemon type",
	}
}

// TypeEffectivenessHandler fetches damage relations and renders them.
func TypeEffectivenessHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[TypeEffectivenessInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TypeEffectivenessInput) (*mcp.CallToolResult, any, error) {
		logger.Info().Str("attacking_type", input.AttackingType).Msg("get_type_effectiveness called")

		data, err := api.GetTypeInfo(ctx, input.AttackingType)
		if err != nil {
			if pokeapi.IsNotFound(err) {
				return errorResult(fmt.Sprintf("❌ Type '%s' not found. Please check the type name.", input.AttackingType)), nil, nil
			}
			return errorResult(fmt.Sprintf("❌ Error retrieving type effectiveness: %v", err)), nil, nil
		}
		return textResult(FormatTypeEffectiveness(input.AttackingType, data)), nil, nil
	}
}

// AnalyzeStatsInput is the input for the analyze_pokemon_stats tool.
type AnalyzeStatsInput struct {
	NameOrID string `json:"name_or_id" jsonschema:"Pokemon name or ID to analyze"`
}

// AnalyzeStatsTool defines the tool schema for stat analysis.
func AnalyzeStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "analyze_pokemon_stats",
		Description: "Analyze a Pokemon's base stats and provide insights",
	}
}

// AnalyzeStatsHandler fetches a Pokemon and renders its stat breakdown.
func AnalyzeStatsHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[AnalyzeStatsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeStatsInput) (*mcp.CallToolResult, any, error) {
		logger.Info().Str("identifier", input.NameOrID).Msg("analyze_pokemon_stats called")

		pokemon, err := api.GetPokemon(ctx, input.NameOrID)
		if err != nil {
			return errorResult(fetchFailureText(input.NameOrID, err)), nil, nil
		}
		return textResult(FormatStatsAnalysis(pokemon)), nil, nil
	}
}

// ComparePokemonInput is the input for the compare_pokemon tool.
type ComparePokemonInput struct {
	First  string `json:"first" jsonschema:"first Pokemon name or ID"`
	Second string `json:"second" jsonschema:"second Pokemon name or ID"`
}

// ComparePokemonTool defines the tool schema for comparisons.
func ComparePokemonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compare_pokemon",
		Description: "Compare two Pokemon side by side",
	}
}

// ComparePokemonHandler fetches both Pokemon concurrently and renders a
// comparison table.
func ComparePokemonHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[ComparePokemonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ComparePokemonInput) (*mcp.CallToolResult, any, error) {
		logger.Info().Str("first", input.First).Str("second", input.Second).Msg("compare_pokemon called")

		pokemon, failed := api.GetMultiple(ctx, []string{input.First, input.Second})
		if len(failed) > 0 {
			return errorResult(fetchFailureText(failed[0].Identifier, failed[0].Err)), nil, nil
		}
		if len(pokemon) != 2 {
			return errorResult("❌ Could not fetch both Pokemon for comparison."), nil, nil
		}
		return textResult(FormatComparison(pokemon[0], pokemon[1])), nil, nil
	}
}

// FilterPokemonInput is the input for the filter_pokemon tool.
type FilterPokemonInput struct {
	Names      []string `json:"names" jsonschema:"Pokemon names or IDs to fetch and filter"`
	Expression string   `json:"expression" jsonschema:"filter expression, e.g. Total > 500 && hasType(\"fire\")"`
}

// FilterPokemonTool defines the tool schema for expression filtering.
func FilterPokemonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "filter_pokemon",
		Description: "Fetch a set of Pokemon and filter them with an expression over name, types and stats",
	}
}

// FilterPokemonHandler batch-fetches the named Pokemon and applies the
// compiled filter expression.
func FilterPokemonHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[FilterPokemonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FilterPokemonInput) (*mcp.CallToolResult, any, error) {
		logger.Info().
			Int("names", len(input.Names)).
			Str("expression", input.Expression).
			Msg("filter_pokemon called")

		if len(input.Names) == 0 {
			return errorResult("❌ No Pokemon names given."), nil, nil
		}

		compiled, err := filter.Compile(input.Expression)
		if err != nil {
			return errorResult(fmt.Sprintf("❌ Invalid filter expression: %v", err)), nil, nil
		}

		pokemon, failed := api.GetMultiple(ctx, input.Names)
		matched := compiled.Apply(pokemon)

		var b strings.Builder
		fmt.Fprintf(&b, "# Filter Results\n\n**Expression:** `%s`\n", compiled.Expression())
		fmt.Fprintf(&b, "**Matched:** %d of %d fetched\n\n", len(matched), len(pokemon))
		for _, p := range matched {
			fmt.Fprintf(&b, "- **%s** (#%d): %s, total %d\n",
				titleWords(p.Name), p.ID, joinTitled(p.TypeNames()), p.StatTotal())
		}
		if len(failed) > 0 {
			b.WriteString("\n## Not Fetched\n")
			for _, f := range failed {
				fmt.Fprintf(&b, "- %s: %s\n", f.Identifier, fetchFailureText(f.Identifier, f.Err))
			}
		}

		return textResult(b.String()), nil, nil
	}
}
