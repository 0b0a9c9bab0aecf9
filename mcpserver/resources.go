package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

// resourceText wraps a rendered markdown document for a resource read.
func resourceText(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     text,
			},
		},
	}
}

// resourcePath strips the scheme and prefix from a resource URI and
// returns the remaining path segments, lowercased.
func resourcePath(uri, prefix string) ([]string, error) {
	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok || rest == "" {
		return nil, fmt.Errorf("invalid resource URI %q; expected prefix %s", uri, prefix)
	}
	parts := strings.Split(strings.ToLower(rest), "/")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid resource URI %q; empty path segment", uri)
		}
	}
	return parts, nil
}

// PokemonInfoResourceTemplate describes the per-Pokemon profile resource.
func PokemonInfoResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_info",
		Title:       "Pokemon Profile",
		Description: "Full profile for a Pokemon. URI format: pokemon://info/{name}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://info/{name}",
	}
}

// PokemonInfoResourceHandler reads a full Pokemon profile, combining
// the Pokemon and species records.
func PokemonInfoResourceHandler(api pokeapi.API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("pokemon name is required; use URI format pokemon://info/{name}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://info/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://info/{name}", uri)
		}
		name := parts[0]

		pokemon, err := api.GetPokemon(ctx, name)
		if err != nil {
			if pokeapi.IsNotFound(err) {
				return nil, fmt.Errorf("pokemon %q not found", name)
			}
			return nil, fmt.Errorf("get pokemon: %w", err)
		}

		// The species record enriches the profile but its absence is
		// not fatal.
		species, err := api.GetSpecies(ctx, name)
		if err != nil {
			species = nil
		}

		return resourceText(uri, formatPokemonResource(pokemon, species)), nil
	}
}

// PokemonStatsResourceTemplate describes the stat analysis resource.
func PokemonStatsResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_stats",
		Title:       "Pokemon Stats",
		Description: "Base stat analysis for a Pokemon. URI format: pokemon://stats/{name}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://stats/{name}",
	}
}

// PokemonStatsResourceHandler reads the stat analysis for a Pokemon.
func PokemonStatsResourceHandler(api pokeapi.API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("pokemon name is required; use URI format pokemon://stats/{name}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://stats/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://stats/{name}", uri)
		}
		name := parts[0]

		pokemon, err := api.GetPokemon(ctx, name)
		if err != nil {
			if pokeapi.IsNotFound(err) {
				return nil, fmt.Errorf("pokemon %q not found", name)
			}
			return nil, fmt.Errorf("get pokemon: %w", err)
		}

		return resourceText(uri, FormatStatsAnalysis(pokemon)), nil
	}
}

// PokemonTypeResourceTemplate describes the type chart resource.
func PokemonTypeResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_type",
		Title:       "Type Chart",
		Description: "Offensive and defensive matchups for a type. URI format: pokemon://type/{type}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://type/{type}",
	}
}

// PokemonTypeResourceHandler reads the damage relation chart for a type.
func PokemonTypeResourceHandler(api pokeapi.API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("type name is required; use URI format pokemon://type/{type}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://type/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://type/{type}", uri)
		}
		typeName := parts[0]

		data, err := api.GetTypeInfo(ctx, typeName)
		if err != nil {
			if pokeapi.IsNotFound(err) {
				return nil, fmt.Errorf("type %q not found", typeName)
			}
			return nil, fmt.Errorf("get type info: %w", err)
		}

		return resourceText(uri, formatTypeResource(typeName, data)), nil
	}
}

// PokemonMovesetResourceTemplate describes the moveset resource.
func PokemonMovesetResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_moveset",
		Title:       "Pokemon Moveset",
		Description: "Learnable moves for a Pokemon. URI format: pokemon://moveset/{name}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://moveset/{name}",
	}
}

// PokemonMovesetResourceHandler reads the learnable move list for a
// Pokemon.
func PokemonMovesetResourceHandler(api pokeapi.API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("pokemon name is required; use URI format pokemon://moveset/{name}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://moveset/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://moveset/{name}", uri)
		}
		name := parts[0]

		pokemon, err := api.GetPokemon(ctx, name)
		if err != nil {
			if pokeapi.IsNotFound(err) {
				return nil, fmt.Errorf("pokemon %q not found", name)
			}
			return nil, fmt.Errorf("get pokemon: %w", err)
		}

		return resourceText(uri, formatMovesetResource(pokemon)), nil
	}
}

// PokemonGenerationResourceTemplate describes the generation resource.
func PokemonGenerationResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_generation",
		Title:       "Generation Overview",
		Description: "Region and Pokedex range for a generation. URI format: pokemon://generation/{number}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://generation/{number}",
	}
}

// PokemonGenerationResourceHandler reads the overview for a numbered
// generation.
func PokemonGenerationResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("generation number is required; use URI format pokemon://generation/{number}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://generation/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://generation/{number}", uri)
		}

		number, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid generation %q; expected a number", parts[0])
		}
		text, err := formatGenerationResource(number)
		if err != nil {
			return nil, err
		}
		return resourceText(uri, text), nil
	}
}

// PokemonComparisonResourceTemplate describes the comparison resource.
func PokemonComparisonResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon_comparison",
		Title:       "Pokemon Comparison",
		Description: "Side by side comparison of two Pokemon. URI format: pokemon://comparison/{first}/{second}",
		MIMEType:    "text/markdown",
		URITemplate: "pokemon://comparison/{first}/{second}",
	}
}

// PokemonComparisonResourceHandler reads a comparison of two Pokemon,
// fetched concurrently.
func PokemonComparisonResourceHandler(api pokeapi.API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("two pokemon names are required; use URI format pokemon://comparison/{first}/{second}")
		}
		uri := req.Params.URI

		parts, err := resourcePath(uri, "pokemon://comparison/")
		if err != nil {
			return nil, err
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid resource URI %q; expected pokemon://comparison/{first}/{second}", uri)
		}

		pokemon, failed := api.GetMultiple(ctx, parts)
		if len(failed) > 0 {
			first := failed[0]
			if pokeapi.IsNotFound(first.Err) {
				return nil, fmt.Errorf("pokemon %q not found", first.Identifier)
			}
			return nil, fmt.Errorf("get pokemon %q: %w", first.Identifier, first.Err)
		}
		if len(pokemon) != 2 {
			return nil, fmt.Errorf("comparison requires both pokemon")
		}

		return resourceText(uri, FormatComparison(pokemon[0], pokemon[1])), nil
	}
}
