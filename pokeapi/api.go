package pokeapi

import (
	"context"
)

// API defines the interface for PokeAPI operations consumed by the MCP
// and CLI layers. *Client is the production implementation.
type API interface {
	// Start opens the connection pool. Idempotent.
	Start()

	// Close releases the connection pool. Idempotent.
	Close()

	// GetPokemon fetches a Pokemon by name or numeric ID.
	GetPokemon(ctx context.Context, identifier string) (*Pokemon, error)

	// GetSpecies fetches species classification data.
	GetSpecies(ctx context.Context, identifier string) (*Species, error)

	// Search returns one page of the Pokemon index.
	Search(ctx context.Context, limit, offset int) (*SearchResult, error)

	// GetTypeInfo fetches raw type damage-relation data.
	GetTypeInfo(ctx context.Context, typeName string) (map[string]any, error)

	// GetMultiple fetches several Pokemon concurrently with
	// partial-failure tolerance.
	GetMultiple(ctx context.Context, identifiers []string) ([]*Pokemon, []FetchError)
}

var _ API = (*Client)(nil)
