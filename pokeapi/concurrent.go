package pokeapi

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FetchError records a single failed fetch from a batch.
type FetchError struct {
	Identifier string
	Err        error
}

// Error implements the error interface.
func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Identifier, e.Err)
}

// Unwrap returns the underlying fetch error.
func (e FetchError) Unwrap() error {
	return e.Err
}

// GetMultiple fetches several Pokemon concurrently and waits for every
// request to settle. Failed identifiers are dropped from the result and
// reported in the returned error slice instead of aborting the batch.
// Successes are returned in the order of the input identifiers.
func (c *Client) GetMultiple(ctx context.Context, identifiers []string) ([]*Pokemon, []FetchError) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	results := make([]*Pokemon, len(identifiers))
	errs := make([]error, len(identifiers))

	g, ctx := errgroup.WithContext(ctx)
	if c.batchLimit > 0 {
		g.SetLimit(c.batchLimit)
	}
	for i, identifier := range identifiers {
		g.Go(func() error {
			pokemon, err := c.GetPokemon(ctx, identifier)
			if err != nil {
				errs[i] = err
				return nil // individual failures never abort the batch
			}
			results[i] = pokemon
			return nil
		})
	}
	g.Wait()

	var fetched []*Pokemon
	var failed []FetchError
	for i, identifier := range identifiers {
		if errs[i] != nil {
			failed = append(failed, FetchError{Identifier: identifier, Err: errs[i]})
			continue
		}
		fetched = append(fetched, results[i])
	}

	if len(failed) > 0 {
		c.logger.Warn().
			Int("requested", len(identifiers)).
			Int("failed", len(failed)).
			Errs("errors", fetchErrorList(failed)).
			Msg("Some Pokemon failed to fetch")
	}

	c.logger.Debug().
		Int("requested", len(identifiers)).
		Int("successful", len(fetched)).
		Msg("Batch Pokemon fetch completed")

	return fetched, failed
}

func fetchErrorList(failed []FetchError) []error {
	errs := make([]error, len(failed))
	for i, f := range failed {
		errs[i] = f
	}
	return errs
}
