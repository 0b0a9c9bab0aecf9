// Package pokeapi provides a client for the public PokeAPI REST service.
//
// The client wraps plain HTTP GET requests with bounded retry, a typed
// error taxonomy and concurrent batch fetching, and decodes responses
// into fixed-shape domain entities.
//
// # Architecture
//
//   - Client: lazily opened, pooled HTTP client with explicit Start/Close
//   - Types: domain models (Pokemon, Species, SearchResult) with derived
//     unit conversions and stat accessors
//   - Errors: APIError/DecodeError with classification helpers
//   - Retry: an explicit retry combinator over a retryable-error predicate
//   - API: interface definition for testability
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := pokeapi.NewClient(pokeapi.DefaultBaseURL, logger,
//		pokeapi.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client.Start()
//	defer client.Close()
//
//	pokemon, err := client.GetPokemon(ctx, "pikachu")
//	if pokeapi.IsNotFound(err) {
//		// unknown name or ID
//	}
//
// # Error Handling
//
// Failed requests return an *APIError classified as NotFound (404),
// RateLimited (429), Timeout, or Generic (other statuses and connection
// failures). Successful responses whose payload fails validation return a
// *DecodeError; the two taxonomies are never conflated. Only timeouts and
// connection-level failures are retried, up to 3 total attempts with
// exponential backoff between 4 and 10 seconds. NotFound, RateLimited and
// HTTP-status errors are definitive upstream answers and surface
// immediately.
//
// Batch fetches via GetMultiple tolerate partial failure: unfetchable
// identifiers are dropped from the result list and reported alongside it.
package pokeapi
