package pokeapi

import (
	"encoding/json"
	"errors"
	"strings"
)

// NamedRef is a name plus a reference URL, the shape PokeAPI uses for
// every nested resource pointer.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric identifier from the reference URL. Returns an
// empty string when the URL has no trailing path segment.
func (r NamedRef) ID() string {
	trimmed := strings.TrimRight(r.URL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return ""
	}
	return trimmed[idx+1:]
}

// TypeSlot is one of a Pokemon's type assignments.
type TypeSlot struct {
	Slot int      `json:"slot"`
	Type NamedRef `json:"type"`
}

// StatValue is a single base stat entry.
type StatValue struct {
	BaseStat int      `json:"base_stat"`
	Effort   int      `json:"effort"`
	Stat     NamedRef `json:"stat"`
}

// AbilitySlot is one of a Pokemon's abilities.
type AbilitySlot struct {
	Ability  NamedRef `json:"ability"`
	IsHidden bool     `json:"is_hidden"`
	Slot     int      `json:"slot"`
}

// Sprites holds the optional sprite image URLs.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	BackDefault  string `json:"back_default"`
	BackShiny    string `json:"back_shiny"`
}

// MoveSlot is a learnable move reference.
type MoveSlot struct {
	Move NamedRef `json:"move"`
}

// Pokemon is the primary domain entity decoded from the upstream API.
// Height is stored in decimeters and weight in hectograms, as served.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatValue   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	Sprites        Sprites       `json:"sprites"`
	Moves          []MoveSlot    `json:"moves,omitempty"`
}

// HeightMeters returns the height in meters.
func (p *Pokemon) HeightMeters() float64 {
	return float64(p.Height) / 10
}

// WeightKG returns the weight in kilograms.
func (p *Pokemon) WeightKG() float64 {
	return float64(p.Weight) / 10
}

// TypeNames returns the type names in slot order.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// HasType reports whether the Pokemon has the given type name.
func (p *Pokemon) HasType(name string) bool {
	for _, t := range p.Types {
		if strings.EqualFold(t.Type.Name, name) {
			return true
		}
	}
	return false
}

// StatMap returns base stats keyed by stat name.
func (p *Pokemon) StatMap() map[string]int {
	stats := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}
	return stats
}

// StatTotal returns the base stat total.
func (p *Pokemon) StatTotal() int {
	total := 0
	for _, s := range p.Stats {
		total += s.BaseStat
	}
	return total
}

// decodePokemon parses and validates a Pokemon payload.
func decodePokemon(endpoint string, body []byte) (*Pokemon, error) {
	var p Pokemon
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	if p.ID == 0 {
		return nil, &DecodeError{Endpoint: endpoint, Field: "id", Err: errors.New("missing or zero")}
	}
	if p.Name == "" {
		return nil, &DecodeError{Endpoint: endpoint, Field: "name", Err: errors.New("missing")}
	}
	if p.Height < 0 {
		return nil, &DecodeError{Endpoint: endpoint, Field: "height", Err: errors.New("negative")}
	}
	if p.Weight < 0 {
		return nil, &DecodeError{Endpoint: endpoint, Field: "weight", Err: errors.New("negative")}
	}
	return &p, nil
}

// FlavorTextEntry is a localized species description.
type FlavorTextEntry struct {
	FlavorText string   `json:"flavor_text"`
	Language   NamedRef `json:"language"`
}

// Species carries classification data for a Pokemon species.
type Species struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Color             NamedRef          `json:"color"`
	Generation        NamedRef          `json:"generation"`
	Habitat           *NamedRef         `json:"habitat"`
	IsLegendary       bool              `json:"is_legendary"`
	IsMythical        bool              `json:"is_mythical"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// FlavorText returns one species description, preferring English entries.
// Embedded form feeds and newlines in the upstream text are flattened to
// spaces. Returns an empty string when no entries exist.
func (s *Species) FlavorText() string {
	pick := ""
	for _, entry := range s.FlavorTextEntries {
		if entry.Language.Name == "en" {
			pick = entry.FlavorText
			break
		}
	}
	if pick == "" && len(s.FlavorTextEntries) > 0 {
		pick = s.FlavorTextEntries[0].FlavorText
	}
	replacer := strings.NewReplacer("\n", " ", "\f", " ")
	return replacer.Replace(pick)
}

// decodeSpecies parses and validates a species payload.
func decodeSpecies(endpoint string, body []byte) (*Species, error) {
	var s Species
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	if s.ID == 0 {
		return nil, &DecodeError{Endpoint: endpoint, Field: "id", Err: errors.New("missing or zero")}
	}
	if s.Name == "" {
		return nil, &DecodeError{Endpoint: endpoint, Field: "name", Err: errors.New("missing")}
	}
	return &s, nil
}

// SearchResult is one page of the paginated Pokemon index.
type SearchResult struct {
	Count   int        `json:"count"`
	Results []NamedRef `json:"results"`
}

// decodeSearchResult parses a search payload.
func decodeSearchResult(endpoint string, body []byte) (*SearchResult, error) {
	var r SearchResult
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return &r, nil
}
