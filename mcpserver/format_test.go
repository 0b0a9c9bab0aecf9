package mcpserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pikachu", "Pikachu"},
		{"special-attack", "Special Attack"},
		{"lightning-rod", "Lightning Rod"},
		{"mr-mime", "Mr Mime"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleWords(tt.in), "titleWords(%q)", tt.in)
	}
}

func TestStatRating(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{680, "Legendary/Pseudo-Legendary"},
		{600, "Legendary/Pseudo-Legendary"},
		{530, "Strong"},
		{450, "Average"},
		{320, "Below Average"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statRating(tt.total), "statRating(%d)", tt.total)
	}
}

func TestStatRank(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{130, "Excellent"},
		{120, "Excellent"},
		{95, "Great"},
		{70, "Good"},
		{45, "Average"},
		{20, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statRank(tt.value), "statRank(%d)", tt.value)
	}
}

func TestFormatPokemonInfoUnknownBaseExperience(t *testing.T) {
	p := testPikachu()
	p.BaseExperience = nil

	out := FormatPokemonInfo(p)
	assert.Contains(t, out, "**Base Experience:** Unknown")
}

func TestFormatTypeEffectivenessEmptyRelations(t *testing.T) {
	out := FormatTypeEffectiveness("normal", map[string]any{
		"damage_relations": map[string]any{
			"double_damage_to": []any{},
			"half_damage_to": []any{
				map[string]any{"name": "rock"},
				map[string]any{"name": "steel"},
			},
			"no_damage_to": []any{
				map[string]any{"name": "ghost"},
			},
		},
	})

	assert.Contains(t, out, "# Normal Type Effectiveness")
	assert.Contains(t, out, "## Super Effective (2x)\n*None*")
	assert.Contains(t, out, "Rock, Steel")
	assert.Contains(t, out, "Ghost")
}

func TestFormatStatsAnalysisBars(t *testing.T) {
	out := FormatStatsAnalysis(testSnorlax())

	// 160 caps at the 20 character bar with no empty segments.
	assert.Contains(t, out, "**Hp:** 160 `"+strings.Repeat("█", 16)+strings.Repeat("░", 4)+"`")
	assert.Contains(t, out, "**Speed:** 30 `"+strings.Repeat("█", 3)+strings.Repeat("░", 17)+"`")
}

func TestFormatComparisonTie(t *testing.T) {
	first := testPikachu()
	second := testPikachu()
	second.Name = "ditto"
	second.ID = 132

	out := FormatComparison(first, second)
	assert.Contains(t, out, "| Hp | 35 | 35 | Tie |")
	assert.Contains(t, out, "| **Total** | **180** | **180** | **Tie** |")
}

func TestFormatPokemonResourceWithSpecies(t *testing.T) {
	species := &pokeapi.Species{
		ID:          25,
		Name:        "pikachu",
		Generation:  pokeapi.NamedRef{Name: "generation-i"},
		Habitat:     &pokeapi.NamedRef{Name: "forest"},
		IsLegendary: false,
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			{FlavorText: "When several of these Pokemon gather, their electricity could build and cause lightning storms.", Language: pokeapi.NamedRef{Name: "en"}},
		},
	}

	out := formatPokemonResource(testPikachu(), species)
	assert.Contains(t, out, "- **Habitat**: Forest")
	assert.Contains(t, out, "lightning storms")
	assert.Contains(t, out, "| Speed | 90 | Great |")
	assert.Contains(t, out, "## Generation\nGeneration I")
	assert.NotContains(t, out, "**Legendary**")
}

func TestFormatPokemonResourceWithoutSpecies(t *testing.T) {
	out := formatPokemonResource(testPikachu(), nil)
	assert.Contains(t, out, "No description available.")
	assert.NotContains(t, out, "## Generation")
}
