package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

func testPokemon(name string, id int, types []string, stats map[string]int) *pokeapi.Pokemon {
	p := &pokeapi.Pokemon{ID: id, Name: name, Height: 10, Weight: 100}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.TypeSlot{Slot: i + 1, Type: pokeapi.NamedRef{Name: t}})
	}
	for statName, value := range stats {
		p.Stats = append(p.Stats, pokeapi.StatValue{BaseStat: value, Stat: pokeapi.NamedRef{Name: statName}})
	}
	return p
}

func TestCompileRejectsEmptyExpression(t *testing.T) {
	_, err := Compile("  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty filter expression")
}

func TestCompileRejectsInvalidExpression(t *testing.T) {
	_, err := Compile("Total >")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile")
}

func TestEvaluate(t *testing.T) {
	pikachu := testPokemon("pikachu", 25, []string{"electric"}, map[string]int{"hp": 35, "speed": 90})
	snorlax := testPokemon("snorlax", 143, []string{"normal"}, map[string]int{"hp": 160, "speed": 30})

	tests := []struct {
		name       string
		expression string
		pikachu    bool
		snorlax    bool
	}{
		{"by type", `hasType("electric")`, true, false},
		{"by stat", `stat("speed") > 50`, true, false},
		{"by total", `Total > 150`, false, true},
		{"by name", `contains(Name, "LAX")`, false, true},
		{"by id", `ID < 100`, true, false},
		{"combined", `stat("hp") > 100 && hasType("normal")`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.pikachu, f.Evaluate(pikachu), "pikachu")
			assert.Equal(t, tt.snorlax, f.Evaluate(snorlax), "snorlax")
		})
	}
}

func TestEvaluateNonBooleanResultIsFalse(t *testing.T) {
	f, err := Compile(`Total + 1`)
	require.NoError(t, err)
	assert.False(t, f.Evaluate(testPokemon("pikachu", 25, nil, nil)))
}

func TestApplyPreservesOrder(t *testing.T) {
	pokemon := []*pokeapi.Pokemon{
		testPokemon("squirtle", 7, []string{"water"}, map[string]int{"hp": 44}),
		testPokemon("pikachu", 25, []string{"electric"}, map[string]int{"hp": 35}),
		testPokemon("vaporeon", 134, []string{"water"}, map[string]int{"hp": 130}),
	}

	f, err := Compile(`hasType("water")`)
	require.NoError(t, err)

	matched := f.Apply(pokemon)
	require.Len(t, matched, 2)
	assert.Equal(t, "squirtle", matched[0].Name)
	assert.Equal(t, "vaporeon", matched[1].Name)
}
