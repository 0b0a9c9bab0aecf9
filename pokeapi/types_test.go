package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedRefID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", "25"},
		{"https://pokeapi.co/api/v2/pokemon/25", "25"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NamedRef{URL: tt.url}.ID())
	}
}

func TestPokemonHasType(t *testing.T) {
	p := &Pokemon{Types: []TypeSlot{
		{Slot: 1, Type: NamedRef{Name: "electric"}},
	}}
	assert.True(t, p.HasType("electric"))
	assert.True(t, p.HasType("Electric"))
	assert.False(t, p.HasType("water"))
}

func TestSpeciesFlavorTextFallsBackToFirstEntry(t *testing.T) {
	s := &Species{FlavorTextEntries: []FlavorTextEntry{
		{FlavorText: "electrise\fses joues.", Language: NamedRef{Name: "fr"}},
	}}
	assert.Equal(t, "electrise ses joues.", s.FlavorText())

	empty := &Species{}
	assert.Empty(t, empty.FlavorText())
}

func TestDecodePokemonValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing id", `{"name": "pikachu"}`, "id"},
		{"missing name", `{"id": 25}`, "name"},
		{"negative height", `{"id": 25, "name": "pikachu", "height": -1}`, "height"},
		{"negative weight", `{"id": 25, "name": "pikachu", "height": 4, "weight": -1}`, "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePokemon("pokemon/test", []byte(tt.body))
			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.field, decodeErr.Field)
		})
	}
}
