package mcpserver

import (
	"fmt"
	"strings"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

// titleWords converts an upstream identifier like "special-attack" into
// a display label like "Special Attack".
func titleWords(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == ' '
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// joinTitled renders a name list as comma-separated display labels.
func joinTitled(names []string) string {
	titled := make([]string, len(names))
	for i, n := range names {
		titled[i] = titleWords(n)
	}
	return strings.Join(titled, ", ")
}

// FormatPokemonInfo renders the detailed info card for a Pokemon.
func FormatPokemonInfo(p *pokeapi.Pokemon) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (#%d)\n\n", titleWords(p.Name), p.ID)
	fmt.Fprintf(&b, "**Height:** %.1fm\n", p.HeightMeters())
	fmt.Fprintf(&b, "**Weight:** %.1fkg\n", p.WeightKG())
	fmt.Fprintf(&b, "**Types:** %s\n", joinTitled(p.TypeNames()))
	if p.BaseExperience != nil {
		fmt.Fprintf(&b, "**Base Experience:** %d\n", *p.BaseExperience)
	} else {
		b.WriteString("**Base Experience:** Unknown\n")
	}

	b.WriteString("\n## Stats\n")
	for _, stat := range p.Stats {
		fmt.Fprintf(&b, "- **%s:** %d\n", titleWords(stat.Stat.Name), stat.BaseStat)
	}

	b.WriteString("\n## Abilities\n")
	for _, ability := range p.Abilities {
		hidden := ""
		if ability.IsHidden {
			hidden = " (Hidden)"
		}
		fmt.Fprintf(&b, "- %s%s\n", titleWords(ability.Ability.Name), hidden)
	}

	return b.String()
}

// FormatSearchResults renders one page of the Pokemon index.
func FormatSearchResults(result *pokeapi.SearchResult, offset int) string {
	var b strings.Builder

	b.WriteString("# Pokemon Search Results\n\n")
	fmt.Fprintf(&b, "**Total Pokemon:** %d\n", result.Count)
	fmt.Fprintf(&b, "**Showing:** %d results (offset: %d)\n\n", len(result.Results), offset)

	for _, entry := range result.Results {
		fmt.Fprintf(&b, "#%s: %s\n", entry.ID(), titleWords(entry.Name))
	}

	b.WriteString("\n*Use get_pokemon_info with a name or ID for detailed information.*\n")
	return b.String()
}

// relationNames extracts a damage-relation name list from raw type data.
func relationNames(data map[string]any, relation string) []string {
	relations, ok := data["damage_relations"].(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := relations[relation].([]any)
	if !ok {
		return nil
	}

	var names []string
	for _, entry := range entries {
		ref, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := ref["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// FormatTypeEffectiveness renders the offensive type chart for a type.
func FormatTypeEffectiveness(typeName string, data map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Type Effectiveness\n\n", titleWords(typeName))

	sections := []struct {
		heading  string
		relation string
	}{
		{"Super Effective (2x)", "double_damage_to"},
		{"Not Very Effective (0.5x)", "half_damage_to"},
		{"No Effect (0x)", "no_damage_to"},
	}

	for _, section := range sections {
		fmt.Fprintf(&b, "## %s\n", section.heading)
		names := relationNames(data, section.relation)
		if len(names) == 0 {
			b.WriteString("*None*\n\n")
			continue
		}
		b.WriteString(joinTitled(names) + "\n\n")
	}

	return b.String()
}

// formatTypeResource renders both offensive and defensive relations.
func formatTypeResource(typeName string, data map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Type\n\n", titleWords(typeName))

	b.WriteString("## Offense\n")
	writeRelation(&b, "Strong against (2x)", relationNames(data, "double_damage_to"))
	writeRelation(&b, "Weak against (0.5x)", relationNames(data, "half_damage_to"))
	writeRelation(&b, "No effect against (0x)", relationNames(data, "no_damage_to"))

	b.WriteString("\n## Defense\n")
	writeRelation(&b, "Resists (0.5x)", relationNames(data, "half_damage_from"))
	writeRelation(&b, "Weak to (2x)", relationNames(data, "double_damage_from"))
	writeRelation(&b, "Immune to (0x)", relationNames(data, "no_damage_from"))

	return b.String()
}

func writeRelation(b *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(b, "- **%s:** none\n", label)
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, joinTitled(names))
}

// statRating buckets a base stat total into a rough strength band.
func statRating(total int) string {
	switch {
	case total >= 600:
		return "Legendary/Pseudo-Legendary"
	case total >= 500:
		return "Strong"
	case total >= 400:
		return "Average"
	default:
		return "Below Average"
	}
}

// statRank buckets a single base stat.
func statRank(value int) string {
	switch {
	case value >= 120:
		return "Excellent"
	case value >= 90:
		return "Great"
	case value >= 60:
		return "Good"
	case value >= 40:
		return "Average"
	default:
		return "Poor"
	}
}

// FormatStatsAnalysis renders a stat breakdown with bar charts.
func FormatStatsAnalysis(p *pokeapi.Pokemon) string {
	var b strings.Builder

	total := p.StatTotal()
	fmt.Fprintf(&b, "# %s Stats Analysis\n\n", titleWords(p.Name))
	fmt.Fprintf(&b, "**Total Base Stats:** %d\n", total)
	fmt.Fprintf(&b, "**Rating:** %s\n\n", statRating(total))

	if len(p.Stats) > 0 {
		highest := p.Stats[0]
		lowest := p.Stats[0]
		for _, stat := range p.Stats[1:] {
			if stat.BaseStat > highest.BaseStat {
				highest = stat
			}
			if stat.BaseStat < lowest.BaseStat {
				lowest = stat
			}
		}
		fmt.Fprintf(&b, "**Highest Stat:** %s (%d)\n", titleWords(highest.Stat.Name), highest.BaseStat)
		fmt.Fprintf(&b, "**Lowest Stat:** %s (%d)\n\n", titleWords(lowest.Stat.Name), lowest.BaseStat)
	}

	b.WriteString("## Detailed Stats\n")
	for _, stat := range p.Stats {
		barLength := stat.BaseStat / 10
		if barLength > 20 {
			barLength = 20
		}
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 20-barLength)
		fmt.Fprintf(&b, "**%s:** %d `%s`\n", titleWords(stat.Stat.Name), stat.BaseStat, bar)
	}

	b.WriteString("\n*Based on base stats only. Actual performance depends on level, nature, IVs, and EVs.*\n")
	return b.String()
}

// FormatComparison renders a side-by-side comparison of two Pokemon.
func FormatComparison(first, second *pokeapi.Pokemon) string {
	var b strings.Builder

	name1 := titleWords(first.Name)
	name2 := titleWords(second.Name)

	fmt.Fprintf(&b, "# Pokemon Comparison: %s vs %s\n\n", name1, name2)

	b.WriteString("## Basic Comparison\n")
	fmt.Fprintf(&b, "| Attribute | %s | %s |\n", name1, name2)
	b.WriteString("|-----------|------|------|\n")
	fmt.Fprintf(&b, "| ID | #%d | #%d |\n", first.ID, second.ID)
	fmt.Fprintf(&b, "| Height | %.1fm | %.1fm |\n", first.HeightMeters(), second.HeightMeters())
	fmt.Fprintf(&b, "| Weight | %.1fkg | %.1fkg |\n", first.WeightKG(), second.WeightKG())

	b.WriteString("\n## Stat Comparison\n")
	fmt.Fprintf(&b, "| Stat | %s | %s | Winner |\n", name1, name2)
	b.WriteString("|------|------|------|--------|\n")

	secondStats := second.StatMap()
	for _, stat := range first.Stats {
		val1 := stat.BaseStat
		val2 := secondStats[stat.Stat.Name]
		winner := "Tie"
		if val1 > val2 {
			winner = name1
		} else if val2 > val1 {
			winner = name2
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", titleWords(stat.Stat.Name), val1, val2, winner)
	}

	total1 := first.StatTotal()
	total2 := second.StatTotal()
	totalWinner := "Tie"
	if total1 > total2 {
		totalWinner = name1
	} else if total2 > total1 {
		totalWinner = name2
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | **%d** | **%s** |\n", total1, total2, totalWinner)

	b.WriteString("\n## Type Comparison\n")
	fmt.Fprintf(&b, "- **%s**: %s\n", name1, strings.Join(first.TypeNames(), ", "))
	fmt.Fprintf(&b, "- **%s**: %s\n", name2, strings.Join(second.TypeNames(), ", "))

	return b.String()
}

// formatPokemonResource renders the full resource document, combining
// Pokemon and species data.
func formatPokemonResource(p *pokeapi.Pokemon, species *pokeapi.Species) string {
	if species == nil {
		species = &pokeapi.Species{}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s (#%d)\n\n", titleWords(p.Name), p.ID)

	b.WriteString("## Basic Information\n")
	fmt.Fprintf(&b, "- **Height**: %.1fm\n", p.HeightMeters())
	fmt.Fprintf(&b, "- **Weight**: %.1fkg\n", p.WeightKG())
	fmt.Fprintf(&b, "- **Types**: %s\n", strings.Join(p.TypeNames(), ", "))
	if species.IsLegendary {
		b.WriteString("- **Legendary**\n")
	}
	if species.IsMythical {
		b.WriteString("- **Mythical**\n")
	}
	if species.Habitat != nil {
		fmt.Fprintf(&b, "- **Habitat**: %s\n", titleWords(species.Habitat.Name))
	}

	b.WriteString("\n## Physical Description\n")
	if flavor := species.FlavorText(); flavor != "" {
		b.WriteString(flavor + "\n")
	} else {
		b.WriteString("No description available.\n")
	}

	b.WriteString("\n## Base Stats\n")
	b.WriteString("| Stat | Value | Rank |\n|------|-------|------|\n")
	for _, stat := range p.Stats {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", titleWords(stat.Stat.Name), stat.BaseStat, statRank(stat.BaseStat))
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | - |\n", p.StatTotal())

	b.WriteString("\n## Abilities\n")
	for _, ability := range p.Abilities {
		hidden := ""
		if ability.IsHidden {
			hidden = " (Hidden)"
		}
		fmt.Fprintf(&b, "- **%s**%s\n", titleWords(ability.Ability.Name), hidden)
	}

	if species.Generation.Name != "" {
		fmt.Fprintf(&b, "\n## Generation\n%s\n", titleWords(species.Generation.Name))
	}

	return b.String()
}

// movesetDisplayLimit caps how many moves the moveset resource lists.
const movesetDisplayLimit = 40

// formatMovesetResource renders the learnable move list.
func formatMovesetResource(p *pokeapi.Pokemon) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Moveset\n\n", titleWords(p.Name))

	if len(p.Moves) == 0 {
		b.WriteString("No move data available.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Learnable moves:** %d\n\n## Moves\n", len(p.Moves))
	for i, move := range p.Moves {
		if i >= movesetDisplayLimit {
			fmt.Fprintf(&b, "\n*...and %d more.*\n", len(p.Moves)-movesetDisplayLimit)
			break
		}
		fmt.Fprintf(&b, "- %s\n", titleWords(move.Move.Name))
	}
	return b.String()
}

// generationInfo is the static overview data for one generation.
type generationInfo struct {
	region  string
	firstID int
	lastID  int
	games   string
}

// generations indexes the overview data by generation number.
var generations = map[int]generationInfo{
	1: {region: "Kanto", firstID: 1, lastID: 151, games: "Red, Blue, Yellow"},
	2: {region: "Johto", firstID: 152, lastID: 251, games: "Gold, Silver, Crystal"},
	3: {region: "Hoenn", firstID: 252, lastID: 386, games: "Ruby, Sapphire, Emerald"},
	4: {region: "Sinnoh", firstID: 387, lastID: 493, games: "Diamond, Pearl, Platinum"},
	5: {region: "Unova", firstID: 494, lastID: 649, games: "Black, White"},
	6: {region: "Kalos", firstID: 650, lastID: 721, games: "X, Y"},
	7: {region: "Alola", firstID: 722, lastID: 809, games: "Sun, Moon"},
	8: {region: "Galar", firstID: 810, lastID: 905, games: "Sword, Shield"},
	9: {region: "Paldea", firstID: 906, lastID: 1025, games: "Scarlet, Violet"},
}

// formatGenerationResource renders the overview for a generation
// number, erroring on numbers outside the known range.
func formatGenerationResource(number int) (string, error) {
	gen, ok := generations[number]
	if !ok {
		return "", fmt.Errorf("unknown generation %d; expected 1 through %d", number, len(generations))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Generation %d\n\n", number)
	fmt.Fprintf(&b, "**Region:** %s\n", gen.region)
	fmt.Fprintf(&b, "**Games:** %s\n", gen.games)
	fmt.Fprintf(&b, "**Pokedex range:** #%d to #%d (%d Pokemon)\n\n", gen.firstID, gen.lastID, gen.lastID-gen.firstID+1)
	fmt.Fprintf(&b, "Fetch any member with the get_pokemon_info tool or the pokemon://info/{name} resource.\n")
	return b.String(), nil
}
