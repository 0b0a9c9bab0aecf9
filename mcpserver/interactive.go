package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

// teamSize is the number of members an interactive team build collects.
const teamSize = 3

// LookupPokemonInput drives the guided lookup conversation. Missing
// fields are prompted for, so the caller fills them in across turns.
type LookupPokemonInput struct {
	Name        string `json:"name,omitempty" jsonschema:"Pokemon name or ID to look up"`
	DetailLevel string `json:"detail_level,omitempty" jsonschema:"basic, stats or full"`
}

// LookupPokemonTool defines the guided lookup tool schema.
func LookupPokemonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "lookup_pokemon",
		Description: "Guided Pokemon lookup. Call with no arguments to be asked for the name and detail level step by step",
	}
}

// LookupPokemonHandler walks the caller through a lookup, asking for
// each missing argument before fetching.
func LookupPokemonHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[LookupPokemonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LookupPokemonInput) (*mcp.CallToolResult, any, error) {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return textResult("Which Pokemon would you like to look up? Call lookup_pokemon again with the `name` argument set."), nil, nil
		}

		level := strings.ToLower(strings.TrimSpace(input.DetailLevel))
		if level == "" {
			return textResult(fmt.Sprintf(
				"How much detail do you want for **%s**? Call lookup_pokemon again with `detail_level` set to one of:\n\n- `basic`: name, types and size\n- `stats`: full stat analysis\n- `full`: everything, including abilities and moves",
				titleWords(name))), nil, nil
		}
		if level != "basic" && level != "stats" && level != "full" {
			return errorResult(fmt.Sprintf("❌ Unknown detail level '%s'. Use basic, stats or full.", input.DetailLevel)), nil, nil
		}

		logger.Info().Str("identifier", name).Str("detail_level", level).Msg("lookup_pokemon called")

		pokemon, err := api.GetPokemon(ctx, name)
		if err != nil {
			return errorResult(fetchFailureText(name, err)), nil, nil
		}

		switch level {
		case "basic":
			var b strings.Builder
			fmt.Fprintf(&b, "# %s (#%d)\n\n", titleWords(pokemon.Name), pokemon.ID)
			fmt.Fprintf(&b, "**Types:** %s\n", joinTitled(pokemon.TypeNames()))
			fmt.Fprintf(&b, "**Height:** %.1f m\n**Weight:** %.1f kg\n", pokemon.HeightMeters(), pokemon.WeightKG())
			return textResult(b.String()), nil, nil
		case "stats":
			return textResult(FormatStatsAnalysis(pokemon)), nil, nil
		default:
			return textResult(FormatPokemonInfo(pokemon)), nil, nil
		}
	}
}

// BuildTeamInput carries the running state of an interactive team
// build. The caller echoes back the team list from the previous result
// and supplies the next member to add.
type BuildTeamInput struct {
	Team      []string `json:"team,omitempty" jsonschema:"members collected so far, echoed from the previous call"`
	AddMember string   `json:"add_member,omitempty" jsonschema:"name or ID of the next Pokemon to add"`
}

// BuildTeamTool defines the team builder tool schema.
func BuildTeamTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "build_team",
		Description: "Build a team of three Pokemon one member at a time, finishing with a team analysis",
	}
}

// BuildTeamHandler collects members across calls and renders the team
// analysis once the roster is full.
func BuildTeamHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[BuildTeamInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuildTeamInput) (*mcp.CallToolResult, any, error) {
		team := make([]string, 0, teamSize)
		for _, member := range input.Team {
			member = strings.ToLower(strings.TrimSpace(member))
			if member != "" {
				team = append(team, member)
			}
		}

		add := strings.ToLower(strings.TrimSpace(input.AddMember))
		if add == "" {
			return textResult(teamProgress(team, "Who is your next team member? Call build_team again with `add_member` set.")), nil, nil
		}
		if len(team) >= teamSize {
			return errorResult(fmt.Sprintf("❌ The team is already full (%d members).", teamSize)), nil, nil
		}
		for _, member := range team {
			if member == add {
				return errorResult(fmt.Sprintf("❌ %s is already on the team. Pick a different Pokemon.", titleWords(add))), nil, nil
			}
		}

		logger.Info().Str("identifier", add).Int("team_size", len(team)).Msg("build_team adding member")

		// Validate the member exists before committing it to the roster.
		if _, err := api.GetPokemon(ctx, add); err != nil {
			return errorResult(fetchFailureText(add, err)), nil, nil
		}

		team = append(team, add)
		if len(team) < teamSize {
			return textResult(teamProgress(team, fmt.Sprintf(
				"**%s** added. Call build_team again with the updated `team` list and the next `add_member`.", titleWords(add)))), nil, nil
		}

		pokemon, failed := api.GetMultiple(ctx, team)
		if len(failed) > 0 {
			return errorResult(fetchFailureText(failed[0].Identifier, failed[0].Err)), nil, nil
		}
		return textResult(formatTeamAnalysis(pokemon)), nil, nil
	}
}

// validSuggestionTypes are the type names the suggestion flow accepts.
var validSuggestionTypes = []string{
	"normal", "fighting", "flying", "poison", "ground", "rock",
	"bug", "ghost", "steel", "fire", "water", "grass",
	"electric", "psychic", "ice", "dragon", "dark", "fairy",
}

// suggestionCandidates caps how many Pokemon of a type are examined
// per suggestion request.
const suggestionCandidates = 20

// SuggestPokemonInput drives the guided suggestion conversation.
// Rejected suggestions come back through the exclude list.
type SuggestPokemonInput struct {
	Type    string   `json:"type,omitempty" jsonschema:"preferred type, e.g. fire or water"`
	Role    string   `json:"role,omitempty" jsonschema:"attack, defense, support, speed or balanced"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"previously suggested Pokemon to skip"`
}

// SuggestPokemonTool defines the guided suggestion tool schema.
func SuggestPokemonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "suggest_pokemon",
		Description: "Suggest a Pokemon matching a type and role. Call with no arguments to be asked for each preference step by step",
	}
}

// SuggestPokemonHandler asks for the missing preferences, then walks
// the chosen type's members looking for one that fits the role.
func SuggestPokemonHandler(api pokeapi.API, logger zerolog.Logger) mcp.ToolHandlerFor[SuggestPokemonInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuggestPokemonInput) (*mcp.CallToolResult, any, error) {
		typeName := strings.ToLower(strings.TrimSpace(input.Type))
		if typeName == "" {
			return textResult(fmt.Sprintf(
				"What type of Pokemon are you looking for? Call suggest_pokemon again with `type` set to one of: %s.",
				strings.Join(validSuggestionTypes, ", "))), nil, nil
		}
		if !validSuggestionType(typeName) {
			return errorResult(fmt.Sprintf("❌ '%s' is not a valid type. Available types: %s.",
				input.Type, strings.Join(validSuggestionTypes, ", "))), nil, nil
		}

		role := strings.ToLower(strings.TrimSpace(input.Role))
		if role == "" {
			return textResult(fmt.Sprintf(
				"A %s type it is. What role should it fill? Call suggest_pokemon again with `role` set to one of:\n\n%s",
				titleWords(typeName), suggestionRoleMenu())), nil, nil
		}
		if !knownSuggestionRole(role) {
			return errorResult(fmt.Sprintf("❌ '%s' is not a valid role.\n\n%s", input.Role, suggestionRoleMenu())), nil, nil
		}

		logger.Info().Str("type", typeName).Str("role", role).Int("excluded", len(input.Exclude)).Msg("suggest_pokemon called")

		data, err := api.GetTypeInfo(ctx, typeName)
		if err != nil {
			return errorResult(fetchFailureText(typeName, err)), nil, nil
		}

		excluded := make(map[string]struct{}, len(input.Exclude))
		for _, name := range input.Exclude {
			excluded[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
		}

		for _, name := range typeMemberNames(data, suggestionCandidates) {
			if _, skip := excluded[name]; skip {
				continue
			}
			pokemon, err := api.GetPokemon(ctx, name)
			if err != nil {
				continue
			}
			// Very low totals are usually unevolved forms.
			if pokemon.StatTotal() < 300 {
				continue
			}
			highlight, ok := roleHighlight(role, pokemon)
			if !ok {
				continue
			}
			return textResult(formatSuggestion(pokemon, role, highlight)), nil, nil
		}

		return textResult(fmt.Sprintf(
			"😅 No more %s type suggestions for the %s role. Call suggest_pokemon again with a different `type` or `role`.",
			titleWords(typeName), role)), nil, nil
	}
}

func validSuggestionType(name string) bool {
	for _, t := range validSuggestionTypes {
		if t == name {
			return true
		}
	}
	return false
}

func knownSuggestionRole(role string) bool {
	switch role {
	case "attack", "defense", "support", "speed", "balanced":
		return true
	}
	return false
}

func suggestionRoleMenu() string {
	return `- ` + "`attack`" + `: offensive Pokemon with high damage output
- ` + "`defense`" + `: Pokemon built to take hits
- ` + "`support`" + `: Pokemon with the bulk to back up teammates
- ` + "`speed`" + `: Pokemon that move first
- ` + "`balanced`" + `: versatile Pokemon with no weak point`
}

// roleHighlight reports whether a Pokemon fits the role and, when it
// does, the stat line that makes the case.
func roleHighlight(role string, p *pokeapi.Pokemon) (string, bool) {
	stats := p.StatMap()
	switch role {
	case "attack":
		best := max(stats["attack"], stats["special-attack"])
		if best >= 80 {
			return fmt.Sprintf("Attack: %d", best), true
		}
	case "defense":
		best := max(stats["defense"], stats["special-defense"])
		if best >= 80 {
			return fmt.Sprintf("Defense: %d", best), true
		}
	case "speed":
		if stats["speed"] >= 90 {
			return fmt.Sprintf("Speed: %d", stats["speed"]), true
		}
	case "support":
		if stats["hp"] >= 70 {
			return fmt.Sprintf("HP: %d", stats["hp"]), true
		}
	case "balanced":
		if p.StatTotal() >= 450 && minStat(stats) >= 50 {
			return fmt.Sprintf("Balanced stats (total %d)", p.StatTotal()), true
		}
	}
	return "", false
}

func minStat(stats map[string]int) int {
	lowest := -1
	for _, v := range stats {
		if lowest < 0 || v < lowest {
			lowest = v
		}
	}
	return lowest
}

// typeMemberNames extracts up to limit Pokemon names from raw type data.
func typeMemberNames(data map[string]any, limit int) []string {
	entries, ok := data["pokemon"].([]any)
	if !ok {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if len(names) >= limit {
			break
		}
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		ref, ok := wrapper["pokemon"].(map[string]any)
		if !ok {
			continue
		}
		if name, ok := ref["name"].(string); ok && name != "" {
			names = append(names, strings.ToLower(name))
		}
	}
	return names
}

// formatSuggestion renders a suggestion card plus the hint for asking
// for another option.
func formatSuggestion(p *pokeapi.Pokemon, role, highlight string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 🎯 Suggestion: %s (#%d)\n\n", titleWords(p.Name), p.ID)
	fmt.Fprintf(&b, "**Type:** %s\n", joinTitled(p.TypeNames()))
	fmt.Fprintf(&b, "**Role:** %s\n", titleWords(role))
	fmt.Fprintf(&b, "**Highlight:** %s\n\n", highlight)
	fmt.Fprintf(&b, "Not a fit? Call suggest_pokemon again with the same criteria and add %s to `exclude` for another option.\n", p.Name)
	return b.String()
}

// teamProgress renders the current roster plus a next-step hint.
func teamProgress(team []string, hint string) string {
	var b strings.Builder
	b.WriteString("# Team Builder\n\n")
	if len(team) == 0 {
		b.WriteString("The team is empty.\n\n")
	} else {
		fmt.Fprintf(&b, "**Team so far (%d/%d):**\n", len(team), teamSize)
		for i, member := range team {
			fmt.Fprintf(&b, "%d. %s\n", i+1, titleWords(member))
		}
		b.WriteString("\n")
	}
	b.WriteString(hint)
	b.WriteString("\n")
	return b.String()
}

// formatTeamAnalysis summarizes a completed team: roster, average base
// stats and combined type coverage.
func formatTeamAnalysis(team []*pokeapi.Pokemon) string {
	var b strings.Builder
	b.WriteString("# Team Analysis\n\n## Roster\n")

	totalSum := 0
	typeSet := make(map[string]struct{})
	for _, p := range team {
		fmt.Fprintf(&b, "- **%s** (#%d): %s, total %d\n",
			titleWords(p.Name), p.ID, joinTitled(p.TypeNames()), p.StatTotal())
		totalSum += p.StatTotal()
		for _, t := range p.TypeNames() {
			typeSet[strings.ToLower(t)] = struct{}{}
		}
	}

	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	b.WriteString("\n## Summary\n")
	if len(team) > 0 {
		fmt.Fprintf(&b, "**Average stat total:** %d\n", totalSum/len(team))
	}
	fmt.Fprintf(&b, "**Type coverage:** %s (%d unique types)\n", joinTitled(types), len(types))
	return b.String()
}
