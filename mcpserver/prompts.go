package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// userMessage wraps prompt text in a single-message prompt result.
func userMessage(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

// promptArgument reads a named argument from a prompt request,
// returning the fallback when absent.
func promptArgument(req *mcp.GetPromptRequest, name, fallback string) string {
	if req == nil || req.Params == nil {
		return fallback
	}
	if value, ok := req.Params.Arguments[name]; ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// PokemonAnalysisPrompt defines the guided analysis prompt.
func PokemonAnalysisPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "pokemon-analysis",
		Description: "Guided analysis of a single Pokemon, tuned to the trainer's experience level",
		Arguments: []*mcp.PromptArgument{
			{Name: "pokemon_name", Description: "Pokemon to analyze", Required: true},
			{Name: "user_level", Description: "beginner, intermediate or advanced"},
		},
	}
}

// PokemonAnalysisPromptHandler builds the analysis prompt, picking the
// question set that matches the requested experience level.
func PokemonAnalysisPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		name := promptArgument(req, "pokemon_name", "")
		if name == "" {
			return nil, fmt.Errorf("pokemon_name argument is required")
		}
		level := strings.ToLower(promptArgument(req, "user_level", "intermediate"))

		var questions string
		switch level {
		case "beginner":
			questions = `1. What type is it, and what does that mean in battle?
2. Is it considered strong, and why?
3. What is one simple way to use it on a team?`
		case "advanced":
			questions = `1. How does its stat distribution shape its competitive role?
2. Which common threats check or counter it, and how can a team cover those?
3. What item, ability and move choices maximize its strengths?
4. In which team archetypes does it fit best?`
		default:
			questions = `1. What are its standout stats and what role do they suggest?
2. Which matchups favor it and which should it avoid?
3. What teammates complement its weaknesses?`
		}

		text := fmt.Sprintf(`Please analyze the Pokemon %s for a %s trainer.

Use the get_pokemon_info and analyze_pokemon_stats tools to gather its data, then answer:

%s`, titleWords(name), level, questions)

		return userMessage(fmt.Sprintf("Analysis of %s", titleWords(name)), text), nil
	}
}

// TeamBuildingPrompt defines the team construction prompt.
func TeamBuildingPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "team-building",
		Description: "Build a balanced team around a core Pokemon or theme",
		Arguments: []*mcp.PromptArgument{
			{Name: "core_pokemon", Description: "Pokemon to build the team around"},
			{Name: "theme", Description: "optional team theme, e.g. rain or hyper offense"},
		},
	}
}

// TeamBuildingPromptHandler builds the team construction prompt.
func TeamBuildingPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		core := promptArgument(req, "core_pokemon", "")
		theme := promptArgument(req, "theme", "")

		var b strings.Builder
		b.WriteString("Help me build a balanced team of six Pokemon.\n\n")
		if core != "" {
			fmt.Fprintf(&b, "The team must be built around %s.\n", titleWords(core))
		}
		if theme != "" {
			fmt.Fprintf(&b, "The team should follow a %s theme.\n", theme)
		}
		b.WriteString(`
Use the get_pokemon_info, analyze_pokemon_stats and get_type_effectiveness tools to verify each pick, then cover:

1. A suggested roster of six with a role for each member.
2. The team's combined type coverage and its remaining weaknesses.
3. A suggested lead and the overall game plan.`)

		return userMessage("Team building guidance", b.String()), nil
	}
}

// TypeEffectivenessPrompt defines the type matchup study prompt.
func TypeEffectivenessPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "type-effectiveness",
		Description: "Study the offensive and defensive matchups of a type",
		Arguments: []*mcp.PromptArgument{
			{Name: "type_name", Description: "type to study", Required: true},
		},
	}
}

// TypeEffectivenessPromptHandler builds the type study prompt.
func TypeEffectivenessPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		typeName := promptArgument(req, "type_name", "")
		if typeName == "" {
			return nil, fmt.Errorf("type_name argument is required")
		}

		text := fmt.Sprintf(`Explain the %s type's matchups.

Use the get_type_effectiveness tool to fetch its damage relations, then cover:

1. Which types it hits super effectively, and notable Pokemon that exploit this.
2. Which types resist or ignore it, and how to play around them.
3. Its defensive profile and common pairings that patch its weaknesses.`, titleWords(typeName))

		return userMessage(fmt.Sprintf("Type study: %s", titleWords(typeName)), text), nil
	}
}

// BattleStrategyPrompt defines the single-Pokemon battle plan prompt.
func BattleStrategyPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "battle-strategy",
		Description: "Develop a battle strategy for a Pokemon",
		Arguments: []*mcp.PromptArgument{
			{Name: "pokemon_name", Description: "Pokemon to plan around", Required: true},
			{Name: "format", Description: "battle format, e.g. singles or doubles"},
		},
	}
}

// BattleStrategyPromptHandler builds the battle plan prompt.
func BattleStrategyPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		name := promptArgument(req, "pokemon_name", "")
		if name == "" {
			return nil, fmt.Errorf("pokemon_name argument is required")
		}
		format := promptArgument(req, "format", "singles")

		text := fmt.Sprintf(`Develop a %s battle strategy for %s.

Use analyze_pokemon_stats and get_type_effectiveness to gather its data, then cover:

1. Its primary role in %s and the stats that support it.
2. When to bring it in and when to switch it out.
3. The matchups it wins outright and the threats it must avoid.`, format, titleWords(name), format)

		return userMessage(fmt.Sprintf("Battle strategy for %s", titleWords(name)), text), nil
	}
}

// TeamPreviewPrompt defines the full-team evaluation prompt.
func TeamPreviewPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "team-preview",
		Description: "Evaluate a full team's composition, synergies and weaknesses",
		Arguments: []*mcp.PromptArgument{
			{Name: "team", Description: "comma-separated list of team members", Required: true},
			{Name: "analysis_depth", Description: "quick, standard or comprehensive"},
			{Name: "focus_areas", Description: "comma-separated areas to focus on, e.g. offense, defense, synergy"},
		},
	}
}

// TeamPreviewPromptHandler builds the team evaluation prompt, scaling
// the checklist to the requested analysis depth.
func TeamPreviewPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		team := splitListArgument(promptArgument(req, "team", ""))
		if len(team) == 0 {
			return nil, fmt.Errorf("team argument is required")
		}
		depth := strings.ToLower(promptArgument(req, "analysis_depth", "standard"))

		focus := splitListArgument(promptArgument(req, "focus_areas", ""))
		if len(focus) == 0 {
			focus = []string{"offense", "defense", "synergy", "coverage", "balance"}
		}

		var sections string
		switch depth {
		case "quick":
			sections = `1. Overall team rating and its main win condition.
2. The biggest strength and the biggest weakness.
3. The key member the team cannot afford to lose.`
		case "comprehensive":
			sections = `1. The team's archetype and strategic identity.
2. A role breakdown for every member.
3. The combined type coverage and its gaps.
4. Stat spread and speed tiers across the roster.
5. Synergistic pairings worth building around.
6. Specific threats the team struggles with.
7. One substitution that would improve the team.`
		default:
			depth = "standard"
			sections = `1. The team's archetype and strategic identity.
2. Each member's role and contribution.
3. The combined type coverage and remaining weaknesses.
4. Synergies between members and how to exploit them.
5. The matchups the team should avoid.`
		}

		roster := make([]string, 0, len(team))
		for _, member := range team {
			roster = append(roster, titleWords(member))
		}

		text := fmt.Sprintf(`Please evaluate this team with %s depth: %s.

Focus areas: %s.

Use the get_pokemon_info, analyze_pokemon_stats and get_type_effectiveness tools to gather data on each member, then cover:

%s`, depth, strings.Join(roster, ", "), strings.Join(focus, ", "), sections)

		return userMessage(fmt.Sprintf("Team preview (%s depth)", depth), text), nil
	}
}

// splitListArgument splits a comma-separated prompt argument, dropping
// empty entries.
func splitListArgument(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// MatchupAnalysisPrompt defines the head-to-head prompt.
func MatchupAnalysisPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "matchup-analysis",
		Description: "Analyze a head-to-head matchup between two Pokemon",
		Arguments: []*mcp.PromptArgument{
			{Name: "first", Description: "first Pokemon", Required: true},
			{Name: "second", Description: "second Pokemon", Required: true},
		},
	}
}

// MatchupAnalysisPromptHandler builds the head-to-head prompt.
func MatchupAnalysisPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		first := promptArgument(req, "first", "")
		second := promptArgument(req, "second", "")
		if first == "" || second == "" {
			return nil, fmt.Errorf("first and second arguments are required")
		}

		text := fmt.Sprintf(`Analyze the matchup between %s and %s.

Use the compare_pokemon tool for their stats and get_type_effectiveness for their types, then cover:

1. Who wins a direct confrontation and why.
2. The type interactions that decide the matchup.
3. How the losing side could still come out ahead.`, titleWords(first), titleWords(second))

		return userMessage(fmt.Sprintf("Matchup: %s vs %s", titleWords(first), titleWords(second)), text), nil
	}
}
