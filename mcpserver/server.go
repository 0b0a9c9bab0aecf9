// Package mcpserver exposes the Pokemon database over the Model
// Context Protocol: tools for lookups and analysis, readable
// pokemon:// resources and reusable prompt templates, all rendered as
// markdown.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/pokedex-mcp/pokeapi"
)

const serverName = "pokedex-mcp"

// Server bundles the MCP server with the upstream API client it
// serves from.
type Server struct {
	api    pokeapi.API
	logger zerolog.Logger
	mcp    *mcp.Server
}

// New builds a Server with every tool, resource and prompt registered.
func New(api pokeapi.API, version string, logger zerolog.Logger) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: "Pokemon database access. Use the tools for lookups and analysis, pokemon:// resources for readable profiles and the prompts for guided workflows.",
	})

	s := &Server{
		api:    api,
		logger: logger.With().Str("component", "mcpserver").Logger(),
		mcp:    server,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, GetPokemonInfoTool(), GetPokemonInfoHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, SearchPokemonTool(), SearchPokemonHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, TypeEffectivenessTool(), TypeEffectivenessHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, AnalyzeStatsTool(), AnalyzeStatsHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, ComparePokemonTool(), ComparePokemonHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, FilterPokemonTool(), FilterPokemonHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, LookupPokemonTool(), LookupPokemonHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, BuildTeamTool(), BuildTeamHandler(s.api, s.logger))
	mcp.AddTool(s.mcp, SuggestPokemonTool(), SuggestPokemonHandler(s.api, s.logger))
}

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(PokemonInfoResourceTemplate(), PokemonInfoResourceHandler(s.api))
	s.mcp.AddResourceTemplate(PokemonStatsResourceTemplate(), PokemonStatsResourceHandler(s.api))
	s.mcp.AddResourceTemplate(PokemonTypeResourceTemplate(), PokemonTypeResourceHandler(s.api))
	s.mcp.AddResourceTemplate(PokemonMovesetResourceTemplate(), PokemonMovesetResourceHandler(s.api))
	s.mcp.AddResourceTemplate(PokemonGenerationResourceTemplate(), PokemonGenerationResourceHandler())
	s.mcp.AddResourceTemplate(PokemonComparisonResourceTemplate(), PokemonComparisonResourceHandler(s.api))
}

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(PokemonAnalysisPrompt(), PokemonAnalysisPromptHandler())
	s.mcp.AddPrompt(TeamBuildingPrompt(), TeamBuildingPromptHandler())
	s.mcp.AddPrompt(TypeEffectivenessPrompt(), TypeEffectivenessPromptHandler())
	s.mcp.AddPrompt(BattleStrategyPrompt(), BattleStrategyPromptHandler())
	s.mcp.AddPrompt(MatchupAnalysisPrompt(), MatchupAnalysisPromptHandler())
	s.mcp.AddPrompt(TeamPreviewPrompt(), TeamPreviewPromptHandler())
}

// Serve runs the MCP server over stdio until ctx is canceled. The API
// client's connection pool is held open for the lifetime of the
// session.
func (s *Server) Serve(ctx context.Context) error {
	s.api.Start()
	defer s.api.Close()

	s.logger.Info().Str("server", serverName).Msg("serving MCP over stdio")
	if err := s.mcp.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
