package app

import (
	"github.com/bobmcallan/tavily-bridge/internal/bridge"
	"github.com/bobmcallan/tavily-bridge/internal/common"
	"github.com/bobmcallan/tavily-bridge/internal/config"
	"github.com/bobmcallan/tavily-bridge/internal/handlers"
	"github.com/bobmcallan/tavily-bridge/internal/mcp"
	"github.com/bobmcallan/tavily-bridge/internal/tavily"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Bridge *bridge.Bridge

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	PluginHandler  *handlers.PluginHandler
	ToolsHandler   *handlers.ToolsHandler
	MCPHandler     *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	tavilyClient := tavily.NewClient(
		cfg.Tavily.BaseURL,
		cfg.Tavily.APIKey,
		cfg.Tavily.GetTimeout(),
		logger,
	)

	a.Bridge = bridge.New(tavilyClient, logger)

	a.HealthHandler = handlers.NewHealthHandler(logger)
	a.VersionHandler = handlers.NewVersionHandler(logger)
	a.PluginHandler = handlers.NewPluginHandler(logger)
	a.ToolsHandler = handlers.NewToolsHandler(a.Bridge, logger)
	a.MCPHandler = mcp.NewHandler(a.Bridge, logger)

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
