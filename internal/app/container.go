// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"os"

	"github.com/runoshun/lasgrid-shim/internal/domain"
	"github.com/runoshun/lasgrid-shim/internal/infra/config"
	"github.com/runoshun/lasgrid-shim/internal/infra/executor"
	"github.com/runoshun/lasgrid-shim/internal/infra/locator"
	"github.com/runoshun/lasgrid-shim/internal/infra/logging"
	"github.com/runoshun/lasgrid-shim/internal/infra/reporter"
	"github.com/runoshun/lasgrid-shim/internal/usecase"
)

// Options configures container creation.
type Options struct {
	Stdout     io.Writer // Host message channel; defaults to os.Stdout
	ConfigPath string    // Explicit config file (--config)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Reporter domain.Reporter
	Executor domain.CommandExecutor
	Locator  domain.ToolLocator

	// Pointer fields
	Logger        *logging.Logger
	ConfigManager *config.Manager
	Config        *domain.Config
}

// New loads the configuration and wires all ports.
func New(opts Options) (*Container, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := config.NewLoader(opts.ConfigPath).Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	for _, w := range cfg.Warnings {
		logger.Warn("config", w)
	}

	return &Container{
		Reporter: reporter.Tee{
			reporter.NewConsole(stdout),
			reporter.NewLogged(logger, "report"),
		},
		Executor:      executor.NewClient(),
		Locator:       locator.New(cfg.Tool),
		Logger:        logger,
		ConfigManager: config.NewManager(),
		Config:        cfg,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}

// RunGridUseCase returns a new RunGrid use case.
func (c *Container) RunGridUseCase() *usecase.RunGrid {
	return usecase.NewRunGrid(c.Locator, c.Executor, c.Reporter, c.Logger)
}
