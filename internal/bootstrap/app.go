// Package bootstrap handles application initialization and lifecycle management
// for the content-creator service.
//
// The bootstrap process follows these phases:
//   - Phase 0: Config & Logger - Load and validate configuration, create logger
//   - Phase 1: Profiling - Start pprof and Pyroscope profilers (if enabled)
//   - Phase 2: Services - Create upstream clients and the generator
//   - Phase 3: Server - Create the HTTP server
//   - Phase 4: Run - Serve until interrupted or an error occurs
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/profiling"
	"github.com/jonesrussell/north-cloud/content-creator/internal/api"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
)

// Serve starts the HTTP service and blocks until ctx is cancelled, a
// termination signal arrives or the server fails.
func Serve(ctx context.Context, configPath string) error {
	// Phase 0: Config and logger
	deps, err := NewCommandDeps(configPath, false)
	if err != nil {
		return err
	}
	defer func() { _ = deps.Logger.Sync() }()

	if credErr := deps.Config.ValidateCredentials(); credErr != nil {
		return fmt.Errorf("validate credentials: %w", credErr)
	}

	// Phase 1: Profiling
	profiling.StartPprofServer(deps.Logger)

	pyroscopeProfiler, err := profiling.StartPyroscope(deps.Config.Service.Name, deps.Config.Service.Version, deps.Logger)
	if err != nil {
		return fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	defer func() {
		if stopErr := pyroscopeProfiler.Stop(); stopErr != nil {
			deps.Logger.Warn("Failed to stop Pyroscope profiler", logger.Error(stopErr))
		}
	}()

	// Phase 2: Services
	tel := telemetry.NewProvider()
	generator, err := SetupGenerator(deps.Config, tel, deps.Logger)
	if err != nil {
		return fmt.Errorf("setup generator: %w", err)
	}

	// Phase 3: Server
	server, err := api.NewServer(deps.Config, generator, tel, deps.Logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	deps.Logger.Info("Content creator starting",
		logger.String("addr", server.Addr()),
		logger.String("version", deps.Config.Service.Version),
		logger.String("text_provider", deps.Config.Provider.Name),
		logger.String("text_model", deps.Config.Provider.Model),
		logger.Any("features", generator.Features()),
	)

	// Phase 4: Run
	if runErr := server.RunWithGracefulShutdown(ctx); runErr != nil {
		return fmt.Errorf("server: %w", runErr)
	}

	deps.Logger.Info("Content creator exited cleanly")
	return nil
}
