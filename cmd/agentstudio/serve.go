package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/httpapi"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/memory"
	redisstore "github.com/angjelo/AIAgentStudio/pkg/adapters/redis"
	"github.com/angjelo/AIAgentStudio/pkg/observability"
	"github.com/angjelo/AIAgentStudio/pkg/persistence"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the execution engine behind a JSON API: agent CRUD, execution endpoints and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for agent storage (in-memory when empty)")
	serveCmd.Flags().String("agents-dir", "", "Directory of agent files to load into the store at startup")
}

func runServe(cmd *cobra.Command) error {
	logger := newLogger(cmd)
	port, _ := cmd.Flags().GetString("port")
	redisAddr, _ := cmd.Flags().GetString("redis")
	agentsDir, _ := cmd.Flags().GetString("agents-dir")

	var store ports.AgentStore
	if redisAddr != "" {
		store = redisstore.New(redisAddr)
		logger.Info("using redis agent store", "addr", redisAddr)
	} else {
		store = memory.NewStore()
		logger.Info("using in-memory agent store")
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	engine := agentstudio.New(
		agentstudio.WithLogger(logger),
		agentstudio.WithHooks(metrics.Hooks()),
	)

	if agentsDir != "" {
		if err := seedStore(cmd.Context(), store, agentsDir); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: httpapi.NewHandler(engine, store, logger),
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting agentstudio server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("starting shutdown", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
		logger.Info("server stopped gracefully")
	}
	return nil
}

// seedStore loads every agent file in dir into the store.
func seedStore(ctx context.Context, store ports.AgentStore, dir string) error {
	var paths []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return err
		}
		paths = append(paths, matches...)
	}

	for _, path := range paths {
		agent, err := persistence.LoadAgent(path)
		if err != nil {
			return fmt.Errorf("seed %s: %w", path, err)
		}
		if agent.ID == "" {
			agent.ID = agent.Name
		}
		if err := store.Save(ctx, agent); err != nil {
			return fmt.Errorf("seed %s: %w", path, err)
		}
	}
	return nil
}
