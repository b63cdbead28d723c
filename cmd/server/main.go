/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the merchandising plan engine server. Handles
  configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite repository
  3. Build the planning service (seeds the sample dataset on first run)
  4. Configure the HTTP router
  5. Serve with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: plan.db)
           Use ":memory:" for an in-memory database
  -seed    Force a reseed of the sample dataset on startup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait up to 30s for active requests to drain
  3. Close the database and exit

EXAMPLES:
  ./server -db="./data/plan.db"
  ./server -db=":memory:" -port=3000
  ./server -seed
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/merchkit/plan-engine/api"
	"github.com/merchkit/plan-engine/planning"
	"github.com/merchkit/plan-engine/store/sqlite"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "plan.db", "SQLite database path")
	reseed := flag.Bool("seed", false, "force a reseed of the sample dataset")
	flag.Parse()

	repo, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	planner, err := planning.NewPlanner(ctx, repo)
	if err != nil {
		log.Fatalf("Failed to initialize planner: %v", err)
	}
	if *reseed {
		if err := planner.Reset(ctx); err != nil {
			log.Fatalf("Failed to reseed: %v", err)
		}
		log.Printf("Reseeded sample dataset")
	}

	handler := api.NewHandler(planner)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: router,
	}

	go func() {
		log.Printf("Plan engine listening on :%d (db: %s)", *port, *dbPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
