package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reelvault/reelvault/internal/catalog"
	"github.com/reelvault/reelvault/internal/config"
	"github.com/reelvault/reelvault/internal/movies"
	moviesqlite "github.com/reelvault/reelvault/internal/movies/sqlite"
	"github.com/reelvault/reelvault/internal/rental"
	rentalsqlite "github.com/reelvault/reelvault/internal/rental/sqlite"
	"github.com/reelvault/reelvault/internal/transport/client"
	httpTransport "github.com/reelvault/reelvault/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "reelvault",
	Short: "A movie rental catalog",
	Long:  "A movie rental catalog with a SQLite-backed catalog API and a local 24-hour rental store",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the catalog API server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for browsing the catalog and managing rentals",
}

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movie catalog",
	RunE:  runListMovies,
}

var movieCmd = &cobra.Command{
	Use:   "movie [MOVIE_ID]",
	Short: "Show details for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetMovie,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog by genre and/or title",
	RunE:  runSearch,
}

var rentCmd = &cobra.Command{
	Use:   "rent [MOVIE_ID]",
	Short: "Rent a movie for 24 hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runRent,
}

var returnCmd = &cobra.Command{
	Use:   "return [MOVIE_ID]",
	Short: "Return a rented movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runReturn,
}

var rentalsCmd = &cobra.Command{
	Use:   "rentals",
	Short: "List local rentals",
	RunE:  runListRentals,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired rentals",
	RunE:  runSweep,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Clear the catalog cache",
	RunE:  runRefresh,
}

func init() {
	// Server command flags
	serverCmd.Flags().StringP("port", "p", "", "Server port (overrides SERVER_PORT)")
	serverCmd.Flags().String("db-path", "", "Movie database path (overrides MOVIES_DB_PATH)")
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose HTTP logging")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", "", "Catalog server URL (overrides CATALOG_URL)")
	clientCmd.PersistentFlags().String("rentals-db", "", "Local rentals database path (overrides RENTAL_DB_PATH)")
	searchCmd.Flags().StringP("genre", "g", "", "Exact genre filter")
	searchCmd.Flags().StringP("title", "t", "", "Case-insensitive title filter")

	// Add subcommands
	clientCmd.AddCommand(moviesCmd, movieCmd, searchCmd, rentCmd, returnCmd, rentalsCmd, sweepCmd, refreshCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if dbPath, _ := cmd.Flags().GetString("db-path"); dbPath != "" {
		cfg.Server.MoviesDBPath = dbPath
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Verbose = true
	}

	log.Printf("Starting catalog server with config: port=%s db=%s", cfg.Server.Port, cfg.Server.MoviesDBPath)

	// A failed open degrades the API to 503 instead of aborting, so
	// /health keeps answering while the store is repaired.
	var repo movies.Repository
	if sqliteRepo, err := moviesqlite.New(cfg.Server.MoviesDBPath); err != nil {
		log.Printf("[ERROR] Movie database unavailable, catalog routes will answer 503: %v", err)
	} else {
		repo = sqliteRepo
		defer func() {
			if err := sqliteRepo.Close(); err != nil {
				log.Printf("Error closing movie repository: %v", err)
			}
		}()

		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := movies.SeedCatalog(seedCtx, repo); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	server := httpTransport.NewServer(repo, cfg.Server, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// newCommands wires the consumer surface: catalog cache over the API
// client plus the local rental store.
func newCommands(cmd *cobra.Command) (*client.Commands, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverURL, _ := cmd.Flags().GetString("server-url"); serverURL != "" {
		cfg.Catalog.BaseURL = serverURL
	}
	if rentalsDB, _ := cmd.Flags().GetString("rentals-db"); rentalsDB != "" {
		cfg.Rental.DBPath = rentalsDB
	}

	fetcher := client.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.FetchTimeout)
	cache := catalog.NewCache(fetcher, catalog.Config{
		TTL:          cfg.Catalog.CacheTTL,
		FetchTimeout: cfg.Catalog.FetchTimeout,
	})

	store := rental.New(func() (rental.Repository, error) {
		return rentalsqlite.New(cfg.Rental.DBPath)
	}, nil)
	store.Initialize()

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing rental store: %v", err)
		}
	}

	return client.NewCommands(cache, store, nil), cleanup, nil
}

func runClientCommand(cmd *cobra.Command, run func(context.Context, *client.Commands) error) error {
	commands, cleanup, err := newCommands(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return run(ctx, commands)
}

func runListMovies(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.ListMovies(ctx)
	})
}

func runGetMovie(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.GetMovie(ctx, args[0])
	})
}

func runSearch(cmd *cobra.Command, args []string) error {
	genre, _ := cmd.Flags().GetString("genre")
	title, _ := cmd.Flags().GetString("title")
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.Search(ctx, genre, title)
	})
}

func runRent(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.Rent(ctx, args[0])
	})
}

func runReturn(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.Return(ctx, args[0])
	})
}

func runListRentals(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.ListRentals(ctx)
	})
}

func runSweep(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.Sweep(ctx)
	})
}

func runRefresh(cmd *cobra.Command, args []string) error {
	return runClientCommand(cmd, func(ctx context.Context, c *client.Commands) error {
		return c.Refresh(ctx)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
