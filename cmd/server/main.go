// Command server exposes the paradigm generators and the inflected-form
// index as a JSON REST API.
//
// Configuration comes from an optional YAML file (-config) and PARADIGM_*
// environment variables; see internal/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/paradigm/index"
	"github.com/cours-de-latin/paradigm/internal/api"
	"github.com/cours-de-latin/paradigm/internal/config"
	"github.com/cours-de-latin/paradigm/internal/logger"
	"github.com/cours-de-latin/paradigm/lexicon"
	"github.com/cours-de-latin/paradigm/store/sqlite"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("loading lexicon", zap.Strings("paths", cfg.Lexicon.Paths))
	entries, err := lexicon.LoadPaths(cfg.Lexicon.Paths...)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	table := index.NewTable()
	var sink index.Sink = table
	if cfg.Index.Database != "" {
		store, err := sqlite.Open(ctx, cfg.Index.Database, log.Named("store"))
		if err != nil {
			return err
		}
		defer store.Close()
		sink = index.Fanout(store, table)
	}

	rep, err := index.New(cfg.Index.Workers, log.Named("indexer")).Run(ctx, entries, sink)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	for _, p := range rep.Problems {
		log.Warn("entry problem", zap.String("entry", p.EntryID), zap.String("error", p.Error))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewHandler(table, log.Named("api")).Router(cfg.Server.CORSOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
