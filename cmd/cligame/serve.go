package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/server"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/telemetry"
	"github.com/AsperforMias/cli-game/internal/world"
)

var (
	serveAddr     string
	servePassword string
	serveRedis    string
	serveSeed     int64
	serveDebug    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game server",
	Long: `Start the TCP game server. Sessions run until the player quits or the
connection drops; SIGINT or SIGTERM stops the listener and drains the
sessions that are still up.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&servePassword, "password", "", "connection password (falls back to CLIGAME_PASSWORD, then the built-in default)")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "redis address for saves, e.g. localhost:6379 (in-memory when empty)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "fixed dice seed for every session, 0 rolls fresh")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "log at debug level")
}

func runServe(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if serveDebug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// .env is for local development; variables already in the
	// environment win.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		slog.Warn("telemetry disabled", "error", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				slog.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		return errors.Wrap(err, "failed to load game data")
	}
	w, err := world.New(ctx, registry)
	if err != nil {
		return errors.Wrap(err, "failed to build world")
	}

	st, err := newStore(ctx)
	if err != nil {
		return err
	}

	srv, err := server.New(&server.Config{
		Addr:     serveAddr,
		Password: resolvePassword(),
		Seed:     serveSeed,
		World:    w,
		Store:    st,
		Dialogue: dialogue.NewService(dialogue.ServiceConfig{Generator: newGenerator()}),
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// newStore picks Redis when --redis is set and the in-memory fallback
// otherwise.
func newStore(ctx context.Context) (store.Store, error) {
	if serveRedis == "" {
		slog.Info("saves are in-memory and vanish on restart")
		return store.NewMemory(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: serveRedis})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to reach redis at %s", serveRedis)
	}
	slog.Info("saves go to redis", "addr", serveRedis)
	return store.NewRedis(&store.RedisConfig{Client: client})
}

// newGenerator returns the live chat client when one is configured and
// the canned stub otherwise.
func newGenerator() dialogue.Generator {
	key := os.Getenv("OPENAI_API_KEY")
	base := os.Getenv("OPENAI_BASE_URL")
	if key == "" && base == "" {
		slog.Info("dialogue runs on canned lines", "hint", "set OPENAI_API_KEY for live NPC chatter")
		return dialogue.NewStub()
	}
	return dialogue.NewClient(dialogue.ClientConfig{
		APIKey:  key,
		BaseURL: base,
		Model:   os.Getenv("DIALOGUE_MODEL"),
	})
}

func resolvePassword() string {
	if servePassword != "" {
		return servePassword
	}
	return os.Getenv("CLIGAME_PASSWORD")
}

// setupOTelEnv maps our Honeycomb env vars onto the standard OTEL_*
// variables the exporter reads. Anything already set stays untouched.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	apiKey := os.Getenv("HONEYCOMB_CLIGAME_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CLIGAME_DATASET")
	if dataset == "" {
		dataset = "cligame"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
