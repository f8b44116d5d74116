// main.go
//
// Process entrypoint: config, logging, word source, room state machine,
// realtime gateway, HTTP server. All state is in-memory and owned by the
// single registry instance wired here.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordroom/go-server/internal/gateway"
	"github.com/wordroom/go-server/internal/httpserver"
	"github.com/wordroom/go-server/internal/rooms"
	"github.com/wordroom/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", list.Len()).Msg("word list loaded")

	registry := rooms.NewRegistry(rooms.NewCodeGenerator(rooms.DefaultCodeLength))
	machine := rooms.NewMachine(registry, list)
	gw := gateway.New(machine)

	// Close the socket server cleanly on shutdown signals.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		gw.Close()
		os.Exit(0)
	}()

	srv := httpserver.New(gw.Handler(), list, os.Getenv("PUBLIC_DIR"))
	port := getEnv("PORT", "3000")
	log.Info().Str("port", port).Msg("starting wordroom server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
