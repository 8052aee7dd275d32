/* main.go
 * The "main" method for running the bot and its HTTP server
 * Usage: go run . -test="<true|false>" -web="<true|false>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"wahoo-bot/api/api"
	"wahoo-bot/api/config"
	"wahoo-bot/api/logger"
	"wahoo-bot/bot"
	"wahoo-bot/web"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	//Flags
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	webPtr := flag.String("web", "true", "Serve the HTTP report API: takes true or false as argument")
	logLevelPtr := flag.String("log-level", "", "Log level, overrides LOG_LEVEL")

	flag.Parse()

	bootLog := logger.New(firstNonEmpty(*logLevelPtr, os.Getenv("LOG_LEVEL"), "info"))

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(firstNonEmpty(*logLevelPtr, cfg.LogLevel))

	test, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal().Err(err).Str("flag", "test").Msg("invalid flag, should be true or false")
	}
	serveWeb, err := convertStrToBool(*webPtr)
	if err != nil {
		log.Fatal().Err(err).Str("flag", "web").Msg("invalid flag, should be true or false")
	}

	discordToken, err := cfg.DiscordToken(test)
	if err != nil {
		log.Fatal().Err(err).Msg("missing discord token")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := api.NewAPI(ctx, cfg, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize API")
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from mongo")
		}
	}()

	b, err := bot.NewBot(discordToken, a, log.With().Str("component", "bot").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize bot")
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(gCtx)
	})
	if serveWeb {
		g.Go(func() error {
			return web.Start(gCtx, web.Config{
				Addr:     cfg.WebAddr,
				API:      a,
				Gatherer: reg,
				Logger:   log.With().Str("component", "web").Logger(),
			})
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("shutting down")
	}
}
