// The agent polls the lead store and surfaces new leads as notifications.
// It runs next to the consumer, away from the API process, and resumes
// from its persisted cursor after a restart.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadsync_backend/internal/feed"
	"leadsync_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "agent.yaml", "path to the agent configuration file")
	flag.Parse()

	cfg, err := feed.LoadConfig(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(os.Getenv("APP_ENV"))
	log.Info("starting agent", "api_url", cfg.APIURL, "notifier", cfg.Notifier)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid redis url", "error", err)
		panic("invalid redis url: " + err.Error())
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}

	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		log.Error("failed to initialize notifier", "error", err)
		panic("failed to initialize notifier: " + err.Error())
	}

	client := feed.NewClient(
		feed.NewHTTPSource(cfg.APIURL, cfg.Secret, 15*time.Second),
		feed.NewRedisCursorStore(redisClient),
		notifier,
		log,
		cfg.Interval,
		cfg.PageLimit,
	)

	if err := client.Run(ctx); err != nil {
		log.Error("agent error", "error", err)
		panic("agent error: " + err.Error())
	}
}

func buildNotifier(cfg *feed.Config, log *logger.Logger) (feed.Notifier, error) {
	if cfg.Notifier == "smtp" {
		return feed.NewMailNotifier(cfg.SMTP)
	}
	return feed.NewLogNotifier(log), nil
}
