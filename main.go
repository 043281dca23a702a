package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/avoronova/homework-bot/internal/config"
	"github.com/avoronova/homework-bot/internal/producer"
	"github.com/avoronova/homework-bot/internal/repository"
	"github.com/avoronova/homework-bot/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, reading process environment")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logrus.Fatalf("couldn't create telegram bot: %v", err)
	}

	practicum := repository.NewPracticum(validator.New(), cfg.Practicum.Endpoint, cfg.Practicum.Token)
	tracker := service.NewTracker()

	poller := producer.NewPoller(bot, cfg.Telegram.ChatID, practicum, tracker, cfg.Practicum.PollInterval)
	poller.Produce(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	<-time.After(2 * time.Second)
}
