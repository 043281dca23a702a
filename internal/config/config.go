package config

import "time"

type Config struct {
	Practicum Practicum
	Telegram  Telegram
}

// Practicum describes access to the homework statuses API
type Practicum struct {
	Token        string        `env:"PRACTICUM_TOKEN,required,notEmpty"`
	Endpoint     string        `env:"PRACTICUM_ENDPOINT" envDefault:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"10m"`
}

type Telegram struct {
	Token  string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID,required"`
}
