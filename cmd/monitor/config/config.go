package config

import (
	"time"

	"github.com/MichalMitros/price-monitor/internal/mailer"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required"`
	WorkerPoolSize int    `env:"WORKER_POOL_SIZE" envDefault:"16"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	Extractor Extractor
	RabbitMQ  RabbitMQ
	Scheduler Scheduler
	SMTP      mailer.Config `envPrefix:"SMTP_"`
}

// Extractor holds extraction service configuration.
type Extractor struct {
	URL            string        `env:"EXTRACTOR_URL,required"`
	ConnectTimeout time.Duration `env:"EXTRACTOR_CONNECT_TIMEOUT" envDefault:"10s"`
	ReadTimeout    time.Duration `env:"EXTRACTOR_READ_TIMEOUT" envDefault:"60s"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL,required"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"price-monitor"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"price-monitor.refresh"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"pm.cmd.refresh"`
	Prefetch   int    `env:"RABBITMQ_PREFETCH" envDefault:"32"`
}

// Scheduler holds periodic refresh configuration.
type Scheduler struct {
	Schedule    string `env:"REFRESH_SCHEDULE" envDefault:"@every 1h"`
	Parallelism int    `env:"REFRESH_PARALLELISM" envDefault:"8"`
}
