package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PawnConfig struct {
	Env          string `yaml:"env" env:"PAWN_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	PawnDB       `yaml:"pawn_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Clock        `yaml:"clock"`
	Contracts    `yaml:"contracts"`
	Tracing      `yaml:"tracing"`
	Metrics      `yaml:"metrics"`
}

type HTTPServer struct {
	Host            string `yaml:"host" env:"PAWN_HTTP_HOST" env-default:"0.0.0.0"`
	Port            string `yaml:"port" env:"PAWN_HTTP_PORT" env-default:"8080"`
	ShutdownTimeout string `yaml:"shutdown_timeout" env-default:"10s"`
}

type PawnDB struct {
	Dsn            string `yaml:"dsn" env:"PAWN_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"PAWN_MIGRATIONS_PATH" env-default:"migrations"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"PAWN_DB_AUTO_MIGRATE"`
	LogQueries     bool   `yaml:"log_queries"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"PAWN_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"PAWN_LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"PAWN_LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env:"PAWN_KAFKA_ENABLED"`
	Host    string `yaml:"host" env:"PAWN_KAFKA_HOST"`
	Port    string `yaml:"port" env:"PAWN_KAFKA_PORT"`
	Topic   string `yaml:"topic" env-default:"pawn-contract-events"`
}

// Clock fixes the single timezone used for "today" and due-date math.
type Clock struct {
	Timezone string `yaml:"timezone" env:"PAWN_TIMEZONE" env-default:"Asia/Bangkok"`
}

type Contracts struct {
	NumberPrefix  string `yaml:"number_prefix" env-default:"SCL"`
	NumberRetries int    `yaml:"number_retries" env-default:"5"`
	SweepSchedule string `yaml:"sweep_schedule" env-default:"5 0 * * *"`
	SweepBatch    int    `yaml:"sweep_batch" env-default:"500"`
}

type Tracing struct {
	Enabled     bool   `yaml:"enabled" env:"PAWN_TRACING_ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env-default:"pawn-service"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled" env:"PAWN_METRICS_ENABLED"`
	Path    string `yaml:"path" env-default:"/metrics"`
}

func MustLoad() *PawnConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAWN_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAWN_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*PawnConfig, error) {
	var cfg PawnConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
