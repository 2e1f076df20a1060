// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Конфиг читается из yaml-файла по пути CONFIG_PATH; если путь не задан,
// все значения берутся из переменных окружения.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo      `yaml:"mongo"`
	HTTPServer `yaml:"http_server"`
	JWTToken   `yaml:"jwttoken"`
	Stripe     `yaml:"stripe"`
}

// Mongo структура для настройки подключения к MongoDB.
type Mongo struct {
	URI         string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	User        string `yaml:"user" env:"DBUSER"`
	Password    string `yaml:"password" env:"DBPASS"`
	Database    string `yaml:"database" env:"DBNAME" env-default:"BuySellPointDB"`
	MaxPoolSize uint64 `yaml:"max_pool_size" env:"MONGO_MAX_POOL_SIZE" env-default:"10"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":5000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"ACCESS_TOKEN_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"1h"`
}

// Stripe структура для настройки клиента платёжного процессинга.
type Stripe struct {
	SecretKey string `yaml:"secret_key" env:"PAYMENT_SECRET_KEY"`
}

// MustLoad загружает конфиг из файла по CONFIG_PATH либо из окружения;
// завершает процесс при ошибке чтения.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
