package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`
	AppEnv     string `env:"APP_ENV" envDefault:"production"`

	// Настройки подключения к PostgreSQL
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_DATABASE" envDefault:"forum_db"`
	DBUseSSL   bool   `env:"DB_SSL"`
	// Лимит пула: максимум одновременно открытых соединений,
	// лишние запросы ждут в очереди, а не отклоняются
	DBMaxConns int `env:"DB_CONNECTION_LIMIT" envDefault:"10"`

	// Секрет подписи сессионных cookie; дефолт только для разработки
	SessionSecret string `env:"SESSION_SECRET" envDefault:"forum-secret-key-2024"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	return &cfg, nil
}

// DatabaseURL собирает DSN для lib/pq из отдельных параметров подключения.
func (c *Config) DatabaseURL() string {
	sslMode := "disable"
	if c.DBUseSSL {
		sslMode = "require"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки.
// В этом режиме клиенту возвращаются детальные сообщения об ошибках.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
