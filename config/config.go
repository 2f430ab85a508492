package config

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/viper"
)

const (
	defaultHTTPPort    = "8080"
	defaultMetricsPort = "9090"
	defaultLogValue    = true
	defaultMaxConn     = "10"
)

type (
	Config struct {
		HTTP struct {
			Port string `env:"HTTP_PORT"`
		}

		PG struct {
			URL        string
			MigrateURL string
			Host       string `env:"POSTGRES_HOST"`
			Port       string `env:"POSTGRES_PORT"`
			DB         string `env:"POSTGRES_DB"`
			User       string `env:"POSTGRES_USER"`
			Password   string `env:"POSTGRES_PASSWORD"`
			MaxConn    string `env:"POSTGRES_MAX_CONN"`
		}

		Log struct {
			LogController bool `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool `env:"LOG_DB_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.HTTP.Port, err = parseEnvString(v, "http_port", "HTTP_PORT", defaultHTTPPort); err != nil {
		return nil, err
	}

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	if cfg.PG.MaxConn, err = parseEnvString(v, "db_max_conn", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	// MigrateURL goes through database/sql which rejects pool
	// parameters, so they are only appended for the pgx pool.
	cfg.PG.MigrateURL = fmt.Sprintf("postgres://%s:%s@", cfg.PG.User, cfg.PG.Password) +
		net.JoinHostPort(cfg.PG.Host, cfg.PG.Port) + fmt.Sprintf("/%s?sslmode=disable", cfg.PG.DB)
	cfg.PG.URL = cfg.PG.MigrateURL + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT", defaultMetricsPort); err != nil {
		return nil, err
	}

	cfg.Observability.JaegerURL = os.Getenv("JAEGER_URL")

	return cfg, nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
