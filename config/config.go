package config

import (
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Exchange ExchangeConfig
	Client   ClientConfig
	Log      LogConfig
}

type ExchangeConfig struct {
	BaseURL    string
	PublicKey  string
	PrivateKey string
}

type ClientConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Load reads configs/config.yaml relative to the working directory.
func Load() (*Config, error) {
	return LoadFrom("configs", "config")
}

func LoadFrom(path, name string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(name)

	v.SetDefault("client.timeout_seconds", 15)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	cfg.Exchange = ExchangeConfig{
		BaseURL:    v.GetString("exchange.base_url"),
		PublicKey:  envSub(v.GetString("exchange.public_key")),
		PrivateKey: envSub(v.GetString("exchange.private_key")),
	}

	cfg.Client = ClientConfig{
		Timeout: time.Duration(v.GetInt("client.timeout_seconds")) * time.Second,
	}

	cfg.Log = LogConfig{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSize:    v.GetInt("log.max_size"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAge:     v.GetInt("log.max_age"),
		Compress:   v.GetBool("log.compress"),
	}

	return cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// envSub expands ${VAR} references so key material can live in the
// environment instead of the config file.
func envSub(val string) string {
	if val == "" {
		return ""
	}

	return envPattern.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
