package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	ApiServer ServerConfigs   `toml:"api_server"`
	Database  DatabaseConfigs `toml:"database"`
	Auth      AuthConfigs     `toml:"auth"`
	LogLevel  int             `toml:"log_level"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Secret     string        `toml:"secret"`
	Expiration time.Duration `toml:"expiration"`
}

// Load reads the configuration file at path (if non-empty), then applies
// environment overrides for values that must not live in the file.
func Load(path string) (Configs, error) {
	cfg := Configs{
		ApiServer: ServerConfigs{Host: "0.0.0.0", Port: "8080"},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{Expiration: 20 * time.Minute},
		},
		LogLevel: 1,
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	if secret := os.Getenv("TOKEN_SECRET"); secret != "" {
		cfg.Auth.AccessToken.Secret = secret
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ApiServer.Port = port
	}

	return cfg, nil
}
