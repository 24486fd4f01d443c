package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Address         string        `yaml:"address"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	SecureCookies   bool          `yaml:"secure_cookies"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key"`
	RefreshTokenKey string `yaml:"refresh_token_key"`
	BcryptCost      int    `yaml:"bcrypt_cost"` // 0 means bcrypt.DefaultCost
}

func (c *Config) AccessTokenKey() string {
	return c.Private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.Private.RefreshTokenKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.Public.Address == "" {
		panic("config: address is required")
	}
	if c.Public.AccessTokenTTL <= 0 {
		panic("config: access_token_ttl is required")
	}
	if c.Public.RefreshTokenTTL <= 0 {
		panic("config: refresh_token_ttl is required")
	}
	if c.Private.AccessTokenKey == "" {
		panic("config: access_token_key is required")
	}
	if c.Private.RefreshTokenKey == "" {
		panic("config: refresh_token_key is required")
	}
	if c.Private.AccessTokenKey == c.Private.RefreshTokenKey {
		panic("config: access and refresh token keys must differ")
	}
}
