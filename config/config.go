package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type JWT struct {
	Secret  string
	Issuer  string
	ExpDays int
}

type Static struct {
	Dir string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type RateLimit struct {
	Limit     int
	WindowSec int
}

type Config struct {
	Server    Server
	DB        DB
	JWT       JWT
	Static    Static
	Redis     Redis
	RateLimit RateLimit
}

// SessionValidity is the lifetime of issued session tokens and their
// cookies.
func (c *Config) SessionValidity() time.Duration {
	return time.Duration(c.JWT.ExpDays) * 24 * time.Hour
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSec) * time.Second
}

// Load reads the YAML config at path, applying defaults for anything
// unset. A missing file is fine: defaults alone run a local sqlite setup.
// When onChange is non-nil the file is watched and the callback fires on
// every rewrite; the loaded Config itself is not mutated.
func Load(path string, onChange func(fsnotify.Event)) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8787)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "pageforge.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "pageforge")
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "pageforge")
	v.SetDefault("jwt.exp_days", 7)
	v.SetDefault("static.dir", "static")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.limit", 20)
	v.SetDefault("ratelimit.window_sec", 60)

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
		fileFound = false
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		JWT: JWT{
			Secret:  v.GetString("jwt.secret"),
			Issuer:  v.GetString("jwt.issuer"),
			ExpDays: v.GetInt("jwt.exp_days"),
		},
		Static: Static{Dir: v.GetString("static.dir")},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		RateLimit: RateLimit{
			Limit:     v.GetInt("ratelimit.limit"),
			WindowSec: v.GetInt("ratelimit.window_sec"),
		},
	}
	if cfg.JWT.ExpDays <= 0 {
		cfg.JWT.ExpDays = 7
	}

	if onChange != nil && fileFound {
		v.OnConfigChange(onChange)
		v.WatchConfig()
	}
	return cfg, nil
}
