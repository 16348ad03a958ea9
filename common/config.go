package common

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type H = map[string]interface{}

const (
	DEFAULT_PORT           = "8000"
	DEFAULT_DATABASE_URL   = "sqlite3://contest.db"
	DEFAULT_SESSION_SECRET = "secret"
	DEFAULT_SESSION_EXPIRE = 3600 * 24 * 3 //3天
)

type Config struct {
	Port     string         `mapstructure:"port"`
	GinMode  string         `mapstructure:"gin_mode"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

//redis地址为空时不启用缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
	MaxAge int    `mapstructure:"max_age"`
}

//启动时创建的管理员账号, 为空时跳过
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
}

var envBindings = map[string]string{
	"port":            "PORT",
	"gin_mode":        "GIN_MODE",
	"database.url":    "DATABASE_URL",
	"redis.addr":      "REDIS_ADDR",
	"redis.password":  "REDIS_PASSWORD",
	"redis.db":        "REDIS_DB",
	"session.secret":  "SESSION_SECRET",
	"session.max_age": "SESSION_MAX_AGE",
	"admin.name":      "ADMIN_NAME",
	"admin.password":  "ADMIN_PASSWORD",
}

//读取配置: config.json(默认当前目录) < .env < 环境变量
func LoadConfig(dirs ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetDefault("port", DEFAULT_PORT)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("database.url", DEFAULT_DATABASE_URL)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.secret", DEFAULT_SESSION_SECRET)
	v.SetDefault("session.max_age", DEFAULT_SESSION_EXPIRE)
	v.SetDefault("admin.name", "")
	v.SetDefault("admin.password", "")
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Port == "" {
		cfg.Port = DEFAULT_PORT
	}
	if cfg.Session.Secret == DEFAULT_SESSION_SECRET {
		log.Println("session.secret is the default value, set SESSION_SECRET in production")
	}
	return cfg, nil
}
