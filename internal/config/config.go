package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultSQLiteDSN is used when the sqlite backend has no store.dsn.
const DefaultSQLiteDSN = "file:quizboard.db?_pragma=busy_timeout(5000)"

// Snapshot store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreOracle = "oracle"
	StoreNone   = "none"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	Bank   BankConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// StoreConfig selects where the game snapshot is persisted.
type StoreConfig struct {
	Backend     string
	DSN         string
	AutoMigrate bool
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type BankConfig struct {
	Path string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("store.backend", StoreSQLite)
	v.SetDefault("store.auto_migrate", true)
	v.SetDefault("db.port", 1521)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("bank.path", "configs/questions.json")
}

// LoadConfig reads config.yaml from the working directory or ./configs.
// With ENV=test the project root is searched instead.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	return load(v)
}

// LoadConfigFile reads configuration from an explicit path.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Store: StoreConfig{
			Backend:     strings.ToLower(v.GetString("store.backend")),
			DSN:         v.GetString("store.dsn"),
			AutoMigrate: v.GetBool("store.auto_migrate"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Bank: BankConfig{
			Path: v.GetString("bank.path"),
		},
	}

	if cfg.Store.Backend == StoreSQLite && cfg.Store.DSN == "" {
		cfg.Store.DSN = DefaultSQLiteDSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreSQLite, StoreRedis, StoreOracle, StoreNone:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == StoreSQLite && c.Store.DSN == "" {
		return errors.New("store.dsn is required for the sqlite backend")
	}
	if c.Store.Backend == StoreOracle && c.DB.Host == "" && c.Store.DSN == "" {
		return errors.New("db.host or store.dsn is required for the oracle backend")
	}
	if c.Bank.Path == "" {
		return errors.New("bank.path is required")
	}
	return nil
}

// GetDSN returns the Oracle DSN. An explicit store.dsn wins.
func (c *Config) GetDSN() string {
	if c.Store.Backend == StoreOracle && c.Store.DSN != "" {
		return c.Store.DSN
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
