package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMySQL    = "mysql"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Storage    Storage
	Database   Database
	Cache      Cache
	Limiter    Limiter
	Metrics    Metrics
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-description:"comma separated CORS origins"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"mysql" env-description:"one of mysql/postgres/redis/memory"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-default:"localhost:3306"`
	DBName             string        `env:"DB_NAME" env-default:"addresses"`
	User               string        `env:"DB_USER" env-default:""`
	Password           string        `env:"DB_PASSWORD" env-default:""`
	SSLMode            string        `env:"DB_SSL_MODE" env-default:"disable" env-description:"postgres only"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: 172.27.29.90:7000,172.27.29.91:7001"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	KeyPrefix string `env:"REDIS_KEY_PREFIX" env-default:"addresses"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Metrics struct {
	Enabled bool   `env:"METRICS_ENABLED" env-default:"true"`
	Path    string `env:"METRICS_PATH" env-default:"/metrics"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}
