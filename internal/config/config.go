package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig `mapstructure:"session"`
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	Quiz      QuizConfig      `mapstructure:"quiz"`
	NFT       NFTConfig       `mapstructure:"nft"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	MigrateOnly bool `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Host     string
	Port     int
	Password string
	DB       int
}

type QuizConfig struct {
	QuestionsPerDimension int    `mapstructure:"questions_per_dimension"`
	ProgressTTLHours      int    `mapstructure:"progress_ttl_hours"`
	StatisticsLimit       int    `mapstructure:"statistics_limit"`
	ShareBaseURL          string `mapstructure:"share_base_url"`
}

func (q QuizConfig) ProgressTTL() time.Duration {
	return time.Duration(q.ProgressTTLHours) * time.Hour
}

type NFTConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	ChainID         int64  `mapstructure:"chain_id"`
	ChainName       string `mapstructure:"chain_name"`
	RPCURL          string `mapstructure:"rpc_url"`
	ExplorerURL     string `mapstructure:"explorer_url"`
	OpenSeaURL      string `mapstructure:"opensea_url"`
	ContractAddress string `mapstructure:"contract_address"`
	RelayURL        string `mapstructure:"relay_url"`
	RelayAPIKey     string `mapstructure:"relay_api_key"`
	ExternalURL     string `mapstructure:"external_url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("session.expire_hours", 72)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local_path", "./uploads")
	viper.SetDefault("quiz.questions_per_dimension", 15)
	viper.SetDefault("quiz.progress_ttl_hours", 24)
	viper.SetDefault("quiz.statistics_limit", 100)
	viper.SetDefault("nft.chain_id", 84532)
	viper.SetDefault("nft.chain_name", "Base Sepolia")
	viper.SetDefault("nft.explorer_url", "https://sepolia.basescan.org")
	viper.SetDefault("nft.opensea_url", "https://testnets.opensea.io/assets/base-sepolia")
	viper.SetDefault("nft.timeout_seconds", 30)
	viper.SetDefault("rate_limit.max_requests", 300)
	viper.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CRYPTO_COMPASS")
	viper.AutomaticEnv()
	setDefaults()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Session
	viper.BindEnv("session.secret", "SESSION_SECRET")

	// Redis
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage / OSS
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	viper.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	viper.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	viper.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// NFT
	viper.BindEnv("nft.enabled", "NFT_ENABLED")
	viper.BindEnv("nft.relay_url", "NFT_RELAY_URL")
	viper.BindEnv("nft.relay_api_key", "NFT_RELAY_API_KEY")
	viper.BindEnv("nft.contract_address", "NFT_CONTRACT_ADDRESS")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Session.ExpireTime = cfg.Session.ExpireTime * time.Hour

	// 生产环境校验 session secret 强度
	if cfg.Server.Mode == "release" && len(cfg.Session.Secret) < 32 {
		return nil, fmt.Errorf("session secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Session.Secret))
	}
	if cfg.Quiz.QuestionsPerDimension <= 0 {
		return nil, fmt.Errorf("quiz.questions_per_dimension must be positive, got %d", cfg.Quiz.QuestionsPerDimension)
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
