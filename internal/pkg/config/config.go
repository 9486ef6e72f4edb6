package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Lock      LockConfig
	IDGen     IDGenConfig
	Seckill   SeckillConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Outbox    OutboxConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"3s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"1s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"1s"`
}

type CacheConfig struct {
	TTL              time.Duration `envconfig:"CACHE_TTL" default:"30m"`
	NullTTL          time.Duration `envconfig:"CACHE_NULL_TTL" default:"2m"`
	LogicalTTL       time.Duration `envconfig:"CACHE_LOGICAL_TTL" default:"30m"`
	MutexMaxRetries  int           `envconfig:"CACHE_MUTEX_MAX_RETRIES" default:"20"`
	MutexRetryDelay  time.Duration `envconfig:"CACHE_MUTEX_RETRY_DELAY" default:"50ms"`
	RebuildWorkers   int           `envconfig:"CACHE_REBUILD_WORKERS" default:"10"`
	RebuildQueueSize int           `envconfig:"CACHE_REBUILD_QUEUE_SIZE" default:"256"`
	RebuildTimeout   time.Duration `envconfig:"CACHE_REBUILD_TIMEOUT" default:"5s"`
	// pass_through | mutex | logical_expire
	ShopStrategy    string  `envconfig:"CACHE_SHOP_STRATEGY" default:"logical_expire"`
	WarmShopIDs     []int64 `envconfig:"CACHE_WARM_SHOP_IDS"`
	WarmConcurrency int     `envconfig:"CACHE_WARM_CONCURRENCY" default:"8"`
}

type LockConfig struct {
	TTL        time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	RebuildTTL time.Duration `envconfig:"LOCK_REBUILD_TTL" default:"10s"`
}

type IDGenConfig struct {
	// 2023-01-01T00:00:00Z
	EpochOffset      int64         `envconfig:"IDGEN_EPOCH_OFFSET" default:"1672531200"`
	SequenceBits     uint          `envconfig:"IDGEN_SEQUENCE_BITS" default:"32"`
	CounterRetention time.Duration `envconfig:"IDGEN_COUNTER_RETENTION" default:"48h"`
}

type SeckillConfig struct {
	OrderBizTag       string        `envconfig:"SECKILL_ORDER_BIZ_TAG" default:"order"`
	LockWait          time.Duration `envconfig:"SECKILL_LOCK_WAIT" default:"3s"`
	LockRetryInterval time.Duration `envconfig:"SECKILL_LOCK_RETRY_INTERVAL" default:"20ms"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"2000"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"4000"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	OrderTopic   string        `envconfig:"KAFKA_ORDER_TOPIC" default:"voucher-order.created"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_RELAY_ENABLED" default:"false"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"1s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Shanghai",
			MaxConns: 20,
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     50,
			DialTimeout:  time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Cache: CacheConfig{
			TTL:              30 * time.Minute,
			NullTTL:          2 * time.Minute,
			LogicalTTL:       30 * time.Minute,
			MutexMaxRetries:  200,
			MutexRetryDelay:  5 * time.Millisecond,
			RebuildWorkers:   4,
			RebuildQueueSize: 64,
			RebuildTimeout:   2 * time.Second,
			ShopStrategy:     "logical_expire",
			WarmConcurrency:  4,
		},
		Lock: LockConfig{
			TTL:        10 * time.Second,
			RebuildTTL: 10 * time.Second,
		},
		IDGen: IDGenConfig{
			EpochOffset:      1672531200,
			SequenceBits:     32,
			CounterRetention: 48 * time.Hour,
		},
		Seckill: SeckillConfig{
			OrderBizTag:       "order",
			LockWait:          10 * time.Second,
			LockRetryInterval: 2 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			RPS:   100000,
			Burst: 100000,
		},
		Kafka: KafkaConfig{
			OrderTopic:   "voucher-order.created",
			WriteTimeout: time.Second,
		},
		Outbox: OutboxConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
			BatchSize:    50,
			MaxAttempts:  3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
