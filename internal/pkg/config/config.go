package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (Redis, RabbitMQ) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	MQ      MQConfig
	Migrate MigrateConfig
}

type AppConfig struct {
	// Reservation date-times carry no zone on the wire; they are read in this location.
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Seoul"`
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"store-reservation"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	StoreTTL time.Duration `envconfig:"REDIS_STORE_TTL" default:"10m"`
}

type MQConfig struct {
	URL          string        `envconfig:"MQ_URL" default:""`
	Exchange     string        `envconfig:"MQ_EXCHANGE" default:"reservation.events"`
	PollInterval time.Duration `envconfig:"MQ_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"MQ_BATCH_SIZE" default:"50"`
}

type MigrateConfig struct {
	DevURL     string `envconfig:"MIGRATE_DEV_URL" default:"docker://postgres/17/dev"`
	SchemaFile string `envconfig:"MIGRATE_SCHEMA_FILE" default:"migrations/001_initial_schema.sql"`
	AtlasPath  string `envconfig:"ATLAS_PATH" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c JWTConfig) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_DURATION %q: %w", c.Duration, err)
	}
	return d, nil
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

func (c MQConfig) Enabled() bool { return c.URL != "" }

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadMigrationConfig reads only the settings the schema migrator needs.
func LoadMigrationConfig() (DBConfig, MigrateConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process db config: %w", err)
	}
	var migrate MigrateConfig
	if err := envconfig.Process("", &migrate); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process migrate config: %w", err)
	}
	return db, migrate, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			TimeZone: "Asia/Seoul",
		},
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
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-unit-tests-only",
			Duration: "1h",
			Issuer:   "store-reservation-test",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			StoreTTL: time.Minute,
		},
		MQ: MQConfig{
			Exchange:     "reservation.events",
			PollInterval: time.Second,
			BatchSize:    10,
		},
	}
}
