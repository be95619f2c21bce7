package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"airline-warehouse/internal/shared/utils"

	"github.com/joho/godotenv"
)

// DateLayout is the calendar format used by every date-valued setting.
const DateLayout = "2006-01-02"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Generator GeneratorConfig
	Output    OutputConfig
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type ServerConfig struct {
	Port         string
	URL          string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryInterval   time.Duration
	MigrationsPath  string
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	CookieSecure    bool
	CookieSameSite  string
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

// GeneratorConfig holds the volume and calendar settings for a generation run.
// Seed is nil when GEN_SEED is unset, which makes runs non-deterministic.
type GeneratorConfig struct {
	Flights           int
	Customers         int
	StartDate         time.Time
	EndDate           time.Time
	Routes            int
	BookingsPerFlight int
	Seed              *int64
}

type OutputConfig struct {
	Dir          string
	Format       string
	LoadDatabase bool
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	generator, err := loadGeneratorConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server:    loadServerConfig(),
		Database:  loadDatabaseConfig(),
		Redis:     loadRedisConfig(),
		Auth:      loadAuthConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Generator: generator,
		Output:    loadOutputConfig(),
	}

	return config, nil
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "false") == "true"
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
	ttl, _ := strconv.Atoi(utils.GetEnv("REDIS_CACHE_TTL_MINUTES", "10"))

	return RedisConfig{
		Enabled:  enabled,
		URL:      utils.GetEnv("REDIS_URL", ""),
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
		CacheTTL: time.Duration(ttl) * time.Minute,
	}
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "30"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		URL:          utils.GetEnv("SERVER_URL", "http://localhost:8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_OPEN_CONNS", "10"))
	maxIdleConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_IDLE_CONNS", "5"))
	connMaxLifetime, _ := strconv.Atoi(utils.GetEnv("DB_CONN_MAX_LIFETIME_MINUTES", "5"))
	retries, _ := strconv.Atoi(utils.GetEnv("DB_CONNECT_RETRIES", "5"))
	retryInterval, _ := strconv.Atoi(utils.GetEnv("DB_RETRY_INTERVAL_SECONDS", "3"))

	return DatabaseConfig{
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "airline_dw"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		ConnectRetries:  retries,
		RetryInterval:   time.Duration(retryInterval) * time.Second,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadAuthConfig() AuthConfig {
	tokenExpiration, _ := strconv.Atoi(utils.GetEnv("JWT_EXPIRATION_HOURS", "24"))

	environment := utils.GetEnv("ENVIRONMENT", "development")

	return AuthConfig{
		JWTSecret:       utils.GetEnv("JWT_SECRET", ""),
		TokenExpiration: time.Duration(tokenExpiration) * time.Hour,
		CookieSecure:    utils.GetEnv("COOKIE_SECURE", strconv.FormatBool(environment == "production")) == "true",
		CookieSameSite:  strings.ToLower(utils.GetEnv("COOKIE_SAMESITE", "lax")),
	}
}

func loadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: utils.GetEnv("CORS_DEBUG", "") == "true",
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production" || utils.GetEnv("LOG_FORMAT", "text") == "json"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "info"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burstSize, _ := strconv.Atoi(utils.GetEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
		TrustProxy:        utils.GetEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true",
	}
}

func loadGeneratorConfig() (GeneratorConfig, error) {
	flights, err := strconv.Atoi(utils.GetEnv("GEN_FLIGHTS", "1000"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_FLIGHTS must be an integer: %w", err)
	}
	customers, err := strconv.Atoi(utils.GetEnv("GEN_CUSTOMERS", "500"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_CUSTOMERS must be an integer: %w", err)
	}
	routes, err := strconv.Atoi(utils.GetEnv("GEN_ROUTES", "200"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_ROUTES must be an integer: %w", err)
	}
	perFlight, err := strconv.Atoi(utils.GetEnv("GEN_BOOKINGS_PER_FLIGHT", "3"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_BOOKINGS_PER_FLIGHT must be an integer: %w", err)
	}

	start, err := time.Parse(DateLayout, utils.GetEnv("GEN_START_DATE", "2024-01-01"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_START_DATE must use %s: %w", DateLayout, err)
	}
	end, err := time.Parse(DateLayout, utils.GetEnv("GEN_END_DATE", "2024-12-31"))
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("GEN_END_DATE must use %s: %w", DateLayout, err)
	}

	seed, err := ParseSeed(utils.GetEnv("GEN_SEED", ""))
	if err != nil {
		return GeneratorConfig{}, err
	}

	return GeneratorConfig{
		Flights:           flights,
		Customers:         customers,
		StartDate:         start,
		EndDate:           end,
		Routes:            routes,
		BookingsPerFlight: perFlight,
		Seed:              seed,
	}, nil
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		Dir:          utils.GetEnv("OUTPUT_DIR", "data"),
		Format:       strings.ToLower(utils.GetEnv("OUTPUT_FORMAT", "csv")),
		LoadDatabase: utils.GetEnv("OUTPUT_LOAD_DATABASE", "false") == "true",
	}
}

// ParseSeed parses an optional seed; an empty string yields nil.
func ParseSeed(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be an integer: %w", err)
	}
	return &seed, nil
}

func (c *Config) validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}

	switch c.Output.Format {
	case "csv", "parquet":
	default:
		return fmt.Errorf("OUTPUT_FORMAT must be csv or parquet, got %q", c.Output.Format)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
