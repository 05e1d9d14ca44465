package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Empty addresses for Redis, Elasticsearch and RabbitMQ switch those features off.
type Config struct {
	AppName   string
	Env       string // development, staging, production
	Port      string
	GinMode   string
	APIPrefix string

	// Header carrying the asserted role
	RoleHeader string

	ShutdownTimeout time.Duration

	// Redis (rate limiting of mutating routes)
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RateLimitMax    int
	RateLimitWindow time.Duration
	// ip, ip_path or identity
	RateLimitKey           string
	RateLimitExemptPrivate bool

	// JWT identity tokens
	JWTSecret string
	JWTTTL    time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Elasticsearch search mirror
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESUsersIndex       string

	// RabbitMQ domain events
	RabbitMQURL         string
	RabbitMQEventsQueue string

	// Mailgun (notify worker)
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunSender   string
	MailgunAPIBase  string
	MailSendEnabled bool

	// Prometheus /metrics
	MetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName:   getenv("APP_NAME", "user-directory"),
		Env:       getenv("APP_ENV", "development"),
		Port:      getenv("PORT", "8080"),
		GinMode:   getenv("GIN_MODE", "release"),
		APIPrefix: getenv("API_PREFIX", ""),

		RoleHeader: getenv("ROLE_HEADER", "X-Role"),

		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		RateLimitMax:    getint("RATE_LIMIT_MAX", 60),
		RateLimitWindow: getdur("RATE_LIMIT_WINDOW", time.Minute),

		RateLimitKey:           getenv("RATE_LIMIT_KEY", "ip"),
		RateLimitExemptPrivate: getbool("RATE_LIMIT_EXEMPT_PRIVATE", false),

		JWTSecret: getenv("JWT_SECRET", "devidentitysecret"),
		JWTTTL:    getdur("JWT_TTL", time.Hour),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESUsersIndex:       getenv("ES_USERS_INDEX", "users"),

		RabbitMQURL:         getenv("RABBITMQ_URL", ""),
		RabbitMQEventsQueue: getenv("RABBITMQ_EVENTS_QUEUE", "user-events"),

		MailgunDomain:   getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:   getenv("MAILGUN_API_KEY", ""),
		MailgunSender:   getenv("MAILGUN_SENDER", ""),
		MailgunAPIBase:  getenv("MAILGUN_API_BASE", ""),
		MailSendEnabled: getbool("MAIL_SEND_ENABLED", true),

		MetricsEnabled: getbool("METRICS_ENABLED", true),

		// default false; enable when needed
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
