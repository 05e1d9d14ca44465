package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/config"
	"github.com/oksasatya/user-directory/internal/metrics"
	"github.com/oksasatya/user-directory/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client

	registry *prometheus.Registry
	recorder metrics.Recorder
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// SetMetrics installs the registry served on /metrics and the recorder fed by
// the service and access log. A nil registry means metrics are disabled.
func SetMetrics(reg *prometheus.Registry, rec metrics.Recorder) {
	registry = reg
	recorder = rec
}

func GetRegistry() *prometheus.Registry { return registry }

func GetRecorder() metrics.Recorder {
	if recorder == nil {
		return metrics.Nop{}
	}
	return recorder
}

// Reset clears every component. Tests use it between wiring runs.
func Reset() {
	cfg, logger, redisClient = nil, nil, nil
	jwtManager, rabbitPub, esClient = nil, nil, nil
	registry, recorder = nil, nil
}
