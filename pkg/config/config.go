package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Pricing      PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.App); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PANTRYCOST_APP_ENV" required:"true"`
	Port         string `envconfig:"PANTRYCOST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PANTRYCOST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PANTRYCOST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type HTTPConfig struct {
	RequestTimeout  time.Duration `envconfig:"PANTRYCOST_HTTP_REQUEST_TIMEOUT" default:"15s"`
	ReadTimeout     time.Duration `envconfig:"PANTRYCOST_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"PANTRYCOST_HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"PANTRYCOST_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"PANTRYCOST_HTTP_SHUTDOWN_TIMEOUT" default:"20s"`
	AllowedOrigins  []string      `envconfig:"PANTRYCOST_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type DBConfig struct {
	DSN string `envconfig:"PANTRYCOST_DB_DSN"`

	Host     string `envconfig:"PANTRYCOST_DB_HOST"`
	Port     int    `envconfig:"PANTRYCOST_DB_PORT" default:"5432"`
	User     string `envconfig:"PANTRYCOST_DB_USER"`
	Password string `envconfig:"PANTRYCOST_DB_PASSWORD"`
	Name     string `envconfig:"PANTRYCOST_DB_NAME"`
	// SSLMode left empty resolves to "require" in prod and "disable" elsewhere.
	SSLMode string `envconfig:"PANTRYCOST_DB_SSLMODE"`

	MaxOpenConns    int           `envconfig:"PANTRYCOST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PANTRYCOST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PANTRYCOST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PANTRYCOST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; an empty URL and address disables idempotency replay.
type RedisConfig struct {
	URL          string        `envconfig:"PANTRYCOST_REDIS_URL"`
	Address      string        `envconfig:"PANTRYCOST_REDIS_ADDR"`
	Password     string        `envconfig:"PANTRYCOST_REDIS_PASSWORD"`
	DB           int           `envconfig:"PANTRYCOST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PANTRYCOST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PANTRYCOST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PANTRYCOST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PANTRYCOST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PANTRYCOST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PANTRYCOST_AUTO_MIGRATE" default:"false"`
}

type PricingConfig struct {
	IdempotencyTTL time.Duration `envconfig:"PANTRYCOST_IDEMPOTENCY_TTL" default:"24h"`
}

func (db *DBConfig) ensureDSN(app AppConfig) error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	sslMode := strings.TrimSpace(db.SSLMode)
	if sslMode == "" {
		sslMode = "disable"
		if app.IsProd() {
			sslMode = "require"
		}
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	db.DSN = u.String()
	return nil
}
