package config

const (
	EnvPrefix = "PANTRYCOST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "PANTRYCOST_APP_ENV"
	EnvPort     = "PANTRYCOST_APP_PORT"
	EnvLogLevel = "PANTRYCOST_LOG_LEVEL"

	EnvDBDSN      = "PANTRYCOST_DB_DSN"
	EnvDBHost     = "PANTRYCOST_DB_HOST"
	EnvDBPort     = "PANTRYCOST_DB_PORT"
	EnvDBUser     = "PANTRYCOST_DB_USER"
	EnvDBPassword = "PANTRYCOST_DB_PASSWORD"
	EnvDBName     = "PANTRYCOST_DB_NAME"
	EnvDBSSLMode  = "PANTRYCOST_DB_SSLMODE"

	EnvRedisURL       = "PANTRYCOST_REDIS_URL"
	EnvRequestTimeout = "PANTRYCOST_HTTP_REQUEST_TIMEOUT"
	EnvCORSOrigins    = "PANTRYCOST_CORS_ALLOWED_ORIGINS"
	EnvAutoMigrate    = "PANTRYCOST_AUTO_MIGRATE"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
