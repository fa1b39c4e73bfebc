package cmd

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"parceltrack/internal/adapters/out/postgres"
)

// DefaultEnvFile is loaded when no env file is given; it may be absent.
const DefaultEnvFile = ".env"

// ClientConfig configures shipctl and any other consumer of the remote authority.
type ClientConfig struct {
	BaseURL   string        `envconfig:"PARCELTRACK_API_BASE_URL" default:"http://localhost:4000"`
	Timeout   time.Duration `envconfig:"PARCELTRACK_API_TIMEOUT" default:"10s"`
	TokenPath string        `envconfig:"PARCELTRACK_TOKEN_PATH"`
	LogLevel  string        `envconfig:"PARCELTRACK_LOG_LEVEL" default:"warn"`
}

// AuthorityConfig configures the reference authority server.
type AuthorityConfig struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"4000"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"parceltrack"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBDebug    bool   `envconfig:"DB_DEBUG"`

	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	AdminUsername string `envconfig:"BOOTSTRAP_ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"BOOTSTRAP_ADMIN_PASSWORD"`

	SeedDemo     bool   `envconfig:"AUTHORITY_SEED_DEMO"`
	DemoPassword string `envconfig:"AUTHORITY_DEMO_PASSWORD" default:"parceltrack"`

	ProjectionAuditSchedule string `envconfig:"PROJECTION_AUDIT_SCHEDULE" default:"0 * * * * *"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY"`
}

func (c AuthorityConfig) DB() postgres.DBConfig {
	return postgres.DBConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
		Debug:    c.DBDebug,
	}
}

func LoadClientConfig(envFile string) (ClientConfig, error) {
	var cfg ClientConfig
	if err := load(envFile, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadAuthorityConfig(envFile string) (AuthorityConfig, error) {
	var cfg AuthorityConfig
	if err := load(envFile, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load reads envFile into the environment, without overriding variables already
// set, then binds the environment to target. An explicitly named file must exist.
func load(envFile string, target any) error {
	if envFile == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return err
	}
	return envconfig.Process("", target)
}
