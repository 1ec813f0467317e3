package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort         string        `mapstructure:"http_port"`
	DBHost           string        `mapstructure:"db_host"`
	DBPort           string        `mapstructure:"db_port"`
	DBUser           string        `mapstructure:"db_user"`
	DBPassword       string        `mapstructure:"db_password"`
	DBName           string        `mapstructure:"db_name"`
	DBSslMode        string        `mapstructure:"db_sslmode"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisPassword    string        `mapstructure:"redis_password"`
	RedisDB          int           `mapstructure:"redis_db"`
	CatalogCacheTTL  time.Duration `mapstructure:"catalog_cache_ttl"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	MinioEndpoint    string        `mapstructure:"minio_endpoint"`
	MinioAccessKey   string        `mapstructure:"minio_access_key"`
	MinioSecretKey   string        `mapstructure:"minio_secret_key"`
	MinioBucket      string        `mapstructure:"minio_bucket"`
	MinioUseSSL      bool          `mapstructure:"minio_use_ssl"`
	OptimizerURL     string        `mapstructure:"optimizer_url"`
	OptimizerTimeout time.Duration `mapstructure:"optimizer_timeout"`
	RateLimit        string        `mapstructure:"rate_limit"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	AuditSchedule    string        `mapstructure:"audit_schedule"`
}

func defaults() map[string]any {
	return map[string]any{
		"http_port":         "8080",
		"db_host":           "localhost",
		"db_port":           "5432",
		"db_user":           "",
		"db_password":       "",
		"db_name":           "printflow",
		"db_sslmode":        "disable",
		"redis_addr":        "localhost:6379",
		"redis_password":    "",
		"redis_db":          0,
		"catalog_cache_ttl": "10m",
		"jwt_secret":        "",
		"minio_endpoint":    "localhost:9000",
		"minio_access_key":  "",
		"minio_secret_key":  "",
		"minio_bucket":      "printflow",
		"minio_use_ssl":     false,
		"optimizer_url":     "",
		"optimizer_timeout": "2m",
		"rate_limit":        "300-M",
		"log_level":         "info",
		"log_format":        "json",
		"audit_schedule":    "0 */15 * * * *",
	}
}

// LoadConfig reads the environment, after loading envFile into it when the
// file exists. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required setting.
func (c Config) Validate() error {
	var problems []error
	required := map[string]string{
		"JWT_SECRET":       c.JWTSecret,
		"DB_USER":          c.DBUser,
		"MINIO_ACCESS_KEY": c.MinioAccessKey,
		"MINIO_SECRET_KEY": c.MinioSecretKey,
		"OPTIMIZER_URL":    c.OptimizerURL,
	}
	for _, key := range []string{"JWT_SECRET", "DB_USER", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "OPTIMIZER_URL"} {
		if required[key] == "" {
			problems = append(problems, fmt.Errorf("%s is required", key))
		}
	}
	if c.OptimizerTimeout <= 0 {
		problems = append(problems, errors.New("OPTIMIZER_TIMEOUT must be positive"))
	}
	return errors.Join(problems...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
