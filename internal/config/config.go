package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	SalesData        SalesData        `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	DailySummarySync DailySummarySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// SalesData configures access to the external sales data service that owns
// every sales, employee, and target record.
type SalesData struct {
	URL         string `mapstructure:"sales_data_url"`
	FunctionKey string `mapstructure:"sales_data_function_key"`
	TimeoutSecs int    `mapstructure:"sales_data_timeout_seconds"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// DailySummarySync configures the nightly cache warm of closed-day totals.
type DailySummarySync struct {
	CronSchedule        string `mapstructure:"daily_summary_sync_cron"`
	LookbackDays        int    `mapstructure:"daily_summary_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"daily_summary_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"daily_summary_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"daily_summary_sync_retention_days"`
	Enabled             bool   `mapstructure:"daily_summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_report")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_DATA_URL", "https://team6-sales-function.azurewebsites.net/api")
	viper.SetDefault("SALES_DATA_FUNCTION_KEY", "")
	viper.SetDefault("SALES_DATA_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	// 2am, after the sales data service has closed the previous day
	viper.SetDefault("DAILY_SUMMARY_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("DAILY_SUMMARY_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("DAILY_SUMMARY_SYNC_REQUEST_DELAY_SECONDS", 1)
	viper.SetDefault("DAILY_SUMMARY_SYNC_MAX_CONCURRENT_JOBS", 3)
	// roughly thirteen months, enough for year-over-year comparisons
	viper.SetDefault("DAILY_SUMMARY_SYNC_RETENTION_DAYS", 400)
	viper.SetDefault("DAILY_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in known locations")
}
