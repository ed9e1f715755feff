package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	SalesAPI          SalesAPI          `mapstructure:",squash"`
	LocalStore        LocalStore        `mapstructure:",squash"`
	ConnectivityProbe ConnectivityProbe `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// SalesAPI points at the upstream sales service.
type SalesAPI struct {
	BaseURL        string `mapstructure:"sales_api_base_url"`
	TimeoutSeconds int    `mapstructure:"sales_api_timeout_seconds"`
}

// LocalStore configures the embedded database used when the upstream sales
// service is unreachable.
type LocalStore struct {
	Path string `mapstructure:"local_store_path"`
}

type ConnectivityProbe struct {
	CronSchedule string `mapstructure:"connectivity_probe_cron"`
	Enabled      bool   `mapstructure:"connectivity_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SALES_API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("SALES_API_TIMEOUT_SECONDS", 30)

	viper.SetDefault("LOCAL_STORE_PATH", "./data/sajangez.db")

	viper.SetDefault("CONNECTIVITY_PROBE_CRON", "* * * * *") // every minute
	viper.SetDefault("CONNECTIVITY_PROBE_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	return config, nil
}

// loadEnvFile loads the .env file with godotenv before viper takes over.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
