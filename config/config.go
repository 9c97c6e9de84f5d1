package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gym-tracker/validator"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string         `mapstructure:"port"`
	Env         string         `mapstructure:"env"`
	DBPath      string         `mapstructure:"db_path"`
	LogLevel    string         `mapstructure:"log_level"`
	Timezone    string         `mapstructure:"timezone"`
	CORSOrigins string         `mapstructure:"cors_origins"`
	Reminder    ReminderConfig `mapstructure:"reminder"`
}

// ReminderConfig controls the gym reminders
type ReminderConfig struct {
	Hour                 int           `mapstructure:"hour"`
	Minute               int           `mapstructure:"minute"`
	Title                string        `mapstructure:"title"`
	Message              string        `mapstructure:"message"`
	Tick                 time.Duration `mapstructure:"tick"`
	Grace                time.Duration `mapstructure:"grace"`
	NotificationsGranted bool          `mapstructure:"notifications_granted"`
}

var AppConfig *Config

// Load reads .env, then an optional config.yaml, with environment
// variables taking precedence (reminder.hour -> REMINDER_HOUR)
func Load() error {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(GetEnv("CONFIG_PATH", "."))
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.gym-tracker")

	v.SetDefault("port", "3000")
	v.SetDefault("env", "development")
	v.SetDefault("db_path", "./data/gym-tracker.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("timezone", "Local")
	v.SetDefault("cors_origins", "http://localhost:5173,capacitor://localhost")
	v.SetDefault("reminder.hour", 18)
	v.SetDefault("reminder.minute", 15)
	v.SetDefault("reminder.title", "It's gym time! 💪")
	v.SetDefault("reminder.message", "Time to hit the gym and crush your workout!")
	v.SetDefault("reminder.tick", time.Minute)
	v.SetDefault("reminder.grace", 30*time.Minute)
	v.SetDefault("reminder.notifications_granted", true)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func (c *Config) validate() error {
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return fmt.Errorf("reminder hour must be between 0 and 23, got %d", c.Reminder.Hour)
	}
	if c.Reminder.Minute < 0 || c.Reminder.Minute > 59 {
		return fmt.Errorf("reminder minute must be between 0 and 59, got %d", c.Reminder.Minute)
	}
	if c.Reminder.Tick <= 0 {
		return errors.New("reminder tick must be positive")
	}
	if err := validator.New().Var("timezone", c.Timezone, "omitempty,timezone"); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location is the user's timezone; log dates follow its calendar day
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
