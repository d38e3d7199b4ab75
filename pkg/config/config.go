package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetInt(key string) int
	GetInt64(key string) int64
	GetIntSlice(key string) []int
	GetString(key string) string
	GetStringMap(key string) map[string]interface{}
	GetStringMapString(key string) map[string]string
	UnmarshalKey(key string, val interface{}) error
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

var defaults = map[string]interface{}{
	"server.port":                 ":8080",
	"gin.mode":                    "release",
	"logger.level":                "info",
	"storefront.language":         "en",
	"cart.currency_symbol":        " MXN",
	"cart.badge_hide_at_zero":     true,
	"notification.display":        3 * time.Second,
	"notification.teardown":       300 * time.Millisecond,
	"notification.ack":            2 * time.Second,
	"session.ttl":                 30 * time.Minute,
	"session.sweep_interval":      time.Minute,
	"cors.allowed_origins":        []string{"http://localhost:8080"},
	"websocket.check_same_origin": false,
	"websocket.send_buffer":       64,
	"storefront.landing_region":   "#home",
	"catalog.continue_target":     "#products",
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	for key, value := range defaults {
		cfg.SetDefault(key, value)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath(".")
	cfg.AddConfigPath("./config")
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("config: " + err.Error())
		}
	}

	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("gin.mode", "GIN_MODE")
	_ = cfg.BindEnv("logger.level", "LOG_LEVEL")
	_ = cfg.BindEnv("storefront.language", "STOREFRONT_LANGUAGE")
	_ = cfg.BindEnv("cart.currency_symbol", "CART_CURRENCY_SYMBOL")
	_ = cfg.BindEnv("cart.badge_hide_at_zero", "CART_BADGE_HIDE_AT_ZERO")
	_ = cfg.BindEnv("notification.display", "NOTIFICATION_DISPLAY")
	_ = cfg.BindEnv("notification.teardown", "NOTIFICATION_TEARDOWN")
	_ = cfg.BindEnv("notification.ack", "NOTIFICATION_ACK")
	_ = cfg.BindEnv("session.ttl", "SESSION_TTL")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Set("cors.allowed_origins", strings.Split(origins, ","))
	}

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetFloat64(key string) float64 {
	return c.cfg.GetFloat64(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetIntSlice(key string) []int {
	return c.cfg.GetIntSlice(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetStringMap(key string) map[string]interface{} {
	return c.cfg.GetStringMap(key)
}
func (c *config) GetStringMapString(key string) map[string]string {
	return c.cfg.GetStringMapString(key)
}

// UnmarshalKey decodes key into val, which must be a pointer.
func (c *config) UnmarshalKey(key string, val interface{}) error {
	return c.cfg.UnmarshalKey(key, val)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
