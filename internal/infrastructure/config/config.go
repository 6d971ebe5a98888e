package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Tracking    TrackingConfig
	Providers   ProvidersConfig
	Geocoding   GeocodingConfig
	Positioning PositioningConfig
	MQTT        MQTTConfig
	Auth        AuthConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production test"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

type TrackingConfig struct {
	Interval         time.Duration `envconfig:"TRACKER_INTERVAL" default:"30s" validate:"gt=0"`
	Timeout          time.Duration `envconfig:"TRACKER_TIMEOUT" default:"10s" validate:"gt=0"`
	MaximumAge       time.Duration `envconfig:"TRACKER_MAXIMUM_AGE" default:"30s" validate:"gte=0"`
	RolloverInterval time.Duration `envconfig:"TRACKER_ROLLOVER_INTERVAL" default:"1m" validate:"gt=0"`
	TimeZone         string        `envconfig:"TRACKER_TIME_ZONE" default:"Local"`
	HomeLat          float64       `envconfig:"TRACKER_HOME_LAT" default:"37.2038" validate:"latitude"`
	HomeLng          float64       `envconfig:"TRACKER_HOME_LNG" default:"127.0909" validate:"longitude"`
}

// Location resolves TimeZone.
func (c TrackingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

type ProvidersConfig struct {
	Initial        string        `envconfig:"MAP_INITIAL_PROVIDER" default:"google" validate:"oneof=kakao google"`
	PollInterval   time.Duration `envconfig:"MAP_HEALTH_POLL_INTERVAL" default:"1s" validate:"gt=0"`
	ReadyTimeout   time.Duration `envconfig:"MAP_READY_TIMEOUT" default:"10s" validate:"gt=0"`
	ReadyPoll      time.Duration `envconfig:"MAP_READY_POLL" default:"100ms" validate:"gt=0"`
	KakaoSDKURL    string        `envconfig:"KAKAO_SDK_URL" validate:"omitempty,url"`
	KakaoAppKey    string        `envconfig:"KAKAO_APP_KEY"`
	GoogleSDKURL   string        `envconfig:"GOOGLE_SDK_URL" validate:"omitempty,url"`
	GoogleAPIKey   string        `envconfig:"GOOGLE_MAPS_API_KEY"`
	LoadRetries    int           `envconfig:"MAP_SDK_LOAD_RETRIES" default:"3" validate:"min=0"`
	LoadRetryDelay time.Duration `envconfig:"MAP_SDK_RETRY_DELAY" default:"2s"`
	RecheckAfter   time.Duration `envconfig:"MAP_SDK_RECHECK_AFTER" default:"1m"`
}

type GeocodingConfig struct {
	Enabled      bool          `envconfig:"GEOCODING_ENABLED" default:"true"`
	Source       string        `envconfig:"GEOCODING_SOURCE" default:"kakao" validate:"oneof=kakao google"`
	KakaoBaseURL string        `envconfig:"KAKAO_LOCAL_BASE_URL" default:"https://dapi.kakao.com" validate:"url"`
	KakaoRESTKey string        `envconfig:"KAKAO_REST_KEY"`
	Language     string        `envconfig:"GEOCODING_LANGUAGE" default:"ko"`
	Timeout      time.Duration `envconfig:"GEOCODING_TIMEOUT" default:"5s" validate:"gt=0"`
}

type PositioningConfig struct {
	Source     string `envconfig:"POSITIONING_SOURCE" default:"device" validate:"oneof=device google"`
	ConsiderIP bool   `envconfig:"POSITIONING_CONSIDER_IP" default:"true"`
}

type MQTTConfig struct {
	Enabled     bool   `envconfig:"MQTT_ENABLED" default:"false"`
	Broker      string `envconfig:"MQTT_BROKER" default:"localhost" validate:"required_if=Enabled true"`
	Port        int    `envconfig:"MQTT_PORT" default:"1883" validate:"min=1,max=65535"`
	ClientID    string `envconfig:"MQTT_CLIENT_ID" default:"location-tracker"`
	Username    string `envconfig:"MQTT_USERNAME"`
	Password    string `envconfig:"MQTT_PASSWORD"`
	TopicPrefix string `envconfig:"MQTT_TOPIC_PREFIX" default:"location-tracker"`
	QoS         byte   `envconfig:"MQTT_QOS" default:"0" validate:"max=2"`
	Retain      bool   `envconfig:"MQTT_RETAIN" default:"false"`
}

type AuthConfig struct {
	Enabled      bool          `envconfig:"AUTH_ENABLED" default:"false"`
	Username     string        `envconfig:"AUTH_USERNAME" default:"operator" validate:"required"`
	SecretKey    string        `envconfig:"JWT_SECRET_KEY" validate:"required_if=Enabled true"`
	TokenTTL     time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	PasswordHash string        `envconfig:"AUTH_PASSWORD_HASH" validate:"required_if=Enabled true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
