package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Conversation engine specifics
	Chat           ChatConfig
	Risk           RiskConfig
	Scheduler      SchedulerConfig
	Emergency      EmergencyConfig
	GoogleCalendar GoogleCalendarConfig
	YouTube        YouTubeConfig

	// Renderer (LLM) provider abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig tunes the conversation orchestrator.
type ChatConfig struct {
	SessionTTL      string // idle time before a conversation session is dropped
	HistoryLimit    int    // turns kept in the prompt context window
	RatePerMinute   int    // per-user message rate limit
	RateBurst       int
	RendererTimeout string // per-turn budget for the renderer call
}

// RiskConfig exposes the reviewable risk-scoring table. Weights override the
// built-in defaults per symptom code; thresholds split the aggregate score into
// watch and urgent bands.
type RiskConfig struct {
	WatchThreshold  int
	UrgentThreshold int
	WeightOverrides map[string]int
}

// SchedulerConfig tunes appointment proposal computation.
type SchedulerConfig struct {
	Timezone string
}

// EmergencyConfig carries the contact card attached to emergency replies.
type EmergencyConfig struct {
	EmergencyNumber string
	MaternalHotline string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type YouTubeConfig struct {
	APIKey     string
	MaxResults int64
}

// LLMConfig holds configuration for the renderer provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single renderer provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Conversation engine
	cfg.Chat.SessionTTL = viper.GetString("chat.session_ttl")
	cfg.Chat.HistoryLimit = viper.GetInt("chat.history_limit")
	cfg.Chat.RatePerMinute = viper.GetInt("chat.rate_per_minute")
	cfg.Chat.RateBurst = viper.GetInt("chat.rate_burst")
	cfg.Chat.RendererTimeout = viper.GetString("chat.renderer_timeout")

	// Risk scoring table
	cfg.Risk.WatchThreshold = viper.GetInt("risk.watch_threshold")
	cfg.Risk.UrgentThreshold = viper.GetInt("risk.urgent_threshold")
	if viper.IsSet("risk.weight_overrides") {
		cfg.Risk.WeightOverrides = map[string]int{}
		for code, w := range viper.GetStringMap("risk.weight_overrides") {
			if iv, ok := toInt(w); ok {
				cfg.Risk.WeightOverrides[code] = iv
			}
		}
	}

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")

	// Emergency contact card
	cfg.Emergency.EmergencyNumber = viper.GetString("emergency.emergency_number")
	cfg.Emergency.MaternalHotline = viper.GetString("emergency.maternal_hotline")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// YouTube (optional)
	cfg.YouTube.APIKey = viper.GetString("youtube.api_key")
	cfg.YouTube.MaxResults = viper.GetInt64("youtube.max_results")
	if ytKey := viper.GetString("youtube_api_key"); ytKey != "" {
		cfg.YouTube.APIKey = ytKey
	}

	// Renderer provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no renderer providers configured - please add llm.providers section to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("chat.session_ttl", "30m")
	viper.SetDefault("chat.history_limit", 20)
	viper.SetDefault("chat.rate_per_minute", 30)
	viper.SetDefault("chat.rate_burst", 5)
	viper.SetDefault("chat.renderer_timeout", "15s")

	viper.SetDefault("risk.watch_threshold", 3)
	viper.SetDefault("risk.urgent_threshold", 7)

	viper.SetDefault("scheduler.timezone", "Asia/Dhaka")

	viper.SetDefault("emergency.emergency_number", "999")
	viper.SetDefault("emergency.maternal_hotline", "16263")

	viper.SetDefault("youtube.max_results", 3)

	// Renderer defaults: at most one automatic retry per provider
	// (attempts include the first call).
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}.
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if iv, ok := toInt(val); ok {
			return iv
		}
	}
	return 0
}

func toInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
