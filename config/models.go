package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server ServerConfig `mapstructure:"server" json:"server"`
	NLP    NLP          `mapstructure:"nlp"    json:"nlp"`
	Log    LogConfig    `mapstructure:"log"    json:"log"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"                json:"host"`
	Port              int           `mapstructure:"port"                json:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    json:"shutdown_timeout"`
}

// NLP configures the pretrained model used for entity recognition.
// Backend is one of "prose" (in-process model) or "server" (remote NLP server).
type NLP struct {
	Backend   string        `mapstructure:"backend"    json:"backend"    jsonschema:"enum=prose,enum=server"`
	ServerURL string        `mapstructure:"server_url" json:"server_url"`
	Language  string        `mapstructure:"language"   json:"language"`
	Timeout   time.Duration `mapstructure:"timeout"    json:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
}
