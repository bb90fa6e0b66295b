package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProbeConfig holds the settings for the live capture probe.
type ProbeConfig struct {
	Interface   string `yaml:"interface"`
	SnapshotLen int32  `yaml:"snapshot_len"`
	Promiscuous bool   `yaml:"promiscuous"`
	NATSURL     string `yaml:"nats_url"`
	Subject     string `yaml:"subject"`
}

// CollectorConfig holds the settings for the NATS-to-ClickHouse collector.
type CollectorConfig struct {
	NATSURL       string `yaml:"nats_url"`
	Subject       string `yaml:"subject"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval string `yaml:"flush_interval"`
}

// ClickHouseConfig holds the connection settings for the flow store.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// StorageConfig groups the persistent store settings.
type StorageConfig struct {
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
}

// GeoConfig holds the offline geolocation database settings.
type GeoConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// VizConfig holds the visualization pipeline settings.
type VizConfig struct {
	TopN      int    `yaml:"top_n"`
	OutputDir string `yaml:"output_dir"`
}

// APIConfig holds the HTTP API settings.
type APIConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	DefaultLimit int    `yaml:"default_limit"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Probe     ProbeConfig     `yaml:"probe"`
	Collector CollectorConfig `yaml:"collector"`
	Storage   StorageConfig   `yaml:"storage"`
	Geo       GeoConfig       `yaml:"geo"`
	Viz       VizConfig       `yaml:"viz"`
	API       APIConfig       `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
