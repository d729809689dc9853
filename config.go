package main

import (
	"io/ioutil"
	"path/filepath"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v2"
)

// ServiceConfig struct
type ServiceConfig struct {
	LogLevel   logging.Level    `yaml:"log_level"`
	Database   DatabaseConfig   `yaml:"database"`
	SentryDSN  string           `yaml:"sentry_dsn"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Debug      bool             `yaml:"debug"`
}

// DatabaseConfig struct
type DatabaseConfig struct {
	File    string `yaml:"file"`
	Logging bool   `yaml:"logging"`
}

// HTTPServerConfig struct
type HTTPServerConfig struct {
	Host   string `yaml:"host"`
	Listen string `yaml:"listen"`
}

// LoadConfig read configuration file
func LoadConfig(path string) *ServiceConfig {
	var err error

	path, err = filepath.Abs(path)
	if err != nil {
		panic(err)
	}

	source, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var config ServiceConfig
	if err = yaml.Unmarshal(source, &config); err != nil {
		panic(err)
	}

	return &config
}
