package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Autocomplete struct {
		URL            string  `yaml:"url"` // empty = built-in default
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"autocomplete"`

	Credits struct {
		RefreshMinutes int `yaml:"refresh_minutes"` // 0 disables the background refresh
	} `yaml:"credits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
