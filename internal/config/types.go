package config

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Port            string `yaml:"port" koanf:"port"`
	Mode            string `yaml:"mode" koanf:"mode"`
	Catalog         string `yaml:"catalog" koanf:"catalog"`
	CatalogFile     string `yaml:"catalog_file" koanf:"catalog_file"`
	AssetsDir       string `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir       string `yaml:"output_dir" koanf:"output_dir"`
	DBPath          string `yaml:"db_path" koanf:"db_path"`
	TrackVisitors   bool   `yaml:"track_visitors" koanf:"track_visitors"`
	RetentionMonths int    `yaml:"retention_months" koanf:"retention_months"`
	LiveSessions    bool   `yaml:"live_sessions" koanf:"live_sessions"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            "8080",
		Mode:            "debug",
		Catalog:         "main",
		AssetsDir:       "assets",
		OutputDir:       "public",
		DBPath:          "data/portfolio.db",
		TrackVisitors:   true,
		RetentionMonths: 12,
		LiveSessions:    true,
	}
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
