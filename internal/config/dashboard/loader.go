package dashboard_config

import (
	"strings"

	"github.com/spf13/viper"
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetDefault("app.name", "dashboard")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.version", "dev")

	v.SetDefault("backend.base_url", "http://localhost:3000")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("backend.retry_attempts", 1)
	v.SetDefault("backend.user_agent", "leancloud-tester-dashboard/1.0")

	v.SetDefault("ui.failures_only", true)
	v.SetDefault("ui.initial_test", "")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.refresh_interval", "0s")

	v.SetDefault("metrics.addr", "")

	v.SetDefault("otel.enable", false)
	v.SetDefault("otel.service_name", "dashboard")
	v.SetDefault("otel.sample_ratio", 1.0)
	v.SetDefault("otel.otlp_endpoint", "localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.file", "logs/dashboard.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
