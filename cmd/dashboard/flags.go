package main

import (
	"github.com/spf13/pflag"

	config "github.com/NordCoder/testerdash/internal/config/dashboard"
)

type flags struct {
	configPath  string
	backendURL  string
	test        string
	allResults  bool
	showVersion bool
}

func parseFlags(args []string) (*flags, error) {
	var f flags
	fs := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", "", "Path to a yaml config file")
	fs.StringVar(&f.backendURL, "backend", "", "Backend base URL (overrides backend.base_url)")
	fs.StringVarP(&f.test, "test", "t", "", "Open this test's page directly")
	fs.BoolVar(&f.allResults, "all-results", false, "Start with every result instead of failures only")
	fs.BoolVarP(&f.showVersion, "version", "V", false, "Show version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &f, nil
}

// apply lays command line overrides over the loaded config.
func (f *flags) apply(cfg *config.Config) error {
	if f.backendURL != "" {
		cfg.Backend.BaseURL = f.backendURL
	}
	if f.test != "" {
		cfg.UI.InitialTest = f.test
	}
	if f.allResults {
		cfg.UI.FailuresOnly = false
	}
	return cfg.Validate()
}
