package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// Config represents the scanner configuration
type Config struct {
	// Scan settings
	MaxDepth   int    `mapstructure:"max_depth"`   // maximum directory depth from root
	MaxSize    string `mapstructure:"max_size"`    // maximum file size to hash (e.g. "10M")
	BatchSize  int    `mapstructure:"batch_size"`  // candidates hashed per batch
	BatchDelay int    `mapstructure:"batch_delay"` // yield between batches (ms)
	Workers    int    `mapstructure:"workers"`     // hashing workers per batch

	// Filter settings
	Exclude    []string `mapstructure:"exclude"`    // extra directory names to exclude
	Extensions []string `mapstructure:"extensions"` // extension allow-list override
	RulesPath  string   `mapstructure:"rules_path"` // optional YAML filter rules file

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // json, text, md
	OutputFile   string `mapstructure:"output_file"`   // output file path

	// Advisor settings
	Advisor AdvisorConfig `mapstructure:"advisor"` // AI-assisted decision configuration
}

// AdvisorConfig holds AI decision-advisor configuration
type AdvisorConfig struct {
	Enabled  bool   `mapstructure:"advisor_enabled"` // Enable AI-assisted keep/delete suggestions
	Model    string `mapstructure:"advisor_model"`   // Model: haiku, sonnet, opus
	APIToken string `mapstructure:"advisor_token"`   // Anthropic API token
	Timeout  int    `mapstructure:"advisor_timeout"` // Seconds per request
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("max_depth", 3)
	v.SetDefault("max_size", "10M")
	v.SetDefault("batch_size", 25)
	v.SetDefault("batch_delay", 50)
	v.SetDefault("workers", runtime.NumCPU()*2)
	v.SetDefault("report_format", "")
	v.SetDefault("rules_path", "")

	// Advisor defaults
	v.SetDefault("advisor.advisor_enabled", false)
	v.SetDefault("advisor.advisor_model", "haiku")
	v.SetDefault("advisor.advisor_timeout", 30)

	// Read environment variables
	v.SetEnvPrefix("FILESWIPER")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
