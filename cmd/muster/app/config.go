package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/render"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the config file, in that
// order of precedence.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Pipeline configuration
	DataDir         string
	ListsDir        string
	OutputDir       string
	UseEmbeddedData bool
	DocumentFormat  string
	ShowBuffedStats bool
	PrintLayout     bool
	IncludeNotes    bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MUSTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".muster")
		}
	}

	// Missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		DataDir:         viper.GetString("data_dir"),
		ListsDir:        viper.GetString("lists_dir"),
		OutputDir:       viper.GetString("output_dir"),
		UseEmbeddedData: viper.GetBool("use_embedded_data"),
		DocumentFormat:  viper.GetString("document_format"),
		ShowBuffedStats: viper.GetBool("show_buffed_stats"),
		PrintLayout:     viper.GetBool("print_layout"),
		IncludeNotes:    viper.GetBool("include_notes"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.DataDir == "" {
		config.DataDir = constants.DefaultDataDir
	}
	if config.ListsDir == "" {
		config.ListsDir = constants.DefaultListsDir
	}
	if config.OutputDir == "" {
		config.OutputDir = constants.DefaultOutputDir
	}
	if config.DocumentFormat == "" {
		config.DocumentFormat = render.FormatHTML
	}

	return config, nil
}

// UpdateFromFlags applies parsed command flags so they take precedence
// over config file and environment values.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
