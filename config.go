package retree

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the retree configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls how derivation trees are rendered
type OutputConfig struct {
	// Marker is the character repeated once per tree level in text dumps
	Marker string `yaml:"marker"`

	// Indent is the number of markers added per tree level
	Indent int `yaml:"indent"`

	// Format is the default dump format: text, xml or yaml
	Format string `yaml:"format"`

	// File is the default output path; empty means standard output
	File string `yaml:"file"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if len(config.Output.Marker) != 1 {
		return fmt.Errorf("%w: marker must be a single character, got %q", ErrConfigValidation, config.Output.Marker)
	}

	if config.Output.Indent < 1 {
		return fmt.Errorf("%w: indent must be at least 1, got %d", ErrConfigValidation, config.Output.Indent)
	}

	validFormats := map[string]bool{
		"text": true,
		"xml":  true,
		"yaml": true,
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: invalid format '%s': must be one of text, xml, yaml", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

// getDefaultConfig returns the configuration used when no file exists
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults fills in defaults for missing values
func applyDefaults(config *Config) {
	if config.Output.Marker == "" {
		config.Output.Marker = "-"
	}

	if config.Output.Indent == 0 {
		config.Output.Indent = 1
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in path-like config values
func expandConfigEnvVars(config *Config) {
	config.Output.File = expandEnvVars(config.Output.File)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
