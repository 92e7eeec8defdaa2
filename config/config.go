package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swiftctx/swiftctx/constants/lipgloss"
)

// Config represents the structure of the configuration file.
type Config struct {
	Version       string `mapstructure:"version"`
	Theme         string `mapstructure:"theme"`
	SourceDir     string `mapstructure:"source_dir"`
	FileExtension string `mapstructure:"file_extension"`
	TokenBudget   int    `mapstructure:"token_budget"`
	Verbose       bool   `mapstructure:"verbose"`
}

// DefaultConfig values.
var DefaultConfig = Config{
	Version:       "0.3.0",
	Theme:         "dracula",
	SourceDir:     "Sources",
	FileExtension: ".swift",
	TokenBudget:   8000,
	Verbose:       false,
}

// cfgFile holds the path to the configuration file (set via CLI).
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and
// environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	setDefaults()

	viper.AutomaticEnv()
	bindEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		viper.SetConfigName("swiftctx-config")
		viper.AddConfigPath(cwd)

		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			// Fall back to JSON; with neither present the defaults stand.
			viper.SetConfigType("json")
			if err := viper.ReadInConfig(); err != nil {
				fmt.Println(lipgloss.Yellow.Render("No configuration file found, using defaults"))
			}
		}
	}

	bindFlags(rootCmd)

	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("source_dir", DefaultConfig.SourceDir)
	viper.SetDefault("file_extension", DefaultConfig.FileExtension)
	viper.SetDefault("token_budget", DefaultConfig.TokenBudget)
	viper.SetDefault("verbose", DefaultConfig.Verbose)
}

// bindEnv explicitly binds environment variables to configuration keys.
func bindEnv() {
	_ = viper.BindEnv("theme", "SWIFTCTX_THEME")
	_ = viper.BindEnv("source_dir", "SWIFTCTX_SOURCE_DIR")
	_ = viper.BindEnv("file_extension", "SWIFTCTX_FILE_EXTENSION")
	_ = viper.BindEnv("token_budget", "SWIFTCTX_TOKEN_BUDGET")
	_ = viper.BindEnv("verbose", "SWIFTCTX_VERBOSE")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("source_dir", rootCmd.PersistentFlags().Lookup("source_dir"))
	_ = viper.BindPFlag("file_extension", rootCmd.PersistentFlags().Lookup("file_extension"))
	_ = viper.BindPFlag("token_budget", rootCmd.PersistentFlags().Lookup("token_budget"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// PersistentFlags so these are available in all subcommands.
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a configuration file (JSON or YAML).")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Syntax highlighting theme for verbose bundle previews (e.g. 'dracula', 'monokai').")
	rootCmd.PersistentFlags().String("source_dir", DefaultConfig.SourceDir, "Name of the sources-root directory segment that owns project modules.")
	rootCmd.PersistentFlags().String("file_extension", DefaultConfig.FileExtension, "Source file extension to resolve dependencies against.")
	rootCmd.PersistentFlags().Int("token_budget", DefaultConfig.TokenBudget, "Upper bound on the rendered bundle size in tokens; enforced lossily.")
	rootCmd.PersistentFlags().BoolP("verbose", "v", DefaultConfig.Verbose, "Additionally print the raw dependency list before the bundle.")

	rootCmd.Flags().Bool("version", false, "Print the application version.")
}
