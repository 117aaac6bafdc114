package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	// APIKey is the secret key used to authenticate API requests.
	APIKey string `yaml:"api_key,omitempty"`
	// BaseURL overrides the production API endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
	// Output is the default output format (table, json, yaml).
	Output string `yaml:"output,omitempty"`
}

// loadConfig reads the persisted configuration, falling back to empty values.
func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
		Output:  viper.GetString("output"),
	}
}

// configFilePath resolves the config file location, creating the directory
// when needed.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".payrex")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfigStruct writes the configuration to disk. The file carries the
// secret API key, so it is written with owner-only permissions.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted PayRex CLI configuration",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show configuration values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the raw key
			display := *config
			display.APIKey = maskAPIKey(config.APIKey)

			if len(args) == 1 {
				switch args[0] {
				case "api_key":
					fmt.Println(display.APIKey)
				case "base_url":
					fmt.Println(display.BaseURL)
				case "output":
					fmt.Println(display.Output)
				default:
					return fmt.Errorf("unknown configuration key %q", args[0])
				}

				return nil
			}

			if rendered, err := renderStructured(display); rendered {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("api_key", display.APIKey)
			_ = table.Append("base_url", display.BaseURL)
			_ = table.Append("output", display.Output)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			switch key {
			case "api_key", "base_url", "output":
			default:
				return fmt.Errorf("unknown configuration key %q", key)
			}

			viper.Set(key, value)

			config := loadConfig()
			if err := saveConfigStruct(config); err != nil {
				return err
			}

			if key == "api_key" {
				value = maskAPIKey(value)
			}

			fmt.Printf("Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			switch key {
			case "api_key", "base_url", "output":
			default:
				return fmt.Errorf("unknown configuration key %q", key)
			}

			viper.Set(key, "")

			config := loadConfig()
			if err := saveConfigStruct(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}
