package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"denbox/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage denbox configuration",
	Long: `Manage denbox configuration settings.

Commands:
  list    List all configuration settings
  get     Get a configuration value
  set     Set a configuration value
  path    Show configuration file path
  init    Create default configuration file

Examples:
  denbox config list
  denbox config get container.network
  denbox config set container.network bridge
  denbox config set features.gui true`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := viper.AllSettings()
		printSettingsFlat("", settings)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !viper.IsSet(key) {
			return fmt.Errorf("key not found: %s", key)
		}
		value := viper.Get(key)
		// Handle nested maps by printing them in a readable format
		if m, ok := value.(map[string]interface{}); ok {
			printSettingsFlat(key, m)
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		// Validate known keys
		if err := validateConfigKey(key, value); err != nil {
			return err
		}

		// Get config file path
		configPath := getConfigPath()

		// Ensure config directory exists
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		// Parse value (handle booleans)
		var parsedValue interface{} = value
		if value == "true" {
			parsedValue = true
		} else if value == "false" {
			parsedValue = false
		}

		// Update the value
		viper.Set(key, parsedValue)

		// Write config to file
		if err := viper.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
			fmt.Println(cfgFile)
		} else {
			fmt.Println(getConfigPath())
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := getConfigPath()
		configDir := filepath.Dir(configPath)

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists at %s", configPath)
		}

		defaultConfig := `# Denbox configuration
# Created by 'denbox config init'

# Image recorded in exported create payloads
image:
  name: denbox:latest

# Container settings
container:
  network: host     # host | bridge
  privileged: false
  shm_size: 1G
  interactive: true
  tty: true

# Workspace features enabled by default
features:
  gui: false        # X11 socket and DISPLAY passthrough
  timezone: false   # Share /etc/timezone and /etc/localtime
  cwd: true         # Mount the current directory at /workspace
  resources: false  # Reserved common resource volume

# Output settings
output:
  color: auto       # auto | always | never
  verbose: false
`

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("Created config file at %s\n", configPath)
		return nil
	},
}

// printSettingsFlat prints settings in dot notation
func printSettingsFlat(prefix string, settings map[string]interface{}) {
	// Collect keys and sort them for consistent output
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			printSettingsFlat(fullKey, nested)
		} else {
			fmt.Printf("%s: %v\n", fullKey, value)
		}
	}
}

// getConfigPath returns the default config file path
func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "denbox", "config.yaml")
}

// validateConfigKey validates key/value pairs for known configuration keys
func validateConfigKey(key, value string) error {
	validations := map[string][]string{
		"container.network": {config.NetworkHost, config.NetworkBridge},
		"output.color":      {config.ColorAuto, config.ColorAlways, config.ColorNever},
	}

	if allowed, exists := validations[key]; exists {
		for _, v := range allowed {
			if value == v {
				return nil
			}
		}
		return fmt.Errorf("invalid value for %s: %s (allowed: %s)", key, value, strings.Join(allowed, ", "))
	}

	switch key {
	case "features.gui", "features.timezone", "features.cwd", "features.resources",
		"container.privileged", "container.interactive", "container.tty", "output.verbose":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: %s (allowed: true, false)", key, value)
		}
	case "container.shm_size":
		if _, err := units.RAMInBytes(value); err != nil {
			return fmt.Errorf("invalid value for %s: %s (want a size like 1G or 512M)", key, value)
		}
	}

	return nil // Unknown keys pass through
}
