package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"denbox/internal/config"
	"denbox/internal/console"
	"denbox/internal/logging"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config

	log = logging.GetLogger("cli")
)

var rootCmd = &cobra.Command{
	Use:   "denbox",
	Short: "Plan and inspect workspace container configurations",
	Long: `Denbox models the runtime configuration of disposable Docker workspace
containers: which features are wired in (X11 forwarding, shared timezone,
current-directory sharing), what gets mounted, which devices and ports
pass through, and the environment the workspace sees.

It never creates or starts containers. It reads existing ones through the
Docker API, or plans new ones from configuration and flags, and renders
either view for the terminal or as an engine create payload.

Examples:
  denbox inspect mybox              # Rebuild a running container's setup
  denbox plan --gui --timezone      # Preview a workspace configuration
  denbox plan -o yaml -- zsh -l     # Export the engine create payload
  denbox doctor                     # Check host readiness`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/denbox/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("color", "", "color mode: auto, always, never (overrides config)")

	// Bind flags to viper for config integration
	viper.BindPFlag("output.color", rootCmd.PersistentFlags().Lookup("color"))
}

func initConfig() {
	logging.SetDebug(debug)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not find home directory:", err)
			home = "."
		}

		// Search for config in standard locations
		viper.AddConfigPath(home + "/.config/denbox")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("DENBOX")
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Warning: error reading config file:", err)
		}
	}

	// Load into config struct
	cfg = config.LoadConfig()
}

// renderer returns the token renderer for the configured color mode.
func renderer() *console.Renderer {
	return console.NewRenderer(cfg.Output.Color)
}

// boolFlag returns the flag value when it was set on the command line,
// the configured fallback otherwise.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetBool(name)
		return value
	}
	return fallback
}

func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}
