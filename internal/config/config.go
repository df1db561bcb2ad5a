package config

import (
	"github.com/spf13/viper"
)

// Config represents the full configuration structure
type Config struct {
	Image     ImageConfig     `mapstructure:"image"`
	Container ContainerConfig `mapstructure:"container"`
	Features  FeaturesConfig  `mapstructure:"features"`
	Output    OutputConfig    `mapstructure:"output"`
}

// ImageConfig configures the image recorded in exported create payloads
type ImageConfig struct {
	Name string `mapstructure:"name"`
}

// ContainerConfig configures the container settings plan starts from
type ContainerConfig struct {
	Network     string `mapstructure:"network"` // host, bridge
	Privileged  bool   `mapstructure:"privileged"`
	ShmSize     string `mapstructure:"shm_size"` // e.g. "1G"
	Interactive bool   `mapstructure:"interactive"`
	Tty         bool   `mapstructure:"tty"`
}

// FeaturesConfig selects the feature toggles plan applies by default
type FeaturesConfig struct {
	GUI       bool `mapstructure:"gui"`
	Timezone  bool `mapstructure:"timezone"`
	Cwd       bool `mapstructure:"cwd"`
	Resources bool `mapstructure:"resources"` // reserved
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	Color   string `mapstructure:"color"` // auto, always, never
	Verbose bool   `mapstructure:"verbose"`
}

// LoadConfig loads configuration from viper with defaults
func LoadConfig() *Config {
	setDefaults()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		// Return defaults on error
		return defaultConfig()
	}

	return cfg
}

func setDefaults() {
	// Image defaults
	viper.SetDefault("image.name", DefaultImage)

	// Container defaults
	viper.SetDefault("container.network", NetworkHost)
	viper.SetDefault("container.privileged", false)
	viper.SetDefault("container.shm_size", DefaultShmSize)
	viper.SetDefault("container.interactive", true)
	viper.SetDefault("container.tty", true)

	// Feature defaults
	viper.SetDefault("features.gui", false)
	viper.SetDefault("features.timezone", false)
	viper.SetDefault("features.cwd", true)
	viper.SetDefault("features.resources", false)

	// Output defaults
	viper.SetDefault("output.color", ColorAuto)
	viper.SetDefault("output.verbose", false)
}

func defaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Name: DefaultImage,
		},
		Container: ContainerConfig{
			Network:     NetworkHost,
			Privileged:  false,
			ShmSize:     DefaultShmSize,
			Interactive: true,
			Tty:         true,
		},
		Features: FeaturesConfig{
			GUI:       false,
			Timezone:  false,
			Cwd:       true,
			Resources: false,
		},
		Output: OutputConfig{
			Color:   ColorAuto,
			Verbose: false,
		},
	}
}
