package cli

import (
	"fmt"
	"os"

	containerTypes "github.com/docker/docker/api/types/container"
	"gopkg.in/yaml.v3"

	"denbox/internal/container"
)

// renderConfig prints the configuration sections inspect and plan share.
// Empty sections are skipped.
func renderConfig(c *container.Config, verbose bool) {
	r := renderer()
	fmt.Print(r.Render(c.FeaturesSummary(verbose)))

	sections := []struct {
		title string
		body  string
	}{
		{"Mounts", c.MountsText(verbose)},
		{"Devices", c.DevicesText(verbose)},
		{"Environment", c.EnvsText(verbose)},
	}
	for _, section := range sections {
		if section.body == "" {
			continue
		}
		fmt.Printf("\n%s:\n", section.title)
		fmt.Print(r.Render(section.body))
	}
}

// writeCreatePayload prints the engine create payload as YAML on stdout.
func writeCreatePayload(c *container.Config, image string, command []string) error {
	containerConfig, hostConfig, err := c.BuildCreateConfigs(image, command)
	if err != nil {
		return err
	}

	payload := struct {
		Container *containerTypes.Config     `yaml:"container"`
		Host      *containerTypes.HostConfig `yaml:"host"`
	}{containerConfig, hostConfig}

	data, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode create payload: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
