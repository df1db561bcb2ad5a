package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"denbox/internal/console"
	"denbox/internal/container"
	"denbox/internal/docker"
	"denbox/internal/hostpath"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check host support for workspace features",
	Long: `Doctor checks what this host can offer a workspace container: whether
the Docker daemon is reachable and which optional features (X11
forwarding, timezone sharing) have the host files they need.

Checks are read-only. A missing feature is reported, not fixed.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	r := renderer()

	daemonUp := true
	client, err := docker.New(ctx)
	if err != nil {
		daemonUp = false
		fmt.Println(r.Render(fmt.Sprintf("[red]%s[/red] Docker daemon: %v", console.IconCross, err)))
	} else {
		client.Close()
		fmt.Println(r.Render(fmt.Sprintf("[green]%s[/green] Docker daemon reachable", console.IconCheck)))
	}

	if container.HostSharingSupported() {
		fmt.Println(r.Render(fmt.Sprintf("[green]%s[/green] Host file sharing supported", console.IconCheck)))
	} else {
		fmt.Println(r.Render(fmt.Sprintf("[orange3]%s Host file sharing unavailable, GUI and timezone features will be skipped[/orange3]", console.IconCross)))
	}

	if os.Getenv("DISPLAY") != "" && hostpath.DirExists("/tmp/.X11-unix") {
		fmt.Println(r.Render(fmt.Sprintf("[green]%s[/green] X11 display available (DISPLAY=%s)", console.IconCheck, os.Getenv("DISPLAY"))))
	} else {
		fmt.Println(r.Render(fmt.Sprintf("[orange3]%s No X11 display (DISPLAY unset or /tmp/.X11-unix missing)[/orange3]", console.IconCross)))
	}

	if hostpath.FileExists("/etc/timezone") || hostpath.FileExists("/etc/localtime") {
		fmt.Println(r.Render(fmt.Sprintf("[green]%s[/green] Host timezone files present", console.IconCheck)))
	} else {
		fmt.Println(r.Render(fmt.Sprintf("[orange3]%s No host timezone files (/etc/timezone, /etc/localtime)[/orange3]", console.IconCross)))
	}

	if !daemonUp {
		return fmt.Errorf("docker daemon is not reachable")
	}
	return nil
}
