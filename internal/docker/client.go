// Package docker is the thin engine client used to read container state.
// denbox only inspects; creating and driving containers stays with the
// operator's own tooling.
package docker

import (
	"context"
	"fmt"

	containerTypes "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"denbox/internal/logging"
)

var log = logging.GetLogger("docker")

// Client wraps the engine API client.
type Client struct {
	api *client.Client
}

// New connects to the engine from the environment and verifies the
// daemon answers before returning.
func New(ctx context.Context) (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	if _, err := cli.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}

	return &Client{api: cli}, nil
}

// Close closes the underlying client.
func (c *Client) Close() error {
	return c.api.Close()
}

// Inspect fetches the engine's view of a container by name or ID.
func (c *Client) Inspect(ctx context.Context, nameOrID string) (containerTypes.InspectResponse, error) {
	log.Debugf("inspecting container %s", nameOrID)
	resp, err := c.api.ContainerInspect(ctx, nameOrID)
	if err != nil {
		return containerTypes.InspectResponse{}, fmt.Errorf("failed to inspect container %q: %w", nameOrID, err)
	}
	return resp, nil
}
