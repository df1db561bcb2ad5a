package container

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// Sentinel errors raised while building or hydrating a configuration.
// Each wraps an errdefs class so callers can match either the specific
// condition or the broader category with errors.Is.
var (
	// ErrMalformedEnv marks an inspected environment entry without a
	// key/value separator.
	ErrMalformedEnv = fmt.Errorf("malformed environment entry: %w", errdefs.ErrInvalidArgument)

	// ErrUnsupportedProtocol marks a published port protocol outside
	// tcp, udp and sctp.
	ErrUnsupportedProtocol = fmt.Errorf("unsupported port protocol: %w", errdefs.ErrInvalidArgument)

	// ErrNoNetworks marks inspect data without a network map. The engine
	// reports one for every real container, so its absence means the
	// payload is not a container inspection.
	ErrNoNetworks = fmt.Errorf("inspect data carries no network map: %w", errdefs.ErrFailedPrecondition)

	// ErrCommonVolume marks the reserved shared-resources volume, whose
	// sharing mechanism is not wired up yet.
	ErrCommonVolume = fmt.Errorf("common resource volume sharing: %w", errdefs.ErrNotImplemented)
)
