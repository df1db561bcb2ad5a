package config

// Network modes
const (
	NetworkHost   = "host"
	NetworkBridge = "bridge"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults shared with flag help text
const (
	DefaultImage   = "denbox:latest"
	DefaultShmSize = "1G"
)
