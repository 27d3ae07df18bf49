// Package version exposes the service identity used in logs, traces, and the CLI.
package version

const (
	// Name identifies the service in telemetry and log output.
	Name = "timebandit"
	// Version is overridden at build time via -ldflags.
	Version = "dev"
)
