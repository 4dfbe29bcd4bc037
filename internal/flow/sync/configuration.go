package sync

import "strings"

// CommandConfiguration captures configuration values for the sync command.
type CommandConfiguration struct {
	RemoteName string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values for remote synchronization.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName: "",
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	return sanitized
}
