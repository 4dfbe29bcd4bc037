package health

import "strings"

// CommandConfiguration captures configuration values for the health command.
type CommandConfiguration struct {
	TargetBranch string `mapstructure:"target"`
	RemoteName   string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values for health checks.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		TargetBranch: "",
		RemoteName:   "",
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TargetBranch = strings.TrimSpace(configuration.TargetBranch)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	return sanitized
}
