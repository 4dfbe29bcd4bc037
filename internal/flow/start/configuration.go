package start

import "strings"

// CommandConfiguration captures configuration values for branch creation commands.
type CommandConfiguration struct {
	BaseBranch string `mapstructure:"base"`
	RemoteName string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values for branch creation.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		BaseBranch: "",
		RemoteName: "",
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.BaseBranch = strings.TrimSpace(configuration.BaseBranch)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	return sanitized
}
