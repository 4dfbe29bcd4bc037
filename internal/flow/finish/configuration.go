package finish

import "strings"

// CommandConfiguration captures configuration values for the feature finish command.
type CommandConfiguration struct {
	TargetBranch string `mapstructure:"target"`
	RemoteName   string `mapstructure:"remote"`
	Repository   string `mapstructure:"repository"`
}

// DefaultCommandConfiguration provides baseline configuration values for feature finish.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		TargetBranch: "",
		RemoteName:   "",
		Repository:   "",
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TargetBranch = strings.TrimSpace(configuration.TargetBranch)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	sanitized.Repository = strings.TrimSpace(configuration.Repository)
	return sanitized
}
