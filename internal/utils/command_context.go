package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	repositoryIdentifierContextKeyConstant  = commandContextKey("repositoryIdentifier")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithRepositoryIdentifier attaches the hosting repository identifier to the provided context.
func (accessor CommandContextAccessor) WithRepositoryIdentifier(parentContext context.Context, repositoryIdentifier string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, repositoryIdentifierContextKeyConstant, repositoryIdentifier)
}

// RepositoryIdentifier extracts the hosting repository identifier from the provided context.
func (accessor CommandContextAccessor) RepositoryIdentifier(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	repositoryIdentifier, repositoryIdentifierAvailable := executionContext.Value(repositoryIdentifierContextKeyConstant).(string)
	if !repositoryIdentifierAvailable {
		return "", false
	}
	return repositoryIdentifier, true
}
