package health

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	commandUseConstant                 = "health"
	commandShortDescriptionConstant    = "Repository health check"
	commandLongDescriptionConstant     = "health inspects the repository for uncommitted changes, unpushed commits, stale branches, and large tracked files."
	formatFlagNameConstant             = "format"
	formatFlagDescriptionConstant      = "Report format: console, json, or yaml"
	consoleFormatValueConstant         = "console"
	jsonFormatValueConstant            = "json"
	yamlFormatValueConstant            = "yaml"
	jsonIndentConstant                 = "  "
	unknownFormatErrorTemplateConstant = "unknown report format %q (supported formats: console, json, yaml)"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the health command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the health command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	command.Flags().String(formatFlagNameConstant, consoleFormatValueConstant, formatFlagDescriptionConstant)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	reportFormat := consoleFormatValueConstant
	if flagValue, flagError := command.Flags().GetString(formatFlagNameConstant); flagError == nil && len(strings.TrimSpace(flagValue)) > 0 {
		reportFormat = strings.ToLower(strings.TrimSpace(flagValue))
	}
	switch reportFormat {
	case consoleFormatValueConstant, jsonFormatValueConstant, yamlFormatValueConstant:
	default:
		return fmt.Errorf(unknownFormatErrorTemplateConstant, reportFormat)
	}

	repositoryPath, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	gitExecutor, executorError := shared.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := shared.ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	reporter := ui.NewStatusReporter(command.OutOrStdout())
	if reportFormat != consoleFormatValueConstant {
		reporter = ui.NewStatusReporter(nil)
	}

	service, serviceCreationError := NewService(Dependencies{
		RepositoryManager: repositoryManager,
		Reporter:          reporter,
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	report, checkError := service.Check(command.Context(), Options{
		RepositoryPath: repositoryPath,
		TargetBranch:   configuration.TargetBranch,
		RemoteName:     configuration.RemoteName,
	})
	if checkError != nil {
		return checkError
	}

	switch reportFormat {
	case jsonFormatValueConstant:
		encodedReport, encodeError := json.MarshalIndent(report, "", jsonIndentConstant)
		if encodeError != nil {
			return encodeError
		}
		fmt.Fprintln(command.OutOrStdout(), string(encodedReport))
	case yamlFormatValueConstant:
		encodedReport, encodeError := yaml.Marshal(report)
		if encodeError != nil {
			return encodeError
		}
		fmt.Fprint(command.OutOrStdout(), string(encodedReport))
	default:
		service.Render(report)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
