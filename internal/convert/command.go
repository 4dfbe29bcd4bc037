// Package convert holds the documentation packaging command. The command
// currently only parses its arguments; the packaging pipeline is not built yet.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	commandUseConstant              = "convert"
	commandShortDescriptionConstant = "Convert documentation to a packaged output file"
	commandLongDescriptionConstant  = "convert packages a documentation tree into a single output file. Domain and topic filters narrow the input set; --all overrides both filters."
	domainFlagNameConstant          = "domain"
	domainFlagDescriptionConstant   = "Specific domain to convert"
	topicFlagNameConstant           = "topic"
	topicFlagDescriptionConstant    = "Specific topic to convert"
	outputFlagNameConstant          = "output"
	outputFlagDescriptionConstant   = "Output filename"
	allFlagNameConstant             = "all"
	allFlagDescriptionConstant      = "Convert all documentation"
	bannerMessageConstant           = "Documentation converter"
	pendingMessageConstant          = "TODO: Implementation pending"
)

// CommandBuilder assembles the convert command.
type CommandBuilder struct{}

// Build constructs the convert command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	command.Flags().String(domainFlagNameConstant, "", domainFlagDescriptionConstant)
	command.Flags().String(topicFlagNameConstant, "", topicFlagDescriptionConstant)
	command.Flags().String(outputFlagNameConstant, "", outputFlagDescriptionConstant)
	command.Flags().Bool(allFlagNameConstant, false, allFlagDescriptionConstant)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	fmt.Fprintln(command.OutOrStdout(), bannerMessageConstant)
	fmt.Fprintln(command.OutOrStdout(), pendingMessageConstant)
	return nil
}
