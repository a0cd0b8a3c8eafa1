package audit

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoaudit/internal/report"
	"github.com/temirov/repoaudit/internal/scoring"
	"github.com/temirov/repoaudit/internal/utils/flags"
)

const (
	commandUseConstant         = "repoaudit [directory]"
	commandShortDescription    = "Score a repository against common open-source quality practices"
	commandLongDescription     = "repoaudit inspects a directory for README, license, CI, tests, linting, TypeScript, package metadata, contributing, security, and editor configuration, then prints a weighted score and a letter grade. The directory defaults to the current working directory. A failing grade exits with status 1."
	flagJSONName               = "json"
	flagJSONDescription        = "Print the full report as JSON"
	flagYAMLName               = "yaml"
	flagYAMLDescription        = "Print the full report as YAML"
	flagFormatName             = "format"
	flagFormatDescription      = "Report format"
	flagVerboseName            = "verbose"
	flagVerboseDescription     = "List every issue and recommendation per check"
	flagNoColorName            = "no-color"
	flagNoColorDescription     = "Disable colored text output"
	invalidFormatErrorTemplate = "invalid --%s value: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            afero.Fs
	Registry              scoring.Registry
}

// Build constructs the cobra command that audits a single directory.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescription,
		Long:          commandLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          builder.run,
	}
	command.FParseErrWhitelist.UnknownFlags = true

	formatChoices := make([]string, 0, len(report.SupportedFormats()))
	for _, supportedFormat := range report.SupportedFormats() {
		formatChoices = append(formatChoices, string(supportedFormat))
	}

	command.Flags().Bool(flagJSONName, false, flagJSONDescription)
	command.Flags().Bool(flagYAMLName, false, flagYAMLDescription)
	command.Flags().String(flagFormatName, string(report.FormatText), flags.ChoiceUsage(string(report.FormatText), formatChoices, flagFormatDescription))
	command.Flags().Bool(flagVerboseName, false, flagVerboseDescription)
	command.Flags().Bool(flagNoColorName, false, flagNoColorDescription)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	service := NewService(builder.FileSystem, builder.Registry, builder.resolveLogger(), command.OutOrStdout())
	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	rawFormat := configuration.OutputFormat
	if command.Flags().Changed(flagFormatName) {
		rawFormat, _ = command.Flags().GetString(flagFormatName)
	}
	if yamlRequested, _ := command.Flags().GetBool(flagYAMLName); yamlRequested {
		rawFormat = string(report.FormatYAML)
	}
	if jsonRequested, _ := command.Flags().GetBool(flagJSONName); jsonRequested {
		rawFormat = string(report.FormatJSON)
	}

	format, formatError := report.ParseFormat(rawFormat)
	if formatError != nil {
		return CommandOptions{}, fmt.Errorf(invalidFormatErrorTemplate, flagFormatName, formatError)
	}

	verbose := configuration.Verbose
	if command.Flags().Changed(flagVerboseName) {
		verbose, _ = command.Flags().GetBool(flagVerboseName)
	}

	colorEnabled := configuration.Color
	if noColor, _ := command.Flags().GetBool(flagNoColorName); noColor {
		colorEnabled = false
	}

	directory := ""
	if len(arguments) > 0 {
		directory = arguments[len(arguments)-1]
	}

	return CommandOptions{
		Directory:    directory,
		Format:       format,
		Verbose:      verbose,
		Color:        colorEnabled,
		SummaryLimit: configuration.SummaryLimit,
		MaxFileBytes: configuration.MaxFileBytes,
	}, nil
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

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}
