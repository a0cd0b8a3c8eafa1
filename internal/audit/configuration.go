package audit

import (
	"strings"

	"github.com/temirov/repoaudit/internal/probe"
	"github.com/temirov/repoaudit/internal/report"
)

const (
	configurationOutputFormatKeyConstant = "output_format"
	configurationVerboseKeyConstant      = "verbose"
	configurationSummaryLimitKeyConstant = "summary_limit"
	configurationMaxFileBytesKeyConstant = "max_file_bytes"
	configurationColorKeyConstant        = "color"
	configurationKeySeparatorConstant    = "."
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	OutputFormat string `mapstructure:"output_format"`
	Verbose      bool   `mapstructure:"verbose"`
	SummaryLimit int    `mapstructure:"summary_limit"`
	MaxFileBytes int64  `mapstructure:"max_file_bytes"`
	Color        bool   `mapstructure:"color"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		OutputFormat: string(report.FormatText),
		Verbose:      false,
		SummaryLimit: report.DefaultSummaryLimit,
		MaxFileBytes: probe.DefaultMaxFileBytes,
		Color:        true,
	}
}

// DefaultConfigurationValues flattens the default configuration into viper keys nested under keyPrefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	qualify := func(key string) string {
		if len(keyPrefix) == 0 {
			return key
		}
		return keyPrefix + configurationKeySeparatorConstant + key
	}
	return map[string]any{
		qualify(configurationOutputFormatKeyConstant): defaults.OutputFormat,
		qualify(configurationVerboseKeyConstant):      defaults.Verbose,
		qualify(configurationSummaryLimitKeyConstant): defaults.SummaryLimit,
		qualify(configurationMaxFileBytesKeyConstant): defaults.MaxFileBytes,
		qualify(configurationColorKeyConstant):        defaults.Color,
	}
}

// Sanitize normalizes the output format and replaces non-positive limits with defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.OutputFormat = strings.ToLower(strings.TrimSpace(configuration.OutputFormat))
	if len(sanitized.OutputFormat) == 0 {
		sanitized.OutputFormat = defaults.OutputFormat
	}
	if sanitized.SummaryLimit <= 0 {
		sanitized.SummaryLimit = defaults.SummaryLimit
	}
	if sanitized.MaxFileBytes <= 0 {
		sanitized.MaxFileBytes = defaults.MaxFileBytes
	}

	return sanitized
}
