package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/repoaudit/internal/scoring"
)

const (
	// DefaultSummaryLimit caps the issues and recommendations listed by the text renderer outside verbose mode.
	DefaultSummaryLimit = 5

	unsupportedFormatTemplateConstant = "unsupported output format: %s"
)

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SupportedFormats lists every Format in display order.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(rawFormat string) (Format, error) {
	normalizedFormat := Format(strings.ToLower(strings.TrimSpace(rawFormat)))
	for _, supportedFormat := range SupportedFormats() {
		if normalizedFormat == supportedFormat {
			return supportedFormat, nil
		}
	}
	return "", fmt.Errorf(unsupportedFormatTemplateConstant, rawFormat)
}

// Options tunes the text renderer.
type Options struct {
	Verbose      bool
	Color        bool
	SummaryLimit int
}

// Renderer writes an audit report to an output stream.
type Renderer interface {
	Render(outputWriter io.Writer, auditReport scoring.AuditReport) error
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format, options Options) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(options), nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
}
