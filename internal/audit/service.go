package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/repoaudit/internal/report"
	"github.com/temirov/repoaudit/internal/scoring"
	pathutils "github.com/temirov/repoaudit/internal/utils/path"
)

const (
	targetErrorTemplateConstant   = "%w: %s"
	resolveDirectoryErrorTemplate = "unable to resolve audit directory: %w"
	inspectDirectoryErrorTemplate = "unable to inspect %s: %w"
	renderReportErrorTemplate     = "unable to render audit report: %w"
	targetValidationFailedMessage = "audit target rejected"
	logFieldDirectoryConstant     = "directory"
	logFieldFormatConstant        = "format"
	auditStartedMessageConstant   = "auditing repository"
)

// Service validates an audit target, scores it, and renders the report.
type Service struct {
	fileSystem   afero.Fs
	registry     scoring.Registry
	logger       *zap.Logger
	resolver     pathutils.TargetResolver
	outputWriter io.Writer
}

// NewService constructs a Service. Nil collaborators fall back to the OS filesystem, the default registry, a no-op
// logger, and a discarding writer.
func NewService(fileSystem afero.Fs, registry scoring.Registry, logger *zap.Logger, outputWriter io.Writer) *Service {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if len(registry) == 0 {
		registry = scoring.DefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		fileSystem:   fileSystem,
		registry:     registry,
		logger:       logger,
		resolver:     pathutils.NewTargetResolver(),
		outputWriter: outputWriter,
	}
}

// Run audits options.Directory and writes the rendered report. A failing grade returns the report together with
// ErrFailingGrade; target errors return before anything is rendered.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (scoring.AuditReport, error) {
	directory, resolveError := service.resolver.Resolve(options.Directory)
	if resolveError != nil {
		return scoring.AuditReport{}, fmt.Errorf(resolveDirectoryErrorTemplate, resolveError)
	}

	if validationError := service.validateDirectory(directory); validationError != nil {
		service.logger.Warn(targetValidationFailedMessage, zap.String(logFieldDirectoryConstant, directory), zap.Error(validationError))
		return scoring.AuditReport{}, validationError
	}

	renderer, rendererError := report.NewRenderer(options.Format, report.Options{
		Verbose:      options.Verbose,
		Color:        options.Color,
		SummaryLimit: options.SummaryLimit,
	})
	if rendererError != nil {
		return scoring.AuditReport{}, rendererError
	}

	if executionContext != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return scoring.AuditReport{}, contextError
		}
	}

	service.logger.Debug(auditStartedMessageConstant, zap.String(logFieldDirectoryConstant, directory), zap.String(logFieldFormatConstant, string(options.Format)))

	auditReport := scoring.NewRunner(service.registry, service.fileSystem, service.logger, options.MaxFileBytes).Run(directory)
	if renderError := renderer.Render(service.outputWriter, auditReport); renderError != nil {
		return auditReport, fmt.Errorf(renderReportErrorTemplate, renderError)
	}

	if auditReport.Grade.Failing() {
		return auditReport, ErrFailingGrade
	}
	return auditReport, nil
}

func (service *Service) validateDirectory(directory string) error {
	directoryInfo, statError := service.fileSystem.Stat(directory)
	if statError != nil {
		if errors.Is(statError, os.ErrNotExist) {
			return fmt.Errorf(targetErrorTemplateConstant, ErrDirectoryNotFound, directory)
		}
		return fmt.Errorf(inspectDirectoryErrorTemplate, directory, statError)
	}
	if !directoryInfo.IsDir() {
		return fmt.Errorf(targetErrorTemplateConstant, ErrNotDirectory, directory)
	}
	return nil
}
