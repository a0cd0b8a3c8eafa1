package scoring

import (
	"math"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/repoaudit/internal/probe"
)

const (
	checkEvaluatedMessageConstant = "check evaluated"
	auditCompletedMessageConstant = "audit completed"
	logFieldDirectoryConstant     = "directory"
	logFieldCheckIDConstant       = "check_id"
	logFieldScoreConstant         = "score"
	logFieldMaxConstant           = "max"
	logFieldWeightedScoreConstant = "weighted_score"
	logFieldIssueCountConstant    = "issue_count"
	logFieldPercentageConstant    = "percentage"
	logFieldGradeConstant         = "grade"
)

// Runner executes a registry of checks against a directory and aggregates the results.
type Runner struct {
	registry     Registry
	fileSystem   afero.Fs
	logger       *zap.Logger
	maxFileBytes int64
}

// NewRunner constructs a Runner. A nil filesystem reads the OS filesystem and a nil logger discards output.
func NewRunner(registry Registry, fileSystem afero.Fs, logger *zap.Logger, maxFileBytes int64) *Runner {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		registry:     registry,
		fileSystem:   fileSystem,
		logger:       logger,
		maxFileBytes: maxFileBytes,
	}
}

// Run evaluates every registered check in order. The directory must already be validated by the caller.
func (runner *Runner) Run(directory string) AuditReport {
	repository := probe.NewInspector(runner.fileSystem, directory, runner.maxFileBytes)

	report := AuditReport{
		Directory:       directory,
		Checks:          make([]CheckReport, 0, len(runner.registry)),
		MaxScore:        runner.registry.TotalWeight(),
		Issues:          []string{},
		Recommendations: []string{},
	}

	for _, definition := range runner.registry {
		result := definition.Evaluate(repository).capped()

		contribution := 0.0
		if result.Max > 0 {
			contribution = float64(result.Score) / float64(result.Max) * float64(definition.Weight)
		}

		checkReport := CheckReport{
			ID:            definition.ID,
			Name:          definition.Name,
			Weight:        definition.Weight,
			WeightedScore: roundToTenth(contribution),
			CheckResult:   result,
		}
		report.Checks = append(report.Checks, checkReport)

		report.TotalScore += contribution
		report.Issues = append(report.Issues, result.Issues...)
		report.Recommendations = append(report.Recommendations, result.Recommendations...)

		runner.logger.Debug(
			checkEvaluatedMessageConstant,
			zap.String(logFieldCheckIDConstant, definition.ID),
			zap.Int(logFieldScoreConstant, result.Score),
			zap.Int(logFieldMaxConstant, result.Max),
			zap.Float64(logFieldWeightedScoreConstant, checkReport.WeightedScore),
			zap.Int(logFieldIssueCountConstant, len(result.Issues)),
		)
	}

	if report.MaxScore > 0 {
		report.Percentage = int(math.Round(report.TotalScore / float64(report.MaxScore) * 100))
	}
	report.Grade = GradeFor(report.Percentage)

	runner.logger.Info(
		auditCompletedMessageConstant,
		zap.String(logFieldDirectoryConstant, directory),
		zap.Int(logFieldPercentageConstant, report.Percentage),
		zap.String(logFieldGradeConstant, string(report.Grade)),
	)

	return report
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
