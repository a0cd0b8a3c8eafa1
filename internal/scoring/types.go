package scoring

import (
	"fmt"

	"github.com/temirov/repoaudit/internal/probe"
)

const (
	defaultCheckMaximumConstant = 100
	truncatedIssueTemplate      = "%s exceeds the read limit; only its beginning was scored"
)

// Repository is the read-only view of an audited directory handed to every check.
type Repository interface {
	IsFile(relativePath string) bool
	IsDirectory(relativePath string) bool
	FirstFile(relativePaths ...string) (string, bool)
	ListDirectory(relativePath string) []string
	FindFile(candidateNames ...string) (string, bool)
	ReadText(relativePath string) probe.TextFile
	ReadDocument(relativePath string) probe.Document
	PackageManifest() probe.Manifest
}

// Evaluator scores one quality dimension of a repository.
type Evaluator func(repository Repository) CheckResult

// CheckDefinition names a weighted check and its evaluator.
type CheckDefinition struct {
	ID       string
	Name     string
	Weight   int
	Evaluate Evaluator
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Score           int      `json:"score" yaml:"score"`
	Max             int      `json:"max" yaml:"max"`
	Issues          []string `json:"issues" yaml:"issues"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	Optional        bool     `json:"optional" yaml:"optional"`
}

// CheckReport is a CheckResult annotated with its definition and weighted contribution.
type CheckReport struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Weight        int     `json:"weight" yaml:"weight"`
	WeightedScore float64 `json:"weightedScore" yaml:"weightedScore"`
	CheckResult   `yaml:",inline"`
}

// AuditReport aggregates every check run against a directory.
type AuditReport struct {
	Directory       string        `json:"directory" yaml:"directory"`
	Checks          []CheckReport `json:"checks" yaml:"checks"`
	TotalScore      float64       `json:"totalScore" yaml:"totalScore"`
	MaxScore        int           `json:"maxScore" yaml:"maxScore"`
	Percentage      int           `json:"percentage" yaml:"percentage"`
	Grade           Grade         `json:"grade" yaml:"grade"`
	Issues          []string      `json:"issues" yaml:"issues"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
}

func newCheckResult() CheckResult {
	return CheckResult{
		Max:             defaultCheckMaximumConstant,
		Issues:          []string{},
		Recommendations: []string{},
	}
}

func (result *CheckResult) award(points int) {
	result.Score += points
}

func (result *CheckResult) flag(issue string) {
	result.Issues = append(result.Issues, issue)
}

func (result *CheckResult) recommend(recommendation string) {
	result.Recommendations = append(result.Recommendations, recommendation)
}

func (result *CheckResult) flagTruncation(textFile probe.TextFile, fileName string) {
	if textFile.Truncated {
		result.flag(fmt.Sprintf(truncatedIssueTemplate, fileName))
	}
}

func (result CheckResult) capped() CheckResult {
	if result.Score > result.Max {
		result.Score = result.Max
	}
	if result.Score < 0 {
		result.Score = 0
	}
	return result
}
