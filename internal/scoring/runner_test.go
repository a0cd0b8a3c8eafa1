package scoring_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/repoaudit/internal/scoring"
)

const weightedScoreToleranceConstant = 0.5

func runDefaultAudit(testInstance *testing.T, fixtures map[string]string) scoring.AuditReport {
	testInstance.Helper()
	runner := scoring.NewRunner(scoring.DefaultRegistry(), buildFileSystem(testInstance, fixtures), zap.NewNop(), 0)
	return runner.Run(testRepositoryDirectoryConstant)
}

func findCheck(testInstance *testing.T, report scoring.AuditReport, checkID string) scoring.CheckReport {
	testInstance.Helper()
	for _, checkReport := range report.Checks {
		if checkReport.ID == checkID {
			return checkReport
		}
	}
	require.FailNow(testInstance, "check not found", checkID)
	return scoring.CheckReport{}
}

func TestRunnerAggregationInvariants(testInstance *testing.T) {
	testCases := []struct {
		name     string
		fixtures map[string]string
	}{
		{name: "empty_directory", fixtures: map[string]string{}},
		{name: "strong_repository", fixtures: strongRepositoryFixtures()},
		{name: "placeholder_manifest", fixtures: map[string]string{"package.json": placeholderManifest}},
		{name: "malformed_manifest", fixtures: map[string]string{"package.json": "{\"name\": "}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			report := runDefaultAudit(subTest, testCase.fixtures)

			require.Equal(subTest, testRepositoryDirectoryConstant, report.Directory)
			require.Len(subTest, report.Checks, 11)
			require.Equal(subTest, 100, report.MaxScore)
			require.GreaterOrEqual(subTest, report.Percentage, 0)
			require.LessOrEqual(subTest, report.Percentage, 100)
			require.Equal(subTest, scoring.GradeFor(report.Percentage), report.Grade)

			weightedSum := 0.0
			issueCount := 0
			recommendationCount := 0
			for _, checkReport := range report.Checks {
				require.GreaterOrEqual(subTest, checkReport.Score, 0)
				require.LessOrEqual(subTest, checkReport.Score, checkReport.Max)
				weightedSum += checkReport.WeightedScore
				issueCount += len(checkReport.Issues)
				recommendationCount += len(checkReport.Recommendations)
			}
			require.LessOrEqual(subTest, math.Abs(weightedSum-report.TotalScore), weightedScoreToleranceConstant)
			require.Len(subTest, report.Issues, issueCount)
			require.Len(subTest, report.Recommendations, recommendationCount)
		})
	}
}

func TestRunnerEmptyDirectoryFails(testInstance *testing.T) {
	report := runDefaultAudit(testInstance, map[string]string{})

	require.Equal(testInstance, scoring.GradeF, report.Grade)
	require.Equal(testInstance, 4, report.Percentage)
	require.NotEmpty(testInstance, report.Issues)
	require.NotEmpty(testInstance, report.Recommendations)

	absenceCheckIDs := []string{
		scoring.CheckIDReadme,
		scoring.CheckIDLicense,
		scoring.CheckIDGitignore,
		scoring.CheckIDContinuous,
		scoring.CheckIDTests,
		scoring.CheckIDLinting,
		scoring.CheckIDPackageMetadata,
	}
	for _, checkID := range absenceCheckIDs {
		require.NotEmpty(testInstance, findCheck(testInstance, report, checkID).Issues, checkID)
	}
}

func TestRunnerStrongRepository(testInstance *testing.T) {
	report := runDefaultAudit(testInstance, strongRepositoryFixtures())

	require.GreaterOrEqual(testInstance, report.Percentage, 80)
	require.Contains(testInstance, []scoring.Grade{scoring.GradeA, scoring.GradeB}, report.Grade)
	require.Equal(testInstance, 100, findCheck(testInstance, report, scoring.CheckIDReadme).Score)
	require.Equal(testInstance, 100, findCheck(testInstance, report, scoring.CheckIDLicense).Score)
	require.Equal(testInstance, 100, findCheck(testInstance, report, scoring.CheckIDContinuous).Score)
	require.Equal(testInstance, 15.0, findCheck(testInstance, report, scoring.CheckIDReadme).WeightedScore)
}

func TestRunnerPlaceholderTestScript(testInstance *testing.T) {
	report := runDefaultAudit(testInstance, map[string]string{"package.json": placeholderManifest})

	testsCheck := findCheck(testInstance, report, scoring.CheckIDTests)
	require.Less(testInstance, testsCheck.Score, 100)
	require.NotEmpty(testInstance, testsCheck.Issues)
	require.Contains(testInstance, testsCheck.Issues[0], "placeholder")
}

func TestRunnerMalformedManifestCompletes(testInstance *testing.T) {
	report := runDefaultAudit(testInstance, map[string]string{"package.json": "{\"name\": "})

	packageCheck := findCheck(testInstance, report, scoring.CheckIDPackageMetadata)
	require.Equal(testInstance, 5, packageCheck.Score)
	require.Len(testInstance, packageCheck.Issues, 1)
	require.Contains(testInstance, packageCheck.Issues[0], "invalid JSON")
	require.Contains(testInstance, packageCheck.Recommendations, "Fix the JSON syntax errors in package.json")
	require.Len(testInstance, report.Checks, 11)
}

func TestRunnerIsIdempotent(testInstance *testing.T) {
	fileSystem := buildFileSystem(testInstance, strongRepositoryFixtures())
	runner := scoring.NewRunner(scoring.DefaultRegistry(), fileSystem, nil, 0)

	firstReport := runner.Run(testRepositoryDirectoryConstant)
	secondReport := runner.Run(testRepositoryDirectoryConstant)
	require.Empty(testInstance, cmp.Diff(firstReport, secondReport))

	firstPayload, firstError := json.Marshal(firstReport)
	require.NoError(testInstance, firstError)
	secondPayload, secondError := json.Marshal(secondReport)
	require.NoError(testInstance, secondError)
	require.Equal(testInstance, string(firstPayload), string(secondPayload))
}

func TestRunnerCapsAndWeighsCustomChecks(testInstance *testing.T) {
	registry := scoring.Registry{
		{ID: "overflow", Name: "Overflow", Weight: 40, Evaluate: func(scoring.Repository) scoring.CheckResult {
			return scoring.CheckResult{Score: 150, Max: 100, Issues: []string{"shared"}, Recommendations: []string{}}
		}},
		{ID: "third", Name: "Third", Weight: 60, Evaluate: func(scoring.Repository) scoring.CheckResult {
			return scoring.CheckResult{Score: 1, Max: 3, Issues: []string{"shared"}, Recommendations: []string{"act"}}
		}},
	}
	runner := scoring.NewRunner(registry, buildFileSystem(testInstance, map[string]string{}), nil, 0)

	report := runner.Run(testRepositoryDirectoryConstant)

	require.Equal(testInstance, 100, report.Checks[0].Score)
	require.Equal(testInstance, 40.0, report.Checks[0].WeightedScore)
	require.Equal(testInstance, 20.0, report.Checks[1].WeightedScore)
	require.InDelta(testInstance, 60.0, report.TotalScore, 1e-9)
	require.Equal(testInstance, 60, report.Percentage)
	require.Equal(testInstance, scoring.GradeD, report.Grade)
	require.Equal(testInstance, []string{"shared", "shared"}, report.Issues)
}

func TestRunnerLogsEveryCheck(testInstance *testing.T) {
	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	runner := scoring.NewRunner(scoring.DefaultRegistry(), buildFileSystem(testInstance, map[string]string{}), zap.New(observedCore), 0)

	report := runner.Run(testRepositoryDirectoryConstant)

	require.Equal(testInstance, 11, observedLogs.FilterMessage("check evaluated").Len())
	completedEntries := observedLogs.FilterMessage("audit completed").All()
	require.Len(testInstance, completedEntries, 1)
	require.Equal(testInstance, string(report.Grade), completedEntries[0].ContextMap()["grade"])
}
