package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/repoaudit/internal/report"
	"github.com/temirov/repoaudit/internal/scoring"
)

const (
	testDirectoryConstant         = "/workspace/repository"
	testDuplicateIssueConstant    = "No LICENSE file found"
	testSecondIssueConstant       = "No CI/CD configuration found"
	testThirdIssueConstant        = "No test setup detected"
	testFourthIssueConstant       = ".gitignore is empty"
	testRecommendationConstant    = "Add a LICENSE file"
	testOptionalCheckNameConstant = "Security Policy"
)

func sampleAuditReport() scoring.AuditReport {
	return scoring.AuditReport{
		Directory: testDirectoryConstant,
		Checks: []scoring.CheckReport{
			{
				ID:            scoring.CheckIDReadme,
				Name:          "README",
				Weight:        15,
				WeightedScore: 13.5,
				CheckResult:   scoring.CheckResult{Score: 90, Max: 100, Issues: []string{}, Recommendations: []string{}},
			},
			{
				ID:            scoring.CheckIDLicense,
				Name:          "License",
				Weight:        10,
				WeightedScore: 0,
				CheckResult: scoring.CheckResult{
					Score:           0,
					Max:             100,
					Issues:          []string{testDuplicateIssueConstant, testDuplicateIssueConstant, testSecondIssueConstant, testThirdIssueConstant, testFourthIssueConstant},
					Recommendations: []string{testRecommendationConstant},
				},
			},
			{
				ID:            scoring.CheckIDSecurity,
				Name:          testOptionalCheckNameConstant,
				Weight:        7,
				WeightedScore: 0,
				CheckResult:   scoring.CheckResult{Score: 0, Max: 100, Issues: []string{}, Recommendations: []string{}, Optional: true},
			},
		},
		TotalScore:      13.5,
		MaxScore:        32,
		Percentage:      42,
		Grade:           scoring.GradeF,
		Issues:          []string{testDuplicateIssueConstant, testDuplicateIssueConstant, testSecondIssueConstant, testThirdIssueConstant, testFourthIssueConstant},
		Recommendations: []string{testRecommendationConstant},
	}
}

func TestParseFormat(testInstance *testing.T) {
	testCases := []struct {
		rawFormat      string
		expectedFormat report.Format
		expectError    bool
	}{
		{rawFormat: "text", expectedFormat: report.FormatText},
		{rawFormat: " JSON ", expectedFormat: report.FormatJSON},
		{rawFormat: "yaml", expectedFormat: report.FormatYAML},
		{rawFormat: "xml", expectError: true},
	}

	for _, testCase := range testCases {
		format, parseError := report.ParseFormat(testCase.rawFormat)
		if testCase.expectError {
			require.Error(testInstance, parseError)
			continue
		}
		require.NoError(testInstance, parseError)
		require.Equal(testInstance, testCase.expectedFormat, format)
	}
}

func TestNewRendererRejectsUnknownFormat(testInstance *testing.T) {
	renderer, rendererError := report.NewRenderer(report.Format("xml"), report.Options{})
	require.Error(testInstance, rendererError)
	require.Nil(testInstance, renderer)
}

func TestTextRendererSummarizes(testInstance *testing.T) {
	renderer, rendererError := report.NewRenderer(report.FormatText, report.Options{SummaryLimit: 2})
	require.NoError(testInstance, rendererError)

	var outputBuffer bytes.Buffer
	require.NoError(testInstance, renderer.Render(&outputBuffer, sampleAuditReport()))
	output := outputBuffer.String()

	require.Contains(testInstance, output, "Repository audit: "+testDirectoryConstant)
	require.Contains(testInstance, output, "Grade: F  Score: 42% (13.5/32)")
	require.Contains(testInstance, output, strings.Repeat("█", 18)+strings.Repeat("░", 2))
	require.Contains(testInstance, output, strings.Repeat("░", 20))
	require.Contains(testInstance, output, "(optional)")
	require.Contains(testInstance, output, "Top issues:")
	require.Equal(testInstance, 1, strings.Count(output, testDuplicateIssueConstant))
	require.NotContains(testInstance, output, testThirdIssueConstant)
	require.Contains(testInstance, output, "and 2 more")
	require.NotContains(testInstance, output, "\x1b[")
}

func TestTextRendererVerboseListsEverything(testInstance *testing.T) {
	renderer := report.NewTextRenderer(report.Options{Verbose: true, SummaryLimit: 2})

	var outputBuffer bytes.Buffer
	require.NoError(testInstance, renderer.Render(&outputBuffer, sampleAuditReport()))
	output := outputBuffer.String()

	require.Contains(testInstance, output, "License issues:")
	require.Contains(testInstance, output, testFourthIssueConstant)
	require.Equal(testInstance, 4, strings.Count(output, testDuplicateIssueConstant))
	require.NotContains(testInstance, output, "more (use --verbose")
}

func TestTextRendererReportsCleanRepository(testInstance *testing.T) {
	cleanReport := scoring.AuditReport{Directory: testDirectoryConstant, Grade: scoring.GradeA, Percentage: 100, Issues: []string{}, Recommendations: []string{}}

	var outputBuffer bytes.Buffer
	require.NoError(testInstance, report.NewTextRenderer(report.Options{}).Render(&outputBuffer, cleanReport))
	require.Contains(testInstance, outputBuffer.String(), "No issues found.")
}

func TestJSONRendererKeepsEveryEntry(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	require.NoError(testInstance, report.JSONRenderer{}.Render(&outputBuffer, sampleAuditReport()))

	var decoded map[string]any
	require.NoError(testInstance, json.Unmarshal(outputBuffer.Bytes(), &decoded))
	require.Equal(testInstance, "F", decoded["grade"])
	require.Equal(testInstance, float64(42), decoded["percentage"])
	require.Len(testInstance, decoded["issues"], 5)

	checks, isList := decoded["checks"].([]any)
	require.True(testInstance, isList)
	require.Len(testInstance, checks, 3)
	firstCheck := checks[0].(map[string]any)
	require.Equal(testInstance, 13.5, firstCheck["weightedScore"])
	require.Equal(testInstance, float64(90), firstCheck["score"])
	require.Equal(testInstance, false, firstCheck["optional"])
}

func TestYAMLRendererInlinesCheckResults(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	require.NoError(testInstance, report.YAMLRenderer{}.Render(&outputBuffer, sampleAuditReport()))

	var decoded struct {
		Grade  string `yaml:"grade"`
		Issues []string
		Checks []struct {
			ID            string  `yaml:"id"`
			Score         int     `yaml:"score"`
			WeightedScore float64 `yaml:"weightedScore"`
			Optional      bool    `yaml:"optional"`
		} `yaml:"checks"`
	}
	require.NoError(testInstance, yaml.Unmarshal(outputBuffer.Bytes(), &decoded))
	require.Equal(testInstance, "F", decoded.Grade)
	require.Len(testInstance, decoded.Issues, 5)
	require.Len(testInstance, decoded.Checks, 3)
	require.Equal(testInstance, 90, decoded.Checks[0].Score)
	require.Equal(testInstance, 13.5, decoded.Checks[0].WeightedScore)
	require.True(testInstance, decoded.Checks[2].Optional)
}
