package scoring

import "strings"

const (
	testsDirectoryBonusConstant = 40
	testsFrameworkBonusConstant = 30
	testsScriptBonusConstant    = 30
	testScriptNameConstant      = "test"
	placeholderTestMarker       = "no test specified"

	testsMissingIssueConstant          = "No test setup detected"
	testsMissingRecommendationConstant = "Add automated tests and a test framework configuration"
	testsPlaceholderIssueConstant      = "package.json test script is the npm placeholder"
	testsScriptMissingIssueConstant    = "No test script defined in package.json"
	testsScriptRecommendationConstant  = "Define a real \"test\" script in package.json so tests run with npm test"
)

var (
	testDirectoryNames = []string{"test", "tests", "__tests__", "spec", "specs", "e2e", "testdata"}

	testFrameworkConfigurationNames = []string{
		"jest.config.js", "jest.config.ts", "jest.config.mjs", "jest.config.cjs", "jest.config.json",
		"vitest.config.js", "vitest.config.ts", "vitest.config.mjs", "vitest.config.mts",
		".mocharc.js", ".mocharc.cjs", ".mocharc.json", ".mocharc.yml", ".mocharc.yaml",
		"karma.conf.js", "jasmine.json",
		"playwright.config.js", "playwright.config.ts",
		"cypress.config.js", "cypress.config.ts", "cypress.json",
		"pytest.ini", "tox.ini", "conftest.py", "phpunit.xml", "phpunit.xml.dist", ".rspec",
	}
)

// EvaluateTests scores test directories, test framework configuration, and the declared test script.
func EvaluateTests(repository Repository) CheckResult {
	result := newCheckResult()

	for _, directoryName := range testDirectoryNames {
		if repository.IsDirectory(directoryName) {
			result.award(testsDirectoryBonusConstant)
			break
		}
	}

	if _, found := repository.FirstFile(testFrameworkConfigurationNames...); found {
		result.award(testsFrameworkBonusConstant)
	}

	manifest := repository.PackageManifest()
	if manifest.Parsed() {
		testCommand, declared := manifest.Script(testScriptNameConstant)
		switch {
		case !declared || len(strings.TrimSpace(testCommand)) == 0:
			result.flag(testsScriptMissingIssueConstant)
			result.recommend(testsScriptRecommendationConstant)
		case strings.Contains(strings.ToLower(testCommand), placeholderTestMarker):
			result.flag(testsPlaceholderIssueConstant)
			result.recommend(testsScriptRecommendationConstant)
		default:
			result.award(testsScriptBonusConstant)
		}
	}

	if result.Score == 0 {
		result.flag(testsMissingIssueConstant)
		result.recommend(testsMissingRecommendationConstant)
	}

	return result.capped()
}
