package scoring

import (
	"path"
	"strings"
)

const (
	continuousRecognizedScoreConstant = 100
	continuousAlternateScoreConstant  = 90
	continuousLegacyScoreConstant     = 80

	githubWorkflowsDirectoryConstant = ".github/workflows"
	gitlabConfigurationConstant      = ".gitlab-ci.yml"
	circleConfigurationConstant      = ".circleci/config.yml"
	travisConfigurationConstant      = ".travis.yml"
	jenkinsConfigurationConstant     = "Jenkinsfile"
	azureConfigurationConstant       = "azure-pipelines.yml"
	bitbucketConfigurationConstant   = "bitbucket-pipelines.yml"
	workflowYAMLExtensionConstant    = ".yml"
	workflowYAMLLongExtension        = ".yaml"

	continuousMissingIssueConstant          = "No CI/CD configuration found"
	continuousMissingRecommendationConstant = "Add a CI workflow (for example GitHub Actions in .github/workflows) that builds and tests every change"
	continuousEmptyWorkflowsIssueConstant   = ".github/workflows exists but contains no workflow files"
	continuousLegacyIssueConstant           = "Travis CI configuration detected; Travis is no longer free for open source projects"
	continuousLegacyRecommendationConstant  = "Consider migrating from Travis CI to GitHub Actions"
)

// EvaluateContinuousIntegration scores the presence of a recognized CI configuration. Platforms are probed in a fixed
// priority order; only the GitHub workflows directory is listed, every other platform is a fixed file path.
func EvaluateContinuousIntegration(repository Repository) CheckResult {
	result := newCheckResult()

	workflowsDirectoryPresent := repository.IsDirectory(githubWorkflowsDirectoryConstant)
	if workflowsDirectoryPresent && countWorkflowFiles(repository) > 0 {
		result.award(continuousRecognizedScoreConstant)
		return result
	}

	if _, found := repository.FirstFile(gitlabConfigurationConstant, circleConfigurationConstant); found {
		result.award(continuousRecognizedScoreConstant)
		return result
	}

	if repository.IsFile(travisConfigurationConstant) {
		result.award(continuousLegacyScoreConstant)
		result.flag(continuousLegacyIssueConstant)
		result.recommend(continuousLegacyRecommendationConstant)
		return result
	}

	if _, found := repository.FirstFile(jenkinsConfigurationConstant, azureConfigurationConstant, bitbucketConfigurationConstant); found {
		result.award(continuousAlternateScoreConstant)
		return result
	}

	if workflowsDirectoryPresent {
		result.flag(continuousEmptyWorkflowsIssueConstant)
	}
	result.flag(continuousMissingIssueConstant)
	result.recommend(continuousMissingRecommendationConstant)
	return result
}

func countWorkflowFiles(repository Repository) int {
	workflowCount := 0
	for _, entryName := range repository.ListDirectory(githubWorkflowsDirectoryConstant) {
		extension := strings.ToLower(path.Ext(entryName))
		if extension != workflowYAMLExtensionConstant && extension != workflowYAMLLongExtension {
			continue
		}
		if !repository.IsFile(path.Join(githubWorkflowsDirectoryConstant, entryName)) {
			continue
		}
		workflowCount++
	}
	return workflowCount
}
