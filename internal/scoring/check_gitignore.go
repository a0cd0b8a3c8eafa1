package scoring

import (
	"regexp"
	"strings"
)

const (
	gitignoreFileNameConstant          = ".gitignore"
	gitignoreEmptyScoreConstant        = 20
	gitignoreSparseScoreConstant       = 40
	gitignoreSparseEntryLimitConstant  = 3
	gitignoreBaseScoreConstant         = 70
	gitignoreDependencyBonusConstant   = 10
	gitignoreBuildOutputBonusConstant  = 5
	gitignoreEnvironmentBonusConstant  = 10
	gitignoreEditorBonusConstant       = 5
	gitignoreCommentPrefixConstant     = "#"
	gitignorePathSeparatorsConstant    = "/"
	gitignoreRecursivePrefixConstant   = "**/"
	gitignoreMissingIssueConstant      = "No .gitignore file found"
	gitignoreMissingRecommendation     = "Add a .gitignore that excludes dependencies, build output, and local secrets"
	gitignoreEmptyIssueConstant        = ".gitignore is empty"
	gitignoreSparseIssueConstant       = ".gitignore has very few entries"
	gitignoreSparseRecommendation      = "Extend .gitignore with dependency directories, build output, and editor files"
	gitignoreEnvironmentRecommendation = "Ignore .env files in .gitignore to avoid committing secrets"
)

var (
	gitignoreDependencyPattern  = regexp.MustCompile(`^(node_modules|vendor|bower_components|jspm_packages|\.venv|venv|env|__pycache__|\.bundle|target|\.gradle|packages)$`)
	gitignoreBuildOutputPattern = regexp.MustCompile(`^(build|dist|out|bin|\.next|\.nuxt|\.output)$`)
	gitignoreEnvironmentPattern = regexp.MustCompile(`^\*?\.env(\..*|\*)?$`)
	gitignoreEditorPattern      = regexp.MustCompile(`^(\.idea|\.vscode|\.vs|\*\.swp|\*\.swo|\.DS_Store|\*\.sublime-\w+)$`)
)

// EvaluateGitignore scores the coverage of ignore rules.
func EvaluateGitignore(repository Repository) CheckResult {
	result := newCheckResult()

	gitignore := repository.ReadText(gitignoreFileNameConstant)
	if !gitignore.Present() {
		result.flag(gitignoreMissingIssueConstant)
		result.recommend(gitignoreMissingRecommendation)
		return result
	}
	result.flagTruncation(gitignore, gitignoreFileNameConstant)

	if len(strings.TrimSpace(gitignore.Content)) == 0 {
		result.award(gitignoreEmptyScoreConstant)
		result.flag(gitignoreEmptyIssueConstant)
		result.recommend(gitignoreMissingRecommendation)
		return result
	}

	patterns := ignorePatterns(gitignore.Content)
	if len(patterns) < gitignoreSparseEntryLimitConstant {
		result.award(gitignoreSparseScoreConstant)
		result.flag(gitignoreSparseIssueConstant)
		result.recommend(gitignoreSparseRecommendation)
		return result
	}

	result.award(gitignoreBaseScoreConstant)
	if anyPatternMatches(patterns, gitignoreDependencyPattern) {
		result.award(gitignoreDependencyBonusConstant)
	}
	if anyPatternMatches(patterns, gitignoreBuildOutputPattern) {
		result.award(gitignoreBuildOutputBonusConstant)
	}
	if anyPatternMatches(patterns, gitignoreEnvironmentPattern) {
		result.award(gitignoreEnvironmentBonusConstant)
	} else {
		result.recommend(gitignoreEnvironmentRecommendation)
	}
	if anyPatternMatches(patterns, gitignoreEditorPattern) {
		result.award(gitignoreEditorBonusConstant)
	}

	return result.capped()
}

// ignorePatterns returns the non-blank, non-comment lines normalized to bare names. Negated lines keep their
// leading "!" so they never satisfy a matcher.
func ignorePatterns(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, gitignoreCommentPrefixConstant) {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, gitignoreRecursivePrefixConstant)
		trimmed = strings.Trim(trimmed, gitignorePathSeparatorsConstant)
		if len(trimmed) == 0 {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns
}

func anyPatternMatches(patterns []string, matcher *regexp.Regexp) bool {
	for _, pattern := range patterns {
		if matcher.MatchString(pattern) {
			return true
		}
	}
	return false
}
