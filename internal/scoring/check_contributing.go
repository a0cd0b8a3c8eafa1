package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	contributingShortScoreConstant    = 30
	contributingBaseScoreConstant     = 60
	contributingPullRequestBonus      = 15
	contributingConductBonusConstant  = 10
	contributingIssueProcessBonus     = 10
	contributingStyleBonusConstant    = 5
	contributingMinimumLengthConstant = 100

	contributingMissingRecommendationConstant = "Add a CONTRIBUTING.md describing how to propose changes"
	contributingShortIssueTemplate            = "%s is too short to guide contributors"
	contributingShortRecommendationConstant   = "Expand the contributing guide with the pull request process and coding conventions"
	contributingUnreadableIssueTemplate       = "%s could not be read"
	contributingPullRequestRecommendation     = "Describe the pull request workflow in the contributing guide"
)

var (
	contributingCandidateNames = []string{"CONTRIBUTING.md", "CONTRIBUTING.markdown", "CONTRIBUTING.rst", "CONTRIBUTING.txt", "CONTRIBUTING"}

	pullRequestPattern   = regexp.MustCompile(`(?i)pull[\s-]?request|\bPRs?\b|merge request`)
	codeOfConductPattern = regexp.MustCompile(`(?i)code[\s-]of[\s-]conduct`)
	issueProcessPattern  = regexp.MustCompile(`(?i)\bissues?\b|\bbugs?\b|feature request|\bfeatures?\b`)
	styleGuidePattern    = regexp.MustCompile(`(?i)\bstyle\b|\blint|\bformat|convention`)
)

// EvaluateContributing scores the contributor guide.
func EvaluateContributing(repository Repository) CheckResult {
	result := newCheckResult()

	guideName, found := repository.FindFile(contributingCandidateNames...)
	if !found {
		result.Optional = true
		result.recommend(contributingMissingRecommendationConstant)
		return result
	}

	guide := repository.ReadText(guideName)
	if !guide.Present() {
		result.Optional = true
		result.flag(fmt.Sprintf(contributingUnreadableIssueTemplate, guideName))
		result.recommend(contributingMissingRecommendationConstant)
		return result
	}
	result.flagTruncation(guide, guideName)

	content := strings.TrimSpace(guide.Content)
	if len(content) < contributingMinimumLengthConstant {
		result.award(contributingShortScoreConstant)
		result.flag(fmt.Sprintf(contributingShortIssueTemplate, guideName))
		result.recommend(contributingShortRecommendationConstant)
		return result
	}

	result.award(contributingBaseScoreConstant)
	if pullRequestPattern.MatchString(content) {
		result.award(contributingPullRequestBonus)
	} else {
		result.recommend(contributingPullRequestRecommendation)
	}
	if codeOfConductPattern.MatchString(content) {
		result.award(contributingConductBonusConstant)
	}
	if issueProcessPattern.MatchString(content) {
		result.award(contributingIssueProcessBonus)
	}
	if styleGuidePattern.MatchString(content) {
		result.award(contributingStyleBonusConstant)
	}

	return result.capped()
}
