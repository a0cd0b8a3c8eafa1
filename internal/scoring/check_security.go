package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	securityShortScoreConstant    = 30
	securityBaseScoreConstant     = 70
	securityReportingBonus        = 15
	securityContactBonusConstant  = 15
	securityMinimumLengthConstant = 50

	securityMissingRecommendationConstant = "Add a SECURITY.md explaining how to report vulnerabilities privately"
	securityShortIssueTemplate            = "%s is too short to be a usable security policy"
	securityUnreadableIssueTemplate       = "%s could not be read"
	securityReportingRecommendation       = "Describe how vulnerabilities are reported and disclosed"
	securityContactRecommendationConstant = "Provide a contact address for security reports"
)

var (
	securityCandidateNames = []string{"SECURITY.md", "SECURITY.markdown", "SECURITY.txt", "SECURITY.rst", "SECURITY"}

	vulnerabilityReportingPattern = regexp.MustCompile(`(?i)vulnerab|\breport|disclos`)
	securityContactPattern        = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}|mailto:|\bcontact|https?://`)
)

// EvaluateSecurityPolicy scores the vulnerability disclosure policy.
func EvaluateSecurityPolicy(repository Repository) CheckResult {
	result := newCheckResult()

	policyName, found := repository.FindFile(securityCandidateNames...)
	if !found {
		result.Optional = true
		result.recommend(securityMissingRecommendationConstant)
		return result
	}

	policy := repository.ReadText(policyName)
	if !policy.Present() {
		result.Optional = true
		result.flag(fmt.Sprintf(securityUnreadableIssueTemplate, policyName))
		result.recommend(securityMissingRecommendationConstant)
		return result
	}
	result.flagTruncation(policy, policyName)

	content := strings.TrimSpace(policy.Content)
	if len(content) < securityMinimumLengthConstant {
		result.award(securityShortScoreConstant)
		result.flag(fmt.Sprintf(securityShortIssueTemplate, policyName))
		result.recommend(securityReportingRecommendation)
		return result
	}

	result.award(securityBaseScoreConstant)
	if vulnerabilityReportingPattern.MatchString(content) {
		result.award(securityReportingBonus)
	} else {
		result.recommend(securityReportingRecommendation)
	}
	if securityContactPattern.MatchString(content) {
		result.award(securityContactBonusConstant)
	} else {
		result.recommend(securityContactRecommendationConstant)
	}

	return result.capped()
}
