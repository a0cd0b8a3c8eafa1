package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	licenseMetadataOnlyScoreConstant = 60
	licenseTruncatedScoreConstant    = 30
	licenseRecognizedScoreConstant   = 100
	licenseCustomScoreConstant       = 80
	licenseMinimumLengthConstant     = 50

	licenseMissingIssueConstant               = "No LICENSE file found"
	licenseMissingRecommendationConstant      = "Add a LICENSE file so others know how they may use the project"
	licenseMetadataOnlyIssueConstant          = "License is declared in package.json but no LICENSE file exists"
	licenseMetadataOnlyRecommendationConstant = "Add a LICENSE file containing the full license text"
	licenseUnreadableIssueTemplate            = "%s could not be read"
	licenseTruncatedIssueTemplate             = "%s appears to be incomplete"
	licenseTruncatedRecommendationConstant    = "Replace the LICENSE file with the complete license text"
	licenseUnrecognizedRecommendationConstant = "Consider a standard license such as MIT, Apache-2.0, GPL, or BSD"
)

var (
	licenseCandidateNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "LICENCE.md", "LICENCE.txt", "COPYING", "COPYING.md", "COPYING.txt"}

	recognizedLicensePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)MIT License|Permission is hereby granted, free of charge`),
		regexp.MustCompile(`(?i)Apache License[\s,]+Version 2\.0`),
		regexp.MustCompile(`(?i)GNU (Affero |Lesser )?General Public License`),
		regexp.MustCompile(`(?i)BSD[\s-]+\d-Clause|Redistribution and use in source and binary forms`),
	}
)

// EvaluateLicense scores the presence and recognizability of the project license.
func EvaluateLicense(repository Repository) CheckResult {
	result := newCheckResult()

	licenseName, found := repository.FindFile(licenseCandidateNames...)
	if !found {
		if repository.PackageManifest().Truthy("license") {
			result.award(licenseMetadataOnlyScoreConstant)
			result.flag(licenseMetadataOnlyIssueConstant)
			result.recommend(licenseMetadataOnlyRecommendationConstant)
			return result
		}
		result.flag(licenseMissingIssueConstant)
		result.recommend(licenseMissingRecommendationConstant)
		return result
	}

	license := repository.ReadText(licenseName)
	if !license.Present() {
		result.flag(fmt.Sprintf(licenseUnreadableIssueTemplate, licenseName))
		result.recommend(licenseMissingRecommendationConstant)
		return result
	}
	result.flagTruncation(license, licenseName)

	content := strings.TrimSpace(license.Content)
	if len(content) < licenseMinimumLengthConstant {
		result.award(licenseTruncatedScoreConstant)
		result.flag(fmt.Sprintf(licenseTruncatedIssueTemplate, licenseName))
		result.recommend(licenseTruncatedRecommendationConstant)
		return result
	}

	for _, pattern := range recognizedLicensePatterns {
		if pattern.MatchString(content) {
			result.award(licenseRecognizedScoreConstant)
			return result
		}
	}

	result.award(licenseCustomScoreConstant)
	result.recommend(licenseUnrecognizedRecommendationConstant)
	return result
}
