package scoring

import (
	"strings"

	"github.com/temirov/repoaudit/internal/probe"
)

const (
	packageInvalidScoreConstant     = 5
	packageAlternateScoreConstant   = 70
	packageBaseScoreConstant        = 20
	packageFieldBonusConstant       = 5
	packageEnginesBonusConstant     = 10
	packageScriptBonusConstant      = 5
	packageScriptBonusCapConstant   = 15
	packageEntryPointBonusConstant  = 5
	packageLicenseBonusConstant     = 10
	packageHomepageBonusConstant    = 10
	packageDescriptionMinimumLength = 10

	packageMissingIssueConstant              = "No package manifest found"
	packageMissingRecommendationConstant     = "Add a package manifest (package.json, go.mod, pyproject.toml, Cargo.toml, ...) describing the project"
	packageInvalidIssueConstant              = "package.json contains invalid JSON syntax"
	packageInvalidRecommendationConstant     = "Fix the JSON syntax errors in package.json"
	packageNameIssueConstant                 = "package.json is missing a name"
	packageVersionIssueConstant              = "package.json is missing a version"
	packageDescriptionRecommendationConstant = "Add a meaningful description to package.json"
	packageRepositoryRecommendationConstant  = "Add a repository field to package.json"
	packageKeywordsRecommendationConstant    = "Add keywords to package.json to improve discoverability"
	packageAuthorRecommendationConstant      = "Add an author field to package.json"
	packageEnginesRecommendationConstant     = "Declare supported runtime versions in package.json engines"
	packageEntryPointRecommendationConstant  = "Declare files, main, or exports in package.json to control what is published"
	packageLicenseIssueConstant              = "package.json does not declare a license"
	packageLicenseRecommendationConstant     = "Add a license field to package.json"
)

var (
	alternateManifestNames = []string{
		"go.mod", "Cargo.toml", "pyproject.toml", "setup.py", "setup.cfg", "pom.xml",
		"build.gradle", "build.gradle.kts", "Gemfile", "composer.json", "mix.exs", "deno.json", "Package.swift",
	}

	rewardedScriptMarkers = [][]string{
		{"test"},
		{"build", "compile"},
		{"lint", "format"},
	}

	entryPointFields = []string{"files", "main", "exports", "module", "bin"}
)

// EvaluatePackageMetadata scores the completeness of package.json, falling back to other ecosystem manifests.
func EvaluatePackageMetadata(repository Repository) CheckResult {
	result := newCheckResult()

	manifest := repository.PackageManifest()
	switch manifest.State {
	case probe.DocumentAbsent:
		if _, found := repository.FirstFile(alternateManifestNames...); found {
			result.award(packageAlternateScoreConstant)
			result.Optional = true
			return result
		}
		result.flag(packageMissingIssueConstant)
		result.recommend(packageMissingRecommendationConstant)
		return result
	case probe.DocumentInvalid:
		result.award(packageInvalidScoreConstant)
		result.flag(packageInvalidIssueConstant)
		result.recommend(packageInvalidRecommendationConstant)
		return result
	}

	result.award(packageBaseScoreConstant)

	if manifest.Truthy("name") {
		result.award(packageFieldBonusConstant)
	} else {
		result.flag(packageNameIssueConstant)
	}

	if manifest.Truthy("version") {
		result.award(packageFieldBonusConstant)
	} else {
		result.flag(packageVersionIssueConstant)
	}

	if len(strings.TrimSpace(manifest.Text("description"))) > packageDescriptionMinimumLength {
		result.award(packageFieldBonusConstant)
	} else {
		result.recommend(packageDescriptionRecommendationConstant)
	}

	if manifest.Truthy("repository") {
		result.award(packageFieldBonusConstant)
	} else {
		result.recommend(packageRepositoryRecommendationConstant)
	}

	if len(manifest.Keywords()) > 0 {
		result.award(packageFieldBonusConstant)
	} else {
		result.recommend(packageKeywordsRecommendationConstant)
	}

	if manifest.Truthy("author") {
		result.award(packageFieldBonusConstant)
	} else {
		result.recommend(packageAuthorRecommendationConstant)
	}

	if len(manifest.Object("engines")) > 0 {
		result.award(packageEnginesBonusConstant)
	} else {
		result.recommend(packageEnginesRecommendationConstant)
	}

	result.award(scriptBonus(manifest.Scripts()))

	if hasEntryPoint(manifest) {
		result.award(packageEntryPointBonusConstant)
	} else {
		result.recommend(packageEntryPointRecommendationConstant)
	}

	if manifest.Truthy("license") {
		result.award(packageLicenseBonusConstant)
	} else {
		result.flag(packageLicenseIssueConstant)
		result.recommend(packageLicenseRecommendationConstant)
	}

	if manifest.Truthy("homepage") || manifest.Truthy("bugs") {
		result.award(packageHomepageBonusConstant)
	}

	return result.capped()
}

func scriptBonus(scripts map[string]string) int {
	bonus := 0
	for _, markers := range rewardedScriptMarkers {
		if scriptDeclared(scripts, markers) {
			bonus += packageScriptBonusConstant
		}
	}
	if bonus > packageScriptBonusCapConstant {
		return packageScriptBonusCapConstant
	}
	return bonus
}

func scriptDeclared(scripts map[string]string, markers []string) bool {
	for scriptName, command := range scripts {
		if strings.Contains(strings.ToLower(command), placeholderTestMarker) {
			continue
		}
		loweredName := strings.ToLower(scriptName)
		for _, marker := range markers {
			if strings.Contains(loweredName, marker) {
				return true
			}
		}
	}
	return false
}

func hasEntryPoint(manifest probe.Manifest) bool {
	for _, field := range entryPointFields {
		if manifest.Truthy(field) {
			return true
		}
	}
	return false
}
