package scoring

import (
	"fmt"

	"github.com/temirov/repoaudit/internal/probe"
)

const (
	typeScriptConfigurationNameConstant    = "tsconfig.json"
	javaScriptConfigurationNameConstant    = "jsconfig.json"
	compilerOptionsFieldConstant           = "compilerOptions"
	strictOptionConstant                   = "strict"
	typeScriptDependencyConstant           = "typescript"
	typeScriptUnconfiguredScoreConstant    = 20
	typeScriptLooseScoreConstant           = 60
	typeScriptNotApplicableScoreConstant   = 50
	typeScriptBaseScoreConstant            = 50
	typeScriptStrictBonusConstant          = 25
	typeScriptOptionBonusConstant          = 5
	typeScriptUnconfiguredIssueConstant    = "TypeScript is a dependency but tsconfig.json is missing"
	typeScriptUnconfiguredRecommendation   = "Add a tsconfig.json with \"strict\": true"
	typeScriptLooseRecommendationConstant  = "Migrate from jsconfig.json to TypeScript with strict mode enabled"
	typeScriptInvalidIssueTemplate         = "%s contains invalid JSON"
	typeScriptInvalidRecommendation        = "Fix the syntax errors in tsconfig.json"
	typeScriptStrictIssueConstant          = "TypeScript strict mode is not enabled"
	typeScriptStrictRecommendationConstant = "Enable \"strict\": true in tsconfig.json compilerOptions"
)

// typeScriptQualityOption is a compiler option rewarded when enabled. Options implied by strict mode count as enabled
// unless explicitly disabled.
type typeScriptQualityOption struct {
	name          string
	impliedStrict bool
}

var typeScriptQualityOptions = []typeScriptQualityOption{
	{name: "noImplicitAny", impliedStrict: true},
	{name: "strictNullChecks", impliedStrict: true},
	{name: "noUnusedLocals"},
	{name: "noUnusedParameters"},
	{name: "esModuleInterop"},
}

// EvaluateTypeScript scores the strictness of the TypeScript compiler configuration.
func EvaluateTypeScript(repository Repository) CheckResult {
	result := newCheckResult()

	configuration := repository.ReadDocument(typeScriptConfigurationNameConstant)
	if configuration.State == probe.DocumentAbsent {
		switch {
		case repository.PackageManifest().HasDependency(typeScriptDependencyConstant):
			result.award(typeScriptUnconfiguredScoreConstant)
			result.flag(typeScriptUnconfiguredIssueConstant)
			result.recommend(typeScriptUnconfiguredRecommendation)
		case repository.IsFile(javaScriptConfigurationNameConstant):
			result.award(typeScriptLooseScoreConstant)
			result.recommend(typeScriptLooseRecommendationConstant)
		default:
			result.award(typeScriptNotApplicableScoreConstant)
			result.Optional = true
		}
		return result
	}

	result.award(typeScriptBaseScoreConstant)
	if !configuration.Parsed() {
		result.flag(fmt.Sprintf(typeScriptInvalidIssueTemplate, typeScriptConfigurationNameConstant))
		result.recommend(typeScriptInvalidRecommendation)
		return result
	}

	strictEnabled, _ := configuration.Bool(compilerOptionsFieldConstant, strictOptionConstant)
	if strictEnabled {
		result.award(typeScriptStrictBonusConstant)
	} else {
		result.flag(typeScriptStrictIssueConstant)
		result.recommend(typeScriptStrictRecommendationConstant)
	}

	for _, option := range typeScriptQualityOptions {
		enabled, explicitlySet := configuration.Bool(compilerOptionsFieldConstant, option.name)
		if !explicitlySet && option.impliedStrict {
			enabled = strictEnabled
		}
		if enabled {
			result.award(typeScriptOptionBonusConstant)
		}
	}

	return result.capped()
}
