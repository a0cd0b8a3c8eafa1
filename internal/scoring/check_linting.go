package scoring

import "strings"

const (
	lintConfigurationBonusConstant = 70
	lintCombinedBonusConstant      = 30
	lintLinterOnlyBonusConstant    = 15
	lintScriptBonusConstant        = 15
	lintDependencyBonusConstant    = 10

	lintMissingIssueConstant            = "No linting or formatting configuration found"
	lintMissingRecommendationConstant   = "Add a linter configuration (for example ESLint or golangci-lint) and a formatter"
	lintFormatterRecommendationConstant = "Add a code formatter configuration (for example Prettier) alongside the linter"
	lintLinterRecommendationConstant    = "Add a linter configuration alongside the formatter"
	lintConfigRecommendationConstant    = "Commit the linter configuration file so every contributor uses the same rules"
)

var (
	linterConfigurationNames = []string{
		".eslintrc", ".eslintrc.js", ".eslintrc.cjs", ".eslintrc.json", ".eslintrc.yml", ".eslintrc.yaml",
		"eslint.config.js", "eslint.config.mjs", "eslint.config.cjs", "eslint.config.ts",
		"biome.json", "biome.jsonc", "tslint.json", ".stylelintrc", ".stylelintrc.json",
		".golangci.yml", ".golangci.yaml", ".golangci.toml", ".golangci.json",
		".flake8", ".pylintrc", "ruff.toml", ".ruff.toml", ".rubocop.yml", "clippy.toml", ".markdownlint.json",
	}

	formatterConfigurationNames = []string{
		".prettierrc", ".prettierrc.json", ".prettierrc.js", ".prettierrc.cjs", ".prettierrc.yml", ".prettierrc.yaml", ".prettierrc.toml",
		"prettier.config.js", "prettier.config.cjs", "prettier.config.mjs",
		"biome.json", "biome.jsonc", "dprint.json", ".dprint.json",
		"rustfmt.toml", ".rustfmt.toml", ".clang-format", ".stylua.toml", ".gofumpt.toml",
	}

	lintScriptMarkers = []string{"lint", "format", "prettier", "eslint", "biome"}

	lintDependencyNames = []string{"eslint", "prettier", "@biomejs/biome", "tslint", "stylelint", "standard", "xo"}

	lintDependencyPrefixes = []string{"eslint-", "@typescript-eslint/", "prettier-plugin-"}
)

// EvaluateLinting scores linter and formatter configuration plus lint scripts and dependencies.
func EvaluateLinting(repository Repository) CheckResult {
	result := newCheckResult()

	_, linterFound := repository.FirstFile(linterConfigurationNames...)
	_, formatterFound := repository.FirstFile(formatterConfigurationNames...)

	switch {
	case linterFound && formatterFound:
		result.award(lintConfigurationBonusConstant + lintCombinedBonusConstant)
	case linterFound:
		result.award(lintConfigurationBonusConstant + lintLinterOnlyBonusConstant)
		result.recommend(lintFormatterRecommendationConstant)
	case formatterFound:
		result.award(lintConfigurationBonusConstant)
		result.recommend(lintLinterRecommendationConstant)
	}

	manifest := repository.PackageManifest()
	if hasLintScript(manifest.Scripts()) {
		result.award(lintScriptBonusConstant)
	}
	if hasLintDependency(manifest.DependencyNames()) {
		result.award(lintDependencyBonusConstant)
	}

	switch {
	case result.Score == 0:
		result.flag(lintMissingIssueConstant)
		result.recommend(lintMissingRecommendationConstant)
	case !linterFound && !formatterFound:
		result.recommend(lintConfigRecommendationConstant)
	}

	return result.capped()
}

func hasLintScript(scripts map[string]string) bool {
	for scriptName, command := range scripts {
		loweredName := strings.ToLower(scriptName)
		loweredCommand := strings.ToLower(command)
		for _, marker := range lintScriptMarkers {
			if strings.Contains(loweredName, marker) || strings.Contains(loweredCommand, marker) {
				return true
			}
		}
	}
	return false
}

func hasLintDependency(dependencyNames []string) bool {
	for _, dependencyName := range dependencyNames {
		for _, lintDependency := range lintDependencyNames {
			if dependencyName == lintDependency {
				return true
			}
		}
		for _, prefix := range lintDependencyPrefixes {
			if strings.HasPrefix(dependencyName, prefix) {
				return true
			}
		}
	}
	return false
}
