package scoring

import (
	"strings"

	"gopkg.in/ini.v1"
)

const (
	editorConfigFileNameConstant    = ".editorconfig"
	editorConfigEmptyScoreConstant  = 30
	editorConfigBaseScoreConstant   = 70
	editorConfigRootBonusConstant   = 10
	editorConfigIndentBonusConstant = 10
	editorConfigEndOfLineBonus      = 5
	editorConfigCharsetBonus        = 5

	editorConfigRootKeyConstant      = "root"
	editorConfigIndentKeyConstant    = "indent_style"
	editorConfigEndOfLineKeyConstant = "end_of_line"
	editorConfigCharsetKeyConstant   = "charset"
	editorConfigTrueValueConstant    = "true"
	editorConfigCommentMarkers       = "#;"

	editorConfigMissingRecommendationConstant = "Add an .editorconfig so editors share indentation and line-ending settings"
	editorConfigEmptyIssueConstant            = ".editorconfig is empty"
	editorConfigUnreadableIssueConstant       = ".editorconfig could not be read"
	editorConfigInvalidIssueConstant          = ".editorconfig could not be parsed"
	editorConfigRootRecommendationConstant    = "Declare root = true at the top of .editorconfig"
	editorConfigIndentRecommendationConstant  = "Set indent_style in .editorconfig"
)

// EvaluateEditorConfig scores the shared editor configuration.
func EvaluateEditorConfig(repository Repository) CheckResult {
	result := newCheckResult()

	if !repository.IsFile(editorConfigFileNameConstant) {
		result.Optional = true
		result.recommend(editorConfigMissingRecommendationConstant)
		return result
	}

	editorConfig := repository.ReadText(editorConfigFileNameConstant)
	if !editorConfig.Present() {
		result.Optional = true
		result.flag(editorConfigUnreadableIssueConstant)
		result.recommend(editorConfigMissingRecommendationConstant)
		return result
	}
	result.flagTruncation(editorConfig, editorConfigFileNameConstant)

	if len(strings.TrimSpace(editorConfig.Content)) == 0 {
		result.award(editorConfigEmptyScoreConstant)
		result.flag(editorConfigEmptyIssueConstant)
		return result
	}

	result.award(editorConfigBaseScoreConstant)

	parsedConfig, parseError := ini.LoadSources(ini.LoadOptions{
		Insensitive:              true,
		SkipUnrecognizableLines:  true,
		AllowBooleanKeys:         true,
		SpaceBeforeInlineComment: true,
	}, []byte(editorConfig.Content))
	if parseError != nil {
		result.flag(editorConfigInvalidIssueConstant)
		return result
	}

	rootValue := parsedConfig.Section(ini.DefaultSection).Key(editorConfigRootKeyConstant).String()
	if strings.EqualFold(stripInlineComment(rootValue), editorConfigTrueValueConstant) {
		result.award(editorConfigRootBonusConstant)
	} else {
		result.recommend(editorConfigRootRecommendationConstant)
	}

	if anySectionDeclares(parsedConfig, editorConfigIndentKeyConstant) {
		result.award(editorConfigIndentBonusConstant)
	} else {
		result.recommend(editorConfigIndentRecommendationConstant)
	}
	if anySectionDeclares(parsedConfig, editorConfigEndOfLineKeyConstant) {
		result.award(editorConfigEndOfLineBonus)
	}
	if anySectionDeclares(parsedConfig, editorConfigCharsetKeyConstant) {
		result.award(editorConfigCharsetBonus)
	}

	return result.capped()
}

func anySectionDeclares(parsedConfig *ini.File, keyName string) bool {
	for _, section := range parsedConfig.Sections() {
		if section.HasKey(keyName) {
			return true
		}
	}
	return false
}

// stripInlineComment drops a trailing "# ..." or "; ..." from an editorconfig value.
func stripInlineComment(value string) string {
	if commentIndex := strings.IndexAny(value, editorConfigCommentMarkers); commentIndex >= 0 {
		value = value[:commentIndex]
	}
	return strings.TrimSpace(value)
}
