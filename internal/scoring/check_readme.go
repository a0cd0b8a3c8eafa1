package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	readmeBaseScoreConstant      = 20
	readmeShortWordLimitConstant = 50
	readmeBriefWordLimitConstant = 150
	readmeFullWordLimitConstant  = 500
	readmeBriefBonusConstant     = 10
	readmeModerateBonusConstant  = 20
	readmeFullBonusConstant      = 25
	readmeTitleBonusConstant     = 10
	readmeInstallBonusConstant   = 15
	readmeUsageBonusConstant     = 15
	readmeBadgeBonusConstant     = 5
	readmeCodeBonusConstant      = 10
	readmeLinkBonusConstant      = 5

	readmeMissingIssueConstant          = "No README file found"
	readmeMissingRecommendationConstant = "Add a README.md that explains what the project does, how to install it, and how to use it"
	readmeUnreadableIssueTemplate       = "%s could not be read"
	readmeShortIssueTemplate            = "README is very short (%d words)"
	readmeShortRecommendationConstant   = "Expand the README with a project description, installation steps, and usage examples"
	readmeTitleRecommendationConstant   = "Start the README with a top-level title heading"
	readmeInstallRecommendationConstant = "Add an Installation section to the README"
	readmeUsageRecommendationConstant   = "Add a Usage section with examples to the README"
	readmeCodeRecommendationConstant    = "Add code examples in fenced code blocks to the README"
	readmeBadgeRecommendationConstant   = "Add status badges (build, coverage, version) to the README"
)

var (
	readmeCandidateNames = []string{"README.md", "README.markdown", "README.rst", "README.txt", "README"}

	installHeadingPattern = regexp.MustCompile(`(?i)(install|set\s?up|getting started|quick\s?start)`)
	usageHeadingPattern   = regexp.MustCompile(`(?i)(usage|examples?|how to use|tutorial)`)
	badgeTargetPattern    = regexp.MustCompile(`(?i)(shields\.io|badge|badgen\.net)`)
	htmlBadgePattern      = regexp.MustCompile(`(?i)<img[^>]+(shields\.io|badge|badgen\.net)`)
	htmlLinkPattern       = regexp.MustCompile(`(?i)<a\s[^>]*href=`)
)

// readmeOutline lists the Markdown features that the README check rewards.
type readmeOutline struct {
	headings  []string
	hasTitle  bool
	hasCode   bool
	hasLink   bool
	hasBadge  bool
	wordCount int
}

// EvaluateReadme scores README presence, length, and structure.
func EvaluateReadme(repository Repository) CheckResult {
	result := newCheckResult()

	readmeName, found := repository.FindFile(readmeCandidateNames...)
	if !found {
		result.flag(readmeMissingIssueConstant)
		result.recommend(readmeMissingRecommendationConstant)
		return result
	}

	readme := repository.ReadText(readmeName)
	if !readme.Present() {
		result.flag(fmt.Sprintf(readmeUnreadableIssueTemplate, readmeName))
		result.recommend(readmeMissingRecommendationConstant)
		return result
	}
	result.flagTruncation(readme, readmeName)

	outline := outlineMarkdown(readme.Content)

	result.award(readmeBaseScoreConstant)
	switch {
	case outline.wordCount < readmeShortWordLimitConstant:
		result.flag(fmt.Sprintf(readmeShortIssueTemplate, outline.wordCount))
		result.recommend(readmeShortRecommendationConstant)
	case outline.wordCount < readmeBriefWordLimitConstant:
		result.award(readmeBriefBonusConstant)
	case outline.wordCount < readmeFullWordLimitConstant:
		result.award(readmeModerateBonusConstant)
	default:
		result.award(readmeFullBonusConstant)
	}

	if outline.hasTitle {
		result.award(readmeTitleBonusConstant)
	} else {
		result.recommend(readmeTitleRecommendationConstant)
	}

	if outline.hasHeading(installHeadingPattern) {
		result.award(readmeInstallBonusConstant)
	} else {
		result.recommend(readmeInstallRecommendationConstant)
	}

	if outline.hasHeading(usageHeadingPattern) {
		result.award(readmeUsageBonusConstant)
	} else {
		result.recommend(readmeUsageRecommendationConstant)
	}

	if outline.hasBadge {
		result.award(readmeBadgeBonusConstant)
	} else {
		result.recommend(readmeBadgeRecommendationConstant)
	}

	if outline.hasCode {
		result.award(readmeCodeBonusConstant)
	} else {
		result.recommend(readmeCodeRecommendationConstant)
	}

	if outline.hasLink {
		result.award(readmeLinkBonusConstant)
	}

	return result.capped()
}

func (outline readmeOutline) hasHeading(pattern *regexp.Regexp) bool {
	for _, heading := range outline.headings {
		if pattern.MatchString(heading) {
			return true
		}
	}
	return false
}

func outlineMarkdown(content string) readmeOutline {
	source := []byte(content)
	outline := readmeOutline{wordCount: len(strings.Fields(content))}

	document := goldmark.New().Parser().Parse(text.NewReader(source))
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typedNode := node.(type) {
		case *ast.Heading:
			outline.headings = append(outline.headings, inlineText(typedNode, source))
			if typedNode.Level == 1 {
				outline.hasTitle = true
			}
		case *ast.FencedCodeBlock:
			outline.hasCode = true
		case *ast.Link:
			outline.hasLink = true
		case *ast.AutoLink:
			outline.hasLink = true
		case *ast.Image:
			outline.hasLink = true
			_, insideLink := typedNode.Parent().(*ast.Link)
			if insideLink || badgeTargetPattern.Match(typedNode.Destination) {
				outline.hasBadge = true
			}
		}
		return ast.WalkContinue, nil
	})

	if htmlBadgePattern.MatchString(content) {
		outline.hasBadge = true
		outline.hasLink = true
	}
	if htmlLinkPattern.MatchString(content) {
		outline.hasLink = true
	}

	return outline
}

func inlineText(node ast.Node, source []byte) string {
	var builder strings.Builder
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if textNode, isText := child.(*ast.Text); isText {
			builder.Write(textNode.Segment.Value(source))
			if textNode.SoftLineBreak() {
				builder.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return builder.String()
}
