package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/temirov/repoaudit/internal/scoring"
)

const (
	barWidthConstant            = 20
	barFilledSymbolConstant     = "█"
	barEmptySymbolConstant      = "░"
	bulletSymbolConstant        = "•"
	healthyPercentageConstant   = 80
	attentionPercentageConstant = 60

	titleTemplateConstant         = "Repository audit: %s\n"
	gradeTemplateConstant         = "Grade: %s  Score: %d%% (%.1f/%d)\n\n"
	checkLineTemplateConstant     = "  %-*s %s %3d%%  %4.1f/%-2d%s\n"
	optionalSuffixConstant        = "  (optional)"
	checkDetailHeaderTemplate     = "\n%s\n"
	checkIssueTemplateConstant    = "    %s %s\n"
	summaryHeaderTemplateConstant = "\n%s\n"
	summaryLineTemplateConstant   = "  %s %s\n"
	summaryOverflowTemplate       = "  ... and %d more (use --verbose to see all)\n"
	issuesHeaderConstant          = "Top issues:"
	allIssuesHeaderConstant       = "Issues:"
	recommendationsHeaderConstant = "Top recommendations:"
	allRecommendationsHeader      = "Recommendations:"
	checkIssuesLabelTemplate      = "%s issues:"
	checkRecommendationsLabel     = "%s recommendations:"
	noIssuesMessageConstant       = "\nNo issues found.\n"
)

// TextRenderer prints a human-readable report. Outside verbose mode the issue and recommendation summaries are
// deduplicated and capped at the summary limit.
type TextRenderer struct {
	options     Options
	headerColor *color.Color
	goodColor   *color.Color
	warnColor   *color.Color
	badColor    *color.Color
	mutedColor  *color.Color
}

// NewTextRenderer constructs a TextRenderer. Colors follow terminal detection unless options disable them.
func NewTextRenderer(options Options) *TextRenderer {
	if options.SummaryLimit <= 0 {
		options.SummaryLimit = DefaultSummaryLimit
	}
	renderer := &TextRenderer{
		options:     options,
		headerColor: color.New(color.FgCyan, color.Bold),
		goodColor:   color.New(color.FgGreen, color.Bold),
		warnColor:   color.New(color.FgYellow, color.Bold),
		badColor:    color.New(color.FgRed, color.Bold),
		mutedColor:  color.New(color.Faint),
	}
	if !options.Color {
		for _, palette := range renderer.palette() {
			palette.DisableColor()
		}
	}
	return renderer
}

// Render implements Renderer.
func (renderer *TextRenderer) Render(outputWriter io.Writer, auditReport scoring.AuditReport) error {
	var builder strings.Builder

	builder.WriteString(renderer.headerColor.Sprintf(titleTemplateConstant, auditReport.Directory))
	gradeLabel := renderer.colorFor(auditReport.Percentage).Sprint(string(auditReport.Grade))
	builder.WriteString(fmt.Sprintf(gradeTemplateConstant, gradeLabel, auditReport.Percentage, auditReport.TotalScore, auditReport.MaxScore))

	nameWidth := 0
	for _, checkReport := range auditReport.Checks {
		if len(checkReport.Name) > nameWidth {
			nameWidth = len(checkReport.Name)
		}
	}

	for _, checkReport := range auditReport.Checks {
		checkPercentage := checkPercentage(checkReport)
		optionalSuffix := ""
		if checkReport.Optional {
			optionalSuffix = renderer.mutedColor.Sprint(optionalSuffixConstant)
		}
		bar := renderer.colorFor(checkPercentage).Sprint(progressBar(checkReport.Score, checkReport.Max))
		builder.WriteString(fmt.Sprintf(checkLineTemplateConstant, nameWidth, checkReport.Name, bar, checkPercentage, checkReport.WeightedScore, checkReport.Weight, optionalSuffix))
	}

	if renderer.options.Verbose {
		renderer.writeCheckDetails(&builder, auditReport.Checks)
	}

	if len(auditReport.Issues) == 0 && len(auditReport.Recommendations) == 0 {
		builder.WriteString(noIssuesMessageConstant)
	} else {
		issuesHeader, recommendationsHeader := issuesHeaderConstant, recommendationsHeaderConstant
		if renderer.options.Verbose {
			issuesHeader, recommendationsHeader = allIssuesHeaderConstant, allRecommendationsHeader
		}
		renderer.writeSummary(&builder, issuesHeader, renderer.badColor, auditReport.Issues)
		renderer.writeSummary(&builder, recommendationsHeader, renderer.warnColor, auditReport.Recommendations)
	}

	_, writeError := io.WriteString(outputWriter, builder.String())
	return writeError
}

func (renderer *TextRenderer) writeCheckDetails(builder *strings.Builder, checks []scoring.CheckReport) {
	for _, checkReport := range checks {
		issueColor := renderer.badColor
		if checkReport.Optional {
			issueColor = renderer.mutedColor
		}
		if len(checkReport.Issues) > 0 {
			builder.WriteString(fmt.Sprintf(checkDetailHeaderTemplate, issueColor.Sprintf(checkIssuesLabelTemplate, checkReport.Name)))
			for _, issue := range checkReport.Issues {
				builder.WriteString(fmt.Sprintf(checkIssueTemplateConstant, bulletSymbolConstant, issue))
			}
		}
		if len(checkReport.Recommendations) > 0 {
			builder.WriteString(fmt.Sprintf(checkDetailHeaderTemplate, renderer.mutedColor.Sprintf(checkRecommendationsLabel, checkReport.Name)))
			for _, recommendation := range checkReport.Recommendations {
				builder.WriteString(fmt.Sprintf(checkIssueTemplateConstant, bulletSymbolConstant, recommendation))
			}
		}
	}
}

func (renderer *TextRenderer) writeSummary(builder *strings.Builder, header string, headerColor *color.Color, entries []string) {
	if len(entries) == 0 {
		return
	}
	builder.WriteString(fmt.Sprintf(summaryHeaderTemplateConstant, headerColor.Sprint(header)))

	visibleEntries := entries
	hiddenCount := 0
	if !renderer.options.Verbose {
		visibleEntries = deduplicate(entries)
		if len(visibleEntries) > renderer.options.SummaryLimit {
			hiddenCount = len(visibleEntries) - renderer.options.SummaryLimit
			visibleEntries = visibleEntries[:renderer.options.SummaryLimit]
		}
	}

	for _, entry := range visibleEntries {
		builder.WriteString(fmt.Sprintf(summaryLineTemplateConstant, bulletSymbolConstant, entry))
	}
	if hiddenCount > 0 {
		builder.WriteString(renderer.mutedColor.Sprintf(summaryOverflowTemplate, hiddenCount))
	}
}

func (renderer *TextRenderer) colorFor(percentage int) *color.Color {
	switch {
	case percentage >= healthyPercentageConstant:
		return renderer.goodColor
	case percentage >= attentionPercentageConstant:
		return renderer.warnColor
	default:
		return renderer.badColor
	}
}

func (renderer *TextRenderer) palette() []*color.Color {
	return []*color.Color{renderer.headerColor, renderer.goodColor, renderer.warnColor, renderer.badColor, renderer.mutedColor}
}

func checkPercentage(checkReport scoring.CheckReport) int {
	if checkReport.Max <= 0 {
		return 0
	}
	return int(math.Round(float64(checkReport.Score) / float64(checkReport.Max) * 100))
}

func progressBar(score int, maximum int) string {
	filledCells := 0
	if maximum > 0 {
		filledCells = int(math.Round(float64(score) / float64(maximum) * barWidthConstant))
	}
	if filledCells < 0 {
		filledCells = 0
	}
	if filledCells > barWidthConstant {
		filledCells = barWidthConstant
	}
	return strings.Repeat(barFilledSymbolConstant, filledCells) + strings.Repeat(barEmptySymbolConstant, barWidthConstant-filledCells)
}

// deduplicate keeps the first occurrence of every entry in order.
func deduplicate(entries []string) []string {
	seenEntries := make(map[string]struct{}, len(entries))
	uniqueEntries := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, seen := seenEntries[entry]; seen {
			continue
		}
		seenEntries[entry] = struct{}{}
		uniqueEntries = append(uniqueEntries, entry)
	}
	return uniqueEntries
}
