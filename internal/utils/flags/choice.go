// Package flags holds command-line argument helpers shared by commands.
package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderTemplate = "`<%s>`"
	choiceSeparatorLiteral    = "|"
)

// ChoiceUsage renders a usage string listing the accepted values with the default one upper-cased, for example
// "`<TEXT|json|yaml>` Output format". Blank and repeated choices are skipped.
func ChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	displayedChoices := make([]string, 0, len(choices))
	seenChoices := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, seen := seenChoices[normalizedChoice]; seen || len(trimmedChoice) == 0 {
			continue
		}
		seenChoices[normalizedChoice] = struct{}{}
		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		displayedChoices = append(displayedChoices, trimmedChoice)
	}

	placeholder := fmt.Sprintf(choicePlaceholderTemplate, strings.Join(displayedChoices, choiceSeparatorLiteral))
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return placeholder
	}
	return placeholder + " " + trimmedDescription
}
