package audit

import "github.com/temirov/repoaudit/internal/report"

// CommandOptions captures the resolved parameters of a single audit run.
type CommandOptions struct {
	Directory    string
	Format       report.Format
	Verbose      bool
	Color        bool
	SummaryLimit int
	MaxFileBytes int64
}
