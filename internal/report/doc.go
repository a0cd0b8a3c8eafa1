// Package report renders audit reports for terminals and machines.
//
// TextRenderer prints a colored summary with per-check bars, while JSONRenderer and YAMLRenderer emit the complete
// report without truncation or deduplication.
package report
