// Package scoring implements the repository quality checks and their aggregation.
//
// Each check is a pure Evaluator over a Repository view and returns a
// CheckResult scored out of 100. Runner executes a Registry in order, rescales
// every result by its weight, and maps the overall percentage to a Grade.
// Missing or malformed artifacts lower a score; they never abort an audit.
package scoring
