// Package cli constructs the repoaudit command-line interface. It wires the
// audit command as the Cobra root, layers configuration from embedded defaults,
// an optional file, and the environment, and builds the structured logger.
package cli
