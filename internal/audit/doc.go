// Package audit wires the repository quality audit into the command line.
//
// CommandBuilder assembles the Cobra command that accepts a target directory and output flags. Service validates the
// target, runs the scoring registry against it, and renders the resulting report.
package audit
