package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/repoaudit/cmd/cli"
	"github.com/temirov/repoaudit/internal/audit"
)

const (
	exitErrorTemplateConstant = "Error: %v\n"
	failureExitCodeConstant   = 1
)

// main executes the repoaudit command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}
	if !errors.Is(executionError, audit.ErrFailingGrade) {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	}
	os.Exit(failureExitCodeConstant)
}
