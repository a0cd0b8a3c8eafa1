package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	tildeSymbolConstant        = "~"
	currentDirectoryConstant   = "."
	forwardSlashSymbolConstant = "/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// WorkingDirectoryProvider resolves the process working directory.
type WorkingDirectoryProvider func() (string, error)

// TargetResolver turns a user-supplied directory argument into an absolute, cleaned path.
type TargetResolver struct {
	homeDirectoryProvider    HomeDirectoryProvider
	workingDirectoryProvider WorkingDirectoryProvider
}

// NewTargetResolver constructs a TargetResolver backed by the operating system.
func NewTargetResolver() TargetResolver {
	return NewTargetResolverWithProviders(os.UserHomeDir, os.Getwd)
}

// NewTargetResolverWithProviders constructs a TargetResolver with custom lookups. Nil providers fall back to the
// operating system.
func NewTargetResolverWithProviders(homeDirectoryProvider HomeDirectoryProvider, workingDirectoryProvider WorkingDirectoryProvider) TargetResolver {
	if homeDirectoryProvider == nil {
		homeDirectoryProvider = os.UserHomeDir
	}
	if workingDirectoryProvider == nil {
		workingDirectoryProvider = os.Getwd
	}
	return TargetResolver{
		homeDirectoryProvider:    homeDirectoryProvider,
		workingDirectoryProvider: workingDirectoryProvider,
	}
}

// ExpandHome replaces a leading "~" or "~/" with the home directory. Other paths, including "~user", are returned
// unchanged, as is the input when the home directory cannot be resolved.
func (resolver TargetResolver) ExpandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}
	remainder := strings.TrimPrefix(candidatePath, tildeSymbolConstant)
	if len(remainder) > 0 && !strings.HasPrefix(remainder, forwardSlashSymbolConstant) && !strings.HasPrefix(remainder, string(os.PathSeparator)) {
		return candidatePath
	}

	homeDirectory, homeError := resolver.homeDirectoryProvider()
	if homeError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}
	return filepath.Join(homeDirectory, remainder)
}

// Resolve expands the home directory and anchors relative paths at the working directory. An empty argument
// resolves to the working directory.
func (resolver TargetResolver) Resolve(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		trimmedPath = currentDirectoryConstant
	}

	expandedPath := resolver.ExpandHome(trimmedPath)
	if filepath.IsAbs(expandedPath) {
		return filepath.Clean(expandedPath), nil
	}

	workingDirectory, workingDirectoryError := resolver.workingDirectoryProvider()
	if workingDirectoryError != nil {
		return "", workingDirectoryError
	}
	return filepath.Join(workingDirectory, expandedPath), nil
}
