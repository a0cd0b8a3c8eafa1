package audit

import "errors"

var (
	// ErrFailingGrade reports that the audit completed and the repository earned an F.
	ErrFailingGrade = errors.New("repository audit failed with grade F")
	// ErrDirectoryNotFound reports that the audit target does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrNotDirectory reports that the audit target is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
