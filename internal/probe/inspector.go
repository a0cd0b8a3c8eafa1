package probe

import (
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const (
	// DefaultMaxFileBytes bounds how much of a single file is read.
	DefaultMaxFileBytes int64 = 1 << 20

	currentDirectoryConstant   = "."
	replacementCharacterString = "�"
)

// TextState describes the outcome of reading a text artifact.
type TextState int

// Text states reported by ReadText.
const (
	TextAbsent TextState = iota
	TextUnreadable
	TextPresent
)

// TextFile captures the content of a text artifact along with its read state.
type TextFile struct {
	Name      string
	State     TextState
	Content   string
	Truncated bool
}

// Present reports whether the file was found and read.
func (textFile TextFile) Present() bool {
	return textFile.State == TextPresent
}

// Inspector answers filesystem questions about one audited directory.
type Inspector struct {
	fileSystem   afero.Fs
	directory    string
	maxFileBytes int64
}

// NewInspector constructs an Inspector for directory. A nil filesystem falls back to the OS filesystem and a
// non-positive byte cap falls back to DefaultMaxFileBytes.
func NewInspector(fileSystem afero.Fs, directory string, maxFileBytes int64) *Inspector {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultMaxFileBytes
	}
	return &Inspector{
		fileSystem:   fileSystem,
		directory:    directory,
		maxFileBytes: maxFileBytes,
	}
}

// IsFile reports whether relativePath names a regular file.
func (inspector *Inspector) IsFile(relativePath string) bool {
	fileInfo, statError := inspector.fileSystem.Stat(inspector.resolve(relativePath))
	if statError != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

// IsDirectory reports whether relativePath names a directory.
func (inspector *Inspector) IsDirectory(relativePath string) bool {
	directoryExists, existsError := afero.DirExists(inspector.fileSystem, inspector.resolve(relativePath))
	if existsError != nil {
		return false
	}
	return directoryExists
}

// FirstFile returns the first relative path in priority order that names a regular file.
func (inspector *Inspector) FirstFile(relativePaths ...string) (string, bool) {
	for _, relativePath := range relativePaths {
		if inspector.IsFile(relativePath) {
			return relativePath, true
		}
	}
	return "", false
}

// ListDirectory returns the entry names of relativePath sorted alphabetically, or nil when it cannot be listed.
func (inspector *Inspector) ListDirectory(relativePath string) []string {
	entries, readError := afero.ReadDir(inspector.fileSystem, inspector.resolve(relativePath))
	if readError != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

// FindFile resolves the first candidate name that matches a regular file in the audited directory, ignoring case.
// Candidates are tried in priority order; when several case variants of one candidate exist, the alphabetically
// first entry wins.
func (inspector *Inspector) FindFile(candidateNames ...string) (string, bool) {
	entries, readError := afero.ReadDir(inspector.fileSystem, inspector.directory)
	if readError != nil {
		return "", false
	}
	for _, candidateName := range candidateNames {
		for _, entry := range entries {
			if !entry.Mode().IsRegular() {
				continue
			}
			if strings.EqualFold(entry.Name(), candidateName) {
				return entry.Name(), true
			}
		}
	}
	return "", false
}

// ReadText reads relativePath as UTF-8 text, capped at the inspector's byte limit. Invalid byte sequences are
// replaced rather than rejected.
func (inspector *Inspector) ReadText(relativePath string) TextFile {
	textFile := TextFile{Name: relativePath}

	resolvedPath := inspector.resolve(relativePath)
	fileInfo, statError := inspector.fileSystem.Stat(resolvedPath)
	if statError != nil {
		textFile.State = TextAbsent
		return textFile
	}
	if fileInfo.IsDir() {
		textFile.State = TextUnreadable
		return textFile
	}

	file, openError := inspector.fileSystem.Open(resolvedPath)
	if openError != nil {
		textFile.State = TextUnreadable
		return textFile
	}
	defer file.Close()

	contentBytes, readError := io.ReadAll(io.LimitReader(file, inspector.maxFileBytes))
	if readError != nil {
		textFile.State = TextUnreadable
		return textFile
	}

	content := string(contentBytes)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, replacementCharacterString)
	}

	textFile.State = TextPresent
	textFile.Content = content
	textFile.Truncated = fileInfo.Size() > inspector.maxFileBytes
	return textFile
}

func (inspector *Inspector) resolve(relativePath string) string {
	if len(relativePath) == 0 || relativePath == currentDirectoryConstant {
		return inspector.directory
	}
	return filepath.Join(inspector.directory, relativePath)
}
