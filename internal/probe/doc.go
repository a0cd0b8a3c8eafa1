// Package probe reads repository artifacts for the scoring checks.
//
// Inspector wraps an afero filesystem rooted at a single audited directory and
// exposes lookups that never fail: missing, unreadable, and malformed files are
// reported as sentinel states (TextAbsent, DocumentInvalid, ...) so that
// checks can branch on them instead of handling errors.
package probe
