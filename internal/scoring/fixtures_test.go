package scoring_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/temirov/repoaudit/internal/probe"
)

const (
	testRepositoryDirectoryConstant = "/workspace/repository"
	testDirectoryMarkerSuffix       = "/"
)

// buildFileSystem lays out fixtures under the test repository. Paths ending in "/" become empty directories.
func buildFileSystem(testInstance *testing.T, fixtures map[string]string) afero.Fs {
	testInstance.Helper()
	fileSystem := afero.NewMemMapFs()
	require.NoError(testInstance, fileSystem.MkdirAll(testRepositoryDirectoryConstant, 0o755))
	for relativePath, content := range fixtures {
		fullPath := filepath.Join(testRepositoryDirectoryConstant, relativePath)
		if strings.HasSuffix(relativePath, testDirectoryMarkerSuffix) {
			require.NoError(testInstance, fileSystem.MkdirAll(fullPath, 0o755))
			continue
		}
		require.NoError(testInstance, fileSystem.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(testInstance, afero.WriteFile(fileSystem, fullPath, []byte(content), 0o644))
	}
	return fileSystem
}

func buildRepository(testInstance *testing.T, fixtures map[string]string) *probe.Inspector {
	testInstance.Helper()
	return probe.NewInspector(buildFileSystem(testInstance, fixtures), testRepositoryDirectoryConstant, 0)
}

func repeatWords(word string, count int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", count))
}

func completeReadme() string {
	return "# Repository Auditor\n\n" +
		"[![Build](https://img.shields.io/badge/build-passing-green.svg)](https://ci.example.com/repoaudit)\n\n" +
		"## Installation\n\n```sh\ngo install github.com/example/repoaudit@latest\n```\n\n" +
		"## Usage\n\nRun the auditor and read the [documentation](https://example.com/docs).\n\n" +
		repeatWords("quality", 520) + "\n"
}

const (
	mitLicenseText = "MIT License\n\nCopyright (c) 2024 Example Authors\n\n" +
		"Permission is hereby granted, free of charge, to any person obtaining a copy of this software.\n"

	completeManifest = `{
  "name": "repoaudit-fixture",
  "version": "1.0.0",
  "description": "A repository quality fixture",
  "repository": {"type": "git", "url": "https://example.com/fixture.git"},
  "keywords": ["audit", "quality"],
  "author": "Example Authors",
  "engines": {"node": ">=18"},
  "scripts": {"test": "jest", "build": "tsc", "lint": "eslint ."},
  "main": "index.js",
  "license": "MIT",
  "homepage": "https://example.com",
  "devDependencies": {"eslint": "^9.0.0", "jest": "^29.0.0", "typescript": "^5.4.0"}
}`

	placeholderManifest = `{"name": "placeholder", "version": "0.0.1", "scripts": {"test": "echo \"Error: no test specified\" && exit 1"}}`

	strictTypeScriptConfiguration = `{
  // compiler settings
  "compilerOptions": {
    "strict": true,
    "noUnusedLocals": true,
    "noUnusedParameters": true,
    "esModuleInterop": true,
  },
}`

	completeContributingGuide = "# Contributing\n\nFork the repository and open a pull request against main. " +
		"Please follow our Code of Conduct. Report bugs and request features through GitHub issues. " +
		"Run the linter before pushing so the code style stays consistent.\n"

	completeSecurityPolicy = "# Security Policy\n\nPlease report vulnerabilities privately by emailing security@example.com. " +
		"We follow coordinated disclosure and respond within five business days.\n"

	completeEditorConfig = "root = true\n\n[*]\nindent_style = space\nindent_size = 2\nend_of_line = lf\ncharset = utf-8\n"

	completeGitignore = "# dependencies\nnode_modules/\ndist/\n.env\n.idea/\n"
)

func strongRepositoryFixtures() map[string]string {
	return map[string]string{
		"README.md":                completeReadme(),
		"LICENSE":                  mitLicenseText,
		".gitignore":               completeGitignore,
		".github/workflows/ci.yml": "name: ci\non: [push]\n",
		"tests/audit.test.js":      "test('audit', () => {})\n",
		"jest.config.js":           "module.exports = {}\n",
		".eslintrc.json":           "{}\n",
		".prettierrc":              "{}\n",
		"tsconfig.json":            strictTypeScriptConfiguration,
		"package.json":             completeManifest,
		"CONTRIBUTING.md":          completeContributingGuide,
		"SECURITY.md":              completeSecurityPolicy,
		".editorconfig":            completeEditorConfig,
	}
}
