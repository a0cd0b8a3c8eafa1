package probe

import (
	"sort"
	"strings"
)

const (
	scriptsFieldConstant         = "scripts"
	dependenciesFieldConstant    = "dependencies"
	devDependenciesFieldConstant = "devDependencies"
)

// Manifest is a package.json document with accessors for the fields the checks consult.
type Manifest struct {
	Document
}

// Script returns the command declared for scriptName.
func (manifest Manifest) Script(scriptName string) (string, bool) {
	value, exists := manifest.Value(scriptsFieldConstant, scriptName)
	if !exists {
		return "", false
	}
	command, isString := value.(string)
	if !isString {
		return "", false
	}
	return command, true
}

// Scripts returns the declared scripts that have string commands.
func (manifest Manifest) Scripts() map[string]string {
	scripts := map[string]string{}
	for scriptName, value := range manifest.Object(scriptsFieldConstant) {
		if command, isString := value.(string); isString {
			scripts[scriptName] = command
		}
	}
	return scripts
}

// DependencyNames returns the union of runtime and development dependency names in alphabetical order.
func (manifest Manifest) DependencyNames() []string {
	unique := map[string]struct{}{}
	for _, field := range []string{dependenciesFieldConstant, devDependenciesFieldConstant} {
		for dependencyName := range manifest.Object(field) {
			unique[dependencyName] = struct{}{}
		}
	}
	names := make([]string, 0, len(unique))
	for dependencyName := range unique {
		names = append(names, dependencyName)
	}
	sort.Strings(names)
	return names
}

// HasDependency reports whether any of the named packages is declared as a runtime or development dependency.
func (manifest Manifest) HasDependency(dependencyNames ...string) bool {
	for _, field := range []string{dependenciesFieldConstant, devDependenciesFieldConstant} {
		declared := manifest.Object(field)
		for _, dependencyName := range dependencyNames {
			if _, exists := declared[dependencyName]; exists {
				return true
			}
		}
	}
	return false
}

// Keywords returns the non-empty string keywords.
func (manifest Manifest) Keywords() []string {
	value, exists := manifest.Value("keywords")
	if !exists {
		return nil
	}
	rawKeywords, isArray := value.([]any)
	if !isArray {
		return nil
	}
	keywords := make([]string, 0, len(rawKeywords))
	for _, rawKeyword := range rawKeywords {
		keyword, isString := rawKeyword.(string)
		if !isString || len(strings.TrimSpace(keyword)) == 0 {
			continue
		}
		keywords = append(keywords, keyword)
	}
	return keywords
}
