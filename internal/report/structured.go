package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/temirov/repoaudit/internal/scoring"
)

const (
	jsonIndentPrefixConstant = ""
	jsonIndentConstant       = "  "
	yamlIndentConstant       = 2
)

// JSONRenderer writes the complete report as indented JSON.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(outputWriter io.Writer, auditReport scoring.AuditReport) error {
	encoder := json.NewEncoder(outputWriter)
	encoder.SetIndent(jsonIndentPrefixConstant, jsonIndentConstant)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(auditReport)
}

// YAMLRenderer writes the complete report as YAML.
type YAMLRenderer struct{}

// Render implements Renderer.
func (YAMLRenderer) Render(outputWriter io.Writer, auditReport scoring.AuditReport) error {
	encoder := yaml.NewEncoder(outputWriter)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(auditReport); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}
