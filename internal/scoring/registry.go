package scoring

// Check identifiers of the default registry.
const (
	CheckIDReadme          = "readme"
	CheckIDLicense         = "license"
	CheckIDGitignore       = "gitignore"
	CheckIDContinuous      = "ci"
	CheckIDTests           = "tests"
	CheckIDLinting         = "linting"
	CheckIDTypeScript      = "typescript"
	CheckIDPackageMetadata = "package"
	CheckIDContributing    = "contributing"
	CheckIDSecurity        = "security"
	CheckIDEditorConfig    = "editorconfig"
)

// Registry is an ordered list of check definitions. Order only affects presentation.
type Registry []CheckDefinition

// DefaultRegistry returns the fixed set of checks whose weights sum to 100.
func DefaultRegistry() Registry {
	return Registry{
		{ID: CheckIDReadme, Name: "README", Weight: 15, Evaluate: EvaluateReadme},
		{ID: CheckIDLicense, Name: "License", Weight: 10, Evaluate: EvaluateLicense},
		{ID: CheckIDGitignore, Name: ".gitignore", Weight: 5, Evaluate: EvaluateGitignore},
		{ID: CheckIDContinuous, Name: "CI/CD", Weight: 12, Evaluate: EvaluateContinuousIntegration},
		{ID: CheckIDTests, Name: "Tests", Weight: 12, Evaluate: EvaluateTests},
		{ID: CheckIDLinting, Name: "Linting", Weight: 10, Evaluate: EvaluateLinting},
		{ID: CheckIDTypeScript, Name: "TypeScript", Weight: 8, Evaluate: EvaluateTypeScript},
		{ID: CheckIDPackageMetadata, Name: "Package Metadata", Weight: 10, Evaluate: EvaluatePackageMetadata},
		{ID: CheckIDContributing, Name: "CONTRIBUTING", Weight: 6, Evaluate: EvaluateContributing},
		{ID: CheckIDSecurity, Name: "Security Policy", Weight: 7, Evaluate: EvaluateSecurityPolicy},
		{ID: CheckIDEditorConfig, Name: "EditorConfig", Weight: 5, Evaluate: EvaluateEditorConfig},
	}
}

// TotalWeight sums the weights of every definition.
func (registry Registry) TotalWeight() int {
	totalWeight := 0
	for _, definition := range registry {
		totalWeight += definition.Weight
	}
	return totalWeight
}
