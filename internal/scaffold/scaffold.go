package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const scriptTemplate = "scaffolds/script.go.tmpl"

// ScriptData holds all template variables available to the script template.
type ScriptData struct {
	Name         string // e.g., "EnemyChaser"
	Lower        string // Derived: lowerCamel identifier, e.g., "enemyChaser"
	FileName     string // Derived: snake_case file name, e.g., "enemy_chaser.go"
	EngineImport string // Import path of the engine package
}

// NewScriptData validates the script name and derives the casing variants
// the template needs. The name must start with an uppercase letter so the
// generated type is exported.
func NewScriptData(name, engineImport string) (*ScriptData, error) {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return nil, fmt.Errorf("script name must start with an uppercase letter")
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return nil, fmt.Errorf("invalid script name %q: letters and digits only", name)
		}
	}

	return &ScriptData{
		Name:         name,
		Lower:        string(unicode.ToLower(runes[0])) + string(runes[1:]),
		FileName:     toSnakeCase(name) + ".go",
		EngineImport: engineImport,
	}, nil
}

// Generate renders the script template into outputDir and returns the path
// of the created file. It refuses to overwrite an existing script.
func Generate(data *ScriptData, outputDir string) (string, error) {
	outPath := filepath.Join(outputDir, data.FileName)
	if _, err := os.Stat(outPath); err == nil {
		return "", fmt.Errorf("%s already exists", outPath)
	}

	tmplBytes, err := scaffoldFS.ReadFile(scriptTemplate)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", scriptTemplate, err)
	}

	tmpl, err := template.New(filepath.Base(scriptTemplate)).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating scripts directory %s: %w", outputDir, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	return outPath, nil
}

// toSnakeCase converts an exported identifier to snake_case
// ("EnemyChaser" → "enemy_chaser").
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
