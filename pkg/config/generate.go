package config

import (
	"strings"

	"github.com/arthur-debert/twcfg/pkg/document"
)

// GenerateConfigContent generates the starter file content. TOML gets the
// annotated template followed by commented-out theme examples; the other
// formats carry no comments and are the default document encoded.
func GenerateConfigContent(format Format) (string, error) {
	if format == FormatTOML {
		var b strings.Builder
		b.WriteString(GetStarterContent())
		b.WriteString("\n# Examples:\n#\n")
		b.WriteString(commentOutConfigValues(string(exampleConfig)))
		return b.String(), nil
	}

	out, err := Marshal(document.Default(), format)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// commentOutConfigValues comments out every non-blank line that is not
// already a comment. Table headers are commented too, so an example never
// creates an empty theme category.
func commentOutConfigValues(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, "#")
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n") + "\n"
}
