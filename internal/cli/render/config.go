package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the resolved configuration as YAML
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if result.Exists {
		fmt.Fprintf(r.out, "📁 config file: %s\n\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintf(r.out, "📋 No deploy-config file found, showing defaults and environment\n\n")
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(result.Config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
