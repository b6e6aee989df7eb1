package share

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

//go:embed openers.toml
var openersTOML []byte

// OpenerDefinition defines how a URL opener should be invoked
type OpenerDefinition struct {
	Description string   `toml:"description"`
	Platforms   []string `toml:"platforms"`
	Args        []string `toml:"args,omitempty"`
}

// OpenersConfig holds all opener definitions
type OpenersConfig struct {
	Openers map[string]OpenerDefinition `toml:"openers"`
}

// OpenerRegistry manages opener definitions
type OpenerRegistry struct {
	openers map[string]OpenerDefinition
}

// NewOpenerRegistry creates a registry from the embedded TOML, merged with
// any user overrides found on disk.
func NewOpenerRegistry() (*OpenerRegistry, error) {
	var config OpenersConfig
	if err := toml.Unmarshal(openersTOML, &config); err != nil {
		return nil, fmt.Errorf("parsing openers.toml: %w", err)
	}

	registry := &OpenerRegistry{openers: config.Openers}
	registry.loadUserConfig()

	return registry, nil
}

// loadUserConfig loads custom opener definitions from the user's config
// directory, overriding the built-ins.
func (r *OpenerRegistry) loadUserConfig() {
	configPaths := []string{
		"~/.config/lexwire/openers.toml",
		"./openers.toml",
	}

	for _, path := range configPaths {
		if len(path) >= 2 && path[:2] == "~/" {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[2:])
			}
		}

		if data, err := os.ReadFile(path); err == nil {
			var userConfig OpenersConfig
			if err := toml.Unmarshal(data, &userConfig); err == nil {
				for name, def := range userConfig.Openers {
					r.openers[name] = def
				}
			}
		}
	}
}

// Command builds the command invoking the named opener on url.
func (r *OpenerRegistry) Command(name, url string) (*exec.Cmd, error) {
	opener, exists := r.openers[name]
	if !exists {
		// Not a defined opener; invoke it with the URL as sole argument
		return exec.Command(name, url), nil
	}

	supported := false
	for _, p := range opener.Platforms {
		if p == runtime.GOOS {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%s not supported on %s", name, runtime.GOOS)
	}

	args := append(append([]string{}, opener.Args...), url)
	return exec.Command(name, args...), nil
}

// Candidates returns the opener names defined for the current platform, in
// preference order: the platform default first, then the rest.
func (r *OpenerRegistry) Candidates() []string {
	var platformDefault string
	switch runtime.GOOS {
	case "darwin":
		platformDefault = "open"
	case "windows":
		platformDefault = "start"
	default:
		platformDefault = "xdg-open"
	}

	out := []string{platformDefault}
	for name, def := range r.openers {
		if name == platformDefault {
			continue
		}
		for _, p := range def.Platforms {
			if p == runtime.GOOS {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
