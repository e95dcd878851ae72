package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the file name a fixture directory is expected to hold.
const ManifestFile = "manifest.yml"

// DefaultEntry is used when a manifest does not name its program document.
const DefaultEntry = "program.json"

// Manifest represents the parsed contents of a fixture's manifest.yml.
type Manifest struct {
	Path        string
	Description string
	Entry       string
	Skip        bool
	Expect      Expectation
}

// Expectation lists what a fixture run must produce.
type Expectation struct {
	Stdout []string
	// Error is the expected runtime error message; empty means success.
	Error string
	// Line is the expected line of the error token; zero skips the check.
	Line int
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type manifestFile struct {
	Description string `yaml:"description"`
	Entry       string `yaml:"entry"`
	Skip        bool   `yaml:"skip"`
	Expect      struct {
		Stdout lineList `yaml:"stdout"`
		Error  string   `yaml:"error"`
		Line   int      `yaml:"line"`
	} `yaml:"expect"`
}

// LoadManifest parses manifest.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (raw manifestFile) toManifest(path string) *Manifest {
	entry := strings.TrimSpace(raw.Entry)
	if entry == "" {
		entry = DefaultEntry
	}
	return &Manifest{
		Path:        path,
		Description: strings.TrimSpace(raw.Description),
		Entry:       entry,
		Skip:        raw.Skip,
		Expect: Expectation{
			Stdout: []string(raw.Expect.Stdout),
			Error:  strings.TrimSpace(raw.Expect.Error),
			Line:   raw.Expect.Line,
		},
	}
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if _, err := FormatForPath(m.Entry); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry %q must be a .json, .yml or .yaml document", m.Entry))
	}
	if filepath.IsAbs(m.Entry) || strings.HasPrefix(filepath.Clean(m.Entry), "..") {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry %q must stay inside the fixture directory", m.Entry))
	}
	if m.Expect.Line < 0 {
		errs.Issues = append(errs.Issues, "expect.line must not be negative")
	}
	if m.Expect.Line > 0 && m.Expect.Error == "" {
		errs.Issues = append(errs.Issues, "expect.line requires expect.error")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Dir is the fixture directory holding the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// EntryPath resolves the program document relative to the manifest.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Dir(), m.Entry)
}

// lineList accepts either a single scalar or a sequence of scalars. Lines are
// kept verbatim (no trimming, empty lines preserved) because they are
// compared against program output.
type lineList []string

func (l *lineList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = lineList{value.Value}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			if node.Kind == yaml.AliasNode {
				node = node.Alias
			}
			if node.Kind != yaml.ScalarNode {
				return fmt.Errorf("manifest: stdout entries must be scalars but found %s", node.ShortTag())
			}
			items = append(items, node.Value)
		}
		*l = lineList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for stdout but found %s", value.ShortTag())
	}
}
