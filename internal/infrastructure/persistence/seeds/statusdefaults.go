package seeds

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type statusEntry struct {
	Name     string `yaml:"name"`
	Order    int    `yaml:"order"`
	Color    string `yaml:"color"`
	Icon     string `yaml:"icon"`
	Terminal bool   `yaml:"terminal"`
}

type defaultsFile struct {
	Statuses []statusEntry `yaml:"statuses"`
}

// StatusDefaults implements statuscatalog.DefaultsProvider from YAML.
type StatusDefaults struct {
	raw []byte

	once      sync.Once
	templates []statuscatalog.Template
	err       error
}

// NewStatusDefaults uses the catalog compiled into the binary.
func NewStatusDefaults() *StatusDefaults {
	return &StatusDefaults{raw: defaultsYAML}
}

// NewStatusDefaultsFromYAML parses a custom catalog document.
func NewStatusDefaultsFromYAML(raw []byte) *StatusDefaults {
	return &StatusDefaults{raw: raw}
}

func (d *StatusDefaults) Defaults() ([]statuscatalog.Template, error) {
	d.once.Do(func() {
		var file defaultsFile
		if err := yaml.Unmarshal(d.raw, &file); err != nil {
			d.err = fmt.Errorf("failed to parse default statuses: %w", err)
			return
		}
		if len(file.Statuses) == 0 {
			d.err = fmt.Errorf("default statuses are empty")
			return
		}
		out := make([]statuscatalog.Template, 0, len(file.Statuses))
		for _, s := range file.Statuses {
			out = append(out, statuscatalog.Template{
				Name:       s.Name,
				Order:      s.Order,
				Color:      s.Color,
				Icon:       s.Icon,
				IsTerminal: s.Terminal,
			})
		}
		d.templates = out
	})
	if d.err != nil {
		return nil, d.err
	}
	return append([]statuscatalog.Template(nil), d.templates...), nil
}
