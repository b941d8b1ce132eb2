package themes

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

type Theme struct {
	Name        string `yaml:"name"`
	Bg          string `yaml:"bg"`
	Text        string `yaml:"text"`
	Accent      string `yaml:"accent"`
	ButtonBg    string `yaml:"button_bg"`
	ButtonText  string `yaml:"button_text"`
	ButtonHover string `yaml:"button_hover"`
	Border      string `yaml:"border"`
	InputBg     string `yaml:"input_bg"`
	InputBorder string `yaml:"input_border"`
	InputFocus  string `yaml:"input_focus"`
}

// Button is the class list shared by every primary button.
func (t Theme) Button() string {
	return strings.Join([]string{t.ButtonBg, t.ButtonText, t.ButtonHover}, " ")
}

// Input is the class list shared by every text input.
func (t Theme) Input() string {
	return strings.Join([]string{t.InputBg, t.InputBorder, t.InputFocus}, " ")
}

type table struct {
	Default string  `yaml:"default"`
	Themes  []Theme `yaml:"themes"`
}

type Registry struct {
	byName map[string]Theme
	order  []string
	def    Theme
}

func Parse(raw []byte) (*Registry, error) {
	var tbl table
	if err := yaml.Unmarshal(raw, &tbl); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}
	r := &Registry{byName: make(map[string]Theme, len(tbl.Themes))}
	for _, t := range tbl.Themes {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("parse themes: theme without a name")
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("parse themes: duplicate theme %q", t.Name)
		}
		r.byName[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	def, ok := r.byName[tbl.Default]
	if !ok {
		return nil, fmt.Errorf("parse themes: default theme %q not defined", tbl.Default)
	}
	r.def = def
	return r, nil
}

// Get returns the named theme or the default one for unknown names.
func (r *Registry) Get(name string) Theme {
	if t, ok := r.byName[name]; ok {
		return t
	}
	return r.def
}

func (r *Registry) Default() Theme { return r.def }

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin is the embedded theme table. It panics if the embedded file is
// broken, which the package tests catch.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		r, err := Parse(themesYAML)
		if err != nil {
			panic(err)
		}
		builtin = r
	})
	return builtin
}

func Get(name string) Theme { return Builtin().Get(name) }
