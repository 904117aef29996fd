package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/marquee/internal/marquee"
)

//go:embed default_layout.yaml
var defaultLayout []byte

// Layout is the declarative document the hosts render: a tree of elements,
// some of them marked as wraps and templates.
type Layout struct {
	Title    string     `yaml:"title"`
	Elements []*Element `yaml:"elements"`
}

// Element is one node of the layout document.
type Element struct {
	Name    string            `yaml:"id"`
	Attrs   map[string]string `yaml:"attrs"`
	Content string            `yaml:"text"`
	Nested  []*Element        `yaml:"children"`
}

func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

func (e *Element) ID() string { return e.Name }
func (e *Element) Text() string { return e.Content }

func (e *Element) Children() []marquee.Node {
	out := make([]marquee.Node, 0, len(e.Nested))
	for _, c := range e.Nested {
		out = append(out, c)
	}
	return out
}

// Roots returns the top-level elements as marquee nodes.
func (l *Layout) Roots() []marquee.Node {
	out := make([]marquee.Node, 0, len(l.Elements))
	for _, e := range l.Elements {
		out = append(out, e)
	}
	return out
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return ParseLayout(data)
}

// DefaultLayout returns the layout shipped with the binary.
func DefaultLayout() (*Layout, error) {
	return ParseLayout(defaultLayout)
}

func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := Validate(&l); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return &l, nil
}

// Validate checks the document structure. Attribute values are not checked
// here; bad values fall back to defaults when a wrap resolves its options.
func Validate(l *Layout) error {
	if len(l.Elements) == 0 {
		return errors.New("layout has no elements")
	}
	var walk func(es []*Element, path string) error
	walk = func(es []*Element, path string) error {
		for i, e := range es {
			if e == nil {
				return fmt.Errorf("%s[%d]: empty element", path, i)
			}
			if err := walk(e.Nested, fmt.Sprintf("%s[%d].children", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(l.Elements, "elements")
}
