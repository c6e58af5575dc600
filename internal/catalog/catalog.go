// Package catalog holds the static list of data sources the setup wizard
// offers and the form field each of them needs.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

type FieldKind string

const (
	KindText  FieldKind = "text"
	KindEmail FieldKind = "email"
	KindFile  FieldKind = "file"
)

type FieldDescriptor struct {
	Label       string    `yaml:"label" json:"label"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Kind        FieldKind `yaml:"kind" json:"input_kind"`
	Key         string    `yaml:"key" json:"field_key"`
}

type Category struct {
	Name      string   `yaml:"name" json:"name"`
	Providers []string `yaml:"providers" json:"providers"`
}

// ProviderField pairs a selected provider with the field it renders.
type ProviderField struct {
	Provider string          `json:"provider"`
	Field    FieldDescriptor `json:"field"`
}

type document struct {
	Categories []Category                 `yaml:"categories"`
	Fields     map[string]FieldDescriptor `yaml:"fields"`
}

type Catalog struct {
	categories []Category
	fields     map[string]FieldDescriptor
	byKey      map[string]FieldDescriptor
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads a catalog document from disk, falling back to the embedded one
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byKey := make(map[string]FieldDescriptor, len(doc.Fields))
	for provider, field := range doc.Fields {
		switch field.Kind {
		case KindText, KindEmail, KindFile:
		default:
			return nil, fmt.Errorf("catalog field for %q: unknown kind %q", provider, field.Kind)
		}
		if field.Key == "" {
			return nil, fmt.Errorf("catalog field for %q: missing key", provider)
		}
		if _, dup := byKey[field.Key]; dup {
			return nil, fmt.Errorf("catalog field key %q used twice", field.Key)
		}
		byKey[field.Key] = field
	}

	return &Catalog{
		categories: doc.Categories,
		fields:     doc.Fields,
		byKey:      byKey,
	}, nil
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Providers lists the providers of one category, nil if the category is unknown.
func (c *Catalog) Providers(category string) []string {
	for _, cat := range c.categories {
		if cat.Name == category {
			return append([]string(nil), cat.Providers...)
		}
	}
	return nil
}

func (c *Catalog) Field(provider string) (FieldDescriptor, bool) {
	f, ok := c.fields[provider]
	return f, ok
}

// FieldByKey resolves a field descriptor from its form key.
func (c *Catalog) FieldByKey(key string) (FieldDescriptor, bool) {
	f, ok := c.byKey[key]
	return f, ok
}

// FieldsFor returns the fields to render for the given providers, in order.
// Providers without a descriptor are skipped.
func (c *Catalog) FieldsFor(providers []string) []ProviderField {
	out := make([]ProviderField, 0, len(providers))
	for _, p := range providers {
		if f, ok := c.fields[p]; ok {
			out = append(out, ProviderField{Provider: p, Field: f})
		}
	}
	return out
}
