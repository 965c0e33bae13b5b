package cssbuild

import (
	"fmt"
	"strings"
)

// InvalidPropertyError is returned when a declaration is built with a
// property name that is empty after trimming.
type InvalidPropertyError struct {
	Name string // the name as given, before trimming
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid property name %q: must not be empty", e.Name)
}

// Declaration is a single property/value pair, rendered as "name: value;".
type Declaration struct {
	name  string
	value string
}

// NewDeclaration creates a declaration. The name is trimmed and must not be
// empty; the value is rendered with Text and not validated.
func NewDeclaration(name string, value any) (Declaration, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Declaration{}, &InvalidPropertyError{Name: name}
	}
	return Declaration{name: trimmed, value: Text(value)}, nil
}

// MustDeclaration is like NewDeclaration but panics on an invalid name.
// It is meant for property names known at compile time.
func MustDeclaration(name string, value any) Declaration {
	d, err := NewDeclaration(name, value)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the trimmed property name.
func (d Declaration) Name() string {
	return d.name
}

// Value returns the rendered value.
func (d Declaration) Value() string {
	return d.value
}

func (d Declaration) String() string {
	return d.name + ": " + d.value + ";"
}

// InlineStyle renders declarations for a style attribute, joined by a single
// space instead of newlines.
func InlineStyle(decls ...Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
