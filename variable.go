package cssbuild

import "strings"

// Var names a CSS custom property. Declare variables as typed constants:
//
//	const (
//		PrimaryColor cssbuild.Var = "primary_color"
//		SpacingUnit  cssbuild.Var = "spacing_unit"
//	)
//
// Underscores in the logical name become hyphens in CSS; case is kept.
// The logical name must not be empty: Definition panics with an
// *InvalidPropertyError for a blank Var.
type Var string

// String returns the logical name.
func (v Var) String() string {
	return string(v)
}

// Property returns the custom property name, e.g. "--primary-color".
func (v Var) Property() string {
	return "--" + strings.ReplaceAll(string(v), "_", "-")
}

// Definition declares the variable: "--primary-color: value;".
func (v Var) Definition(value any) Declaration {
	if strings.TrimSpace(string(v)) == "" {
		panic(&InvalidPropertyError{Name: string(v)})
	}
	return MustDeclaration(v.Property(), value)
}

// Reference returns "var(--primary-color)".
func (v Var) Reference() string {
	return "var(" + v.Property() + ")"
}

// ReferenceOr returns "var(--primary-color, fallback)".
func (v Var) ReferenceOr(fallback any) string {
	return "var(" + v.Property() + ", " + Text(fallback) + ")"
}

// VarRef references a custom property by its raw name (without "--"):
// VarRef("main-bg") is "var(--main-bg)", VarRef("main-bg", "#fff") is
// "var(--main-bg, #fff)". Only the first fallback is used.
func VarRef(name string, fallback ...any) string {
	if len(fallback) == 0 {
		return "var(--" + name + ")"
	}
	return "var(--" + name + ", " + Text(fallback[0]) + ")"
}
