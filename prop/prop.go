// Package prop provides declaration factories for common CSS properties.
//
// Every factory returns a cssbuild.Declaration. Values are rendered with
// cssbuild.Text, so strings, units, calc expressions, keyword constants,
// transforms and numbers can be passed directly:
//
//	prop.Width(cssbuild.Minus(cssbuild.Percent(100), cssbuild.Px(20)))
//	prop.Display(cssbuild.DisplayFlex)
//	prop.Margin(cssbuild.Zero, cssbuild.Auto)
package prop

import (
	"strings"

	"github.com/yacobolo/cssbuild"
)

// Prop creates a declaration for an arbitrary property name. It fails with
// *cssbuild.InvalidPropertyError when the name is empty after trimming.
func Prop(name string, value any) (cssbuild.Declaration, error) {
	return cssbuild.NewDeclaration(name, value)
}

// Custom defines a custom property: Custom("gap", "8px") is "--gap: 8px;".
// A leading "--" in name is not doubled.
func Custom(name string, value any) cssbuild.Declaration {
	return fixed("--"+strings.TrimPrefix(strings.TrimSpace(name), "--"), value)
}

// fixed is used by factories whose property name is a non-empty constant.
func fixed(name string, value any) cssbuild.Declaration {
	return cssbuild.MustDeclaration(name, value)
}

// spaced joins shorthand components: Margin(Px(0), Auto) is "margin: 0 auto;".
func spaced(name string, values []any) cssbuild.Declaration {
	return fixed(name, cssbuild.Join(" ", values...))
}
