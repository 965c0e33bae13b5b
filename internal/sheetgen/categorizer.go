package sheetgen

import (
	"strings"

	"github.com/yacobolo/cssbuild"
)

// categoryMembers lists the well-known properties of each category.
var categoryMembers = map[PropertyCategory][]string{
	CategoryVisual: {
		"background", "background-color", "background-image", "background-size",
		"background-position", "background-repeat", "color", "border", "border-color",
		"border-radius", "border-width", "border-style", "box-shadow", "opacity",
		"outline", "outline-color", "outline-width", "outline-style", "fill", "stroke",
	},
	CategoryLayout: {
		"display", "flex", "justify-content", "align-items", "align-self", "align-content",
		"gap", "row-gap", "column-gap", "grid", "position", "inset", "top", "right",
		"bottom", "left", "width", "height", "inline-size", "block-size", "min-width",
		"min-height", "max-width", "max-height", "padding", "margin", "overflow",
		"overflow-x", "overflow-y", "z-index", "aspect-ratio", "object-fit",
		"object-position", "cursor",
	},
	CategoryTypography: {
		"font", "font-family", "font-size", "font-weight", "font-style", "font-variant",
		"line-height", "letter-spacing", "text-align", "text-decoration", "text-transform",
		"text-overflow", "white-space", "word-break", "word-wrap", "hyphens", "content",
	},
	CategoryEffects: {
		"transition", "transition-property", "transition-duration",
		"transition-timing-function", "transition-delay", "transform", "transform-origin",
		"filter", "backdrop-filter", "mix-blend-mode", "clip-path", "mask",
	},
}

// propertyCategories maps CSS property names to categories
var propertyCategories = func() map[string]PropertyCategory {
	m := make(map[string]PropertyCategory)
	for cat, names := range categoryMembers {
		for _, name := range names {
			m[name] = cat
		}
	}
	return m
}()

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	// Custom property definitions are design tokens
	if strings.HasPrefix(name, "--") {
		return CategoryTokens
	}

	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Vendor prefixes
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, prefix) {
			return CategoryInternal
		}
	}

	switch {
	case strings.HasPrefix(name, "animation"), strings.HasPrefix(name, "transition-"):
		return CategoryEffects
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "outline-"):
		return CategoryVisual
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	}

	// flex-*, grid-*, padding-*, margin-* and anything unknown
	return CategoryLayout
}

// collectStats counts declarations per category and value feature.
func collectStats(decls []cssbuild.Declaration) DeclarationStats {
	stats := DeclarationStats{ByCategory: make(map[PropertyCategory]int)}
	for _, d := range decls {
		stats.Total++
		stats.ByCategory[categorizeProperty(d.Name())]++
		if strings.Contains(d.Value(), "var(--") {
			stats.VarReferences++
		}
		if strings.Contains(d.Value(), "calc(") {
			stats.CalcExpression++
		}
	}
	return stats
}

// merge adds other into s.
func (s *DeclarationStats) merge(other DeclarationStats) {
	if s.ByCategory == nil {
		s.ByCategory = make(map[PropertyCategory]int)
	}
	s.Total += other.Total
	s.VarReferences += other.VarReferences
	s.CalcExpression += other.CalcExpression
	for cat, n := range other.ByCategory {
		s.ByCategory[cat] += n
	}
}
