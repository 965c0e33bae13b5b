// Package sel builds selector text from plain strings.
//
// It is the string-level counterpart of cssbuild.Selector for call sites
// that already hold selector text:
//
//	sel.Hover(sel.Child(sel.Class("nav"), "a")) // ".nav > a:hover"
package sel

import "strings"

// All is the universal selector.
func All() string { return "*" }

func Tag(name string) string { return name }

// Class prefixes the trimmed name with a dot. A name that already starts
// with a dot keeps a single one.
func Class(name string) string {
	return "." + strings.TrimPrefix(strings.TrimSpace(name), ".")
}

// ID prefixes the trimmed name with "#".
func ID(name string) string {
	return "#" + strings.TrimPrefix(strings.TrimSpace(name), "#")
}

func Attr(name string) string { return "[" + name + "]" }

func AttrValue(name, value string) string      { return attrOp(name, "=", value) }
func AttrContains(name, value string) string   { return attrOp(name, "*=", value) }
func AttrStartsWith(name, value string) string { return attrOp(name, "^=", value) }
func AttrEndsWith(name, value string) string   { return attrOp(name, "$=", value) }

func attrOp(name, op, value string) string {
	return "[" + name + op + `"` + value + `"]`
}

// Combinators.

func Descendant(selectors ...string) string { return strings.Join(selectors, " ") }
func Child(selectors ...string) string      { return strings.Join(selectors, " > ") }
func Adjacent(selectors ...string) string   { return strings.Join(selectors, " + ") }
func Sibling(selectors ...string) string    { return strings.Join(selectors, " ~ ") }

// Group lists selectors that share one rule: "h1, h2".
func Group(selectors ...string) string { return strings.Join(selectors, ", ") }

// Pseudo-classes and pseudo-elements.

func Hover(s string) string        { return s + ":hover" }
func Focus(s string) string        { return s + ":focus" }
func Active(s string) string       { return s + ":active" }
func FirstChild(s string) string   { return s + ":first-child" }
func LastChild(s string) string    { return s + ":last-child" }
func NthChild(s, n string) string  { return s + ":nth-child(" + n + ")" }
func Not(s, negated string) string { return s + ":not(" + negated + ")" }
func Before(s string) string       { return s + "::before" }
func After(s string) string        { return s + "::after" }
