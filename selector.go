package cssbuild

import "strings"

// part is one selector token. Class parts render with a leading dot.
type part struct {
	text  string
	class bool
}

func (p part) render() string {
	if p.class {
		return "." + p.text
	}
	return p.text
}

// Selector is an ordered list of selector parts joined by spaces.
//
// Combinators are parts of their own. Pseudo-classes, pseudo-elements and
// attribute filters are appended to the text of the last part, so in
//
//	Sel(Container).Child(TagDiv).Hover()
//
// the :hover lands on div, not on .container. Every method returns a new
// Selector; the receiver is never modified.
type Selector struct {
	parts []part
}

// Sel creates a selector from parts. A Class becomes a class part, a
// Selector is spliced in part by part, and anything else is rendered with
// Text and used verbatim.
func Sel(parts ...any) Selector {
	return Selector{parts: appendParts(nil, parts)}
}

func appendParts(dst []part, items []any) []part {
	for _, item := range items {
		switch item := item.(type) {
		case Class:
			dst = append(dst, part{text: item.Name(), class: true})
		case Selector:
			dst = append(dst, item.parts...)
		default:
			dst = append(dst, part{text: Text(item)})
		}
	}
	return dst
}

// extend copies the parts before appending so that selectors derived from
// a common base never share a backing array.
func (s Selector) extend(items ...any) Selector {
	parts := make([]part, len(s.parts), len(s.parts)+len(items))
	copy(parts, s.parts)
	return Selector{parts: appendParts(parts, items)}
}

func (s Selector) appendPseudo(suffix string) Selector {
	if len(s.parts) == 0 {
		return Selector{parts: []part{{text: suffix}}}
	}
	parts := make([]part, len(s.parts))
	copy(parts, s.parts)
	last := &parts[len(parts)-1]
	last.text += suffix
	return Selector{parts: parts}
}

// Len returns the number of parts, combinators included.
func (s Selector) Len() int {
	return len(s.parts)
}

// Child appends the child combinator and the given parts:
// Sel(Container).Child(TagDiv, Highlight) is ".container > div .highlight".
func (s Selector) Child(parts ...any) Selector {
	return s.extend(append([]any{">"}, parts...)...)
}

// Descendant appends a part separated by whitespace.
func (s Selector) Descendant(p any) Selector {
	return s.extend(p)
}

// Adjacent appends "+ p".
func (s Selector) Adjacent(p any) Selector {
	return s.extend("+", p)
}

// Sibling appends "~ p".
func (s Selector) Sibling(p any) Selector {
	return s.extend("~", p)
}

func (s Selector) Hover() Selector      { return s.appendPseudo(":hover") }
func (s Selector) Focus() Selector      { return s.appendPseudo(":focus") }
func (s Selector) Active() Selector     { return s.appendPseudo(":active") }
func (s Selector) FirstChild() Selector { return s.appendPseudo(":first-child") }
func (s Selector) LastChild() Selector  { return s.appendPseudo(":last-child") }

// NthChild appends :nth-child(n), e.g. NthChild("2n+1").
func (s Selector) NthChild(n any) Selector {
	return s.appendPseudo(":nth-child(" + Text(n) + ")")
}

// NthOfType appends :nth-of-type(n).
func (s Selector) NthOfType(n any) Selector {
	return s.appendPseudo(":nth-of-type(" + Text(n) + ")")
}

// Not appends :not(...). A Class argument renders as ".name"; anything else
// is used verbatim, which allows compound negations as a single string.
func (s Selector) Not(negated any) Selector {
	return s.appendPseudo(notSuffix(negated))
}

func notSuffix(negated any) string {
	return ":not(" + selectorText(negated) + ")"
}

// selectorText renders a value in selector position: a Class gets its dot,
// everything else goes through Text.
func selectorText(v any) string {
	if c, ok := v.(Class); ok {
		return c.Selector()
	}
	return Text(v)
}

func (s Selector) Before() Selector      { return s.appendPseudo("::before") }
func (s Selector) After() Selector       { return s.appendPseudo("::after") }
func (s Selector) FirstLine() Selector   { return s.appendPseudo("::first-line") }
func (s Selector) FirstLetter() Selector { return s.appendPseudo("::first-letter") }
func (s Selector) Selection() Selector   { return s.appendPseudo("::selection") }
func (s Selector) Placeholder() Selector { return s.appendPseudo("::placeholder") }

// WithAttr appends [attr].
func (s Selector) WithAttr(attr string) Selector {
	return s.appendPseudo("[" + attr + "]")
}

// WithAttrValue appends [attr="value"].
func (s Selector) WithAttrValue(attr string, value any) Selector {
	return s.appendPseudo("[" + attr + "=\"" + Text(value) + "\"]")
}

// Rule pairs the selector with declarations.
func (s Selector) Rule(decls ...Declaration) Rule {
	return NewRule(s, decls...)
}

// Build renders the selector text.
func (s Selector) Build() string {
	texts := make([]string, len(s.parts))
	for i, p := range s.parts {
		texts[i] = p.render()
	}
	return strings.TrimSpace(strings.Join(texts, " "))
}

func (s Selector) String() string {
	return s.Build()
}
