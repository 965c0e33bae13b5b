package cssbuild

import "strings"

// ruleIndent prefixes every declaration line inside a rule block.
const ruleIndent = "    "

// Rule is a selector with an ordered block of declarations.
//
// Declarations keep insertion order; duplicates are kept and rendered, the
// cascade decides which one wins.
type Rule struct {
	selector func() string
	decls    []Declaration
}

// NewRule creates a rule. The selector may be a string, a Selector, a Class
// (rendered with its dot) or any value accepted by Text.
func NewRule(selector any, decls ...Declaration) Rule {
	text := selectorText(selector)
	return Rule{
		selector: func() string { return text },
		decls:    cloneDecls(decls),
	}
}

// Deferred creates a rule whose selector is resolved on every render by
// calling resolve. Use it when the selector refers to values that are not
// initialized yet at the point the rule is declared. A nil resolve renders
// an empty selector.
func Deferred(resolve func() any, decls ...Declaration) Rule {
	if resolve == nil {
		return Rule{decls: cloneDecls(decls)}
	}
	return Rule{
		selector: func() string { return selectorText(resolve()) },
		decls:    cloneDecls(decls),
	}
}

func cloneDecls(decls []Declaration) []Declaration {
	out := make([]Declaration, len(decls))
	copy(out, decls)
	return out
}

// Selector returns the rendered selector.
func (r Rule) Selector() string {
	if r.selector == nil {
		return ""
	}
	return r.selector()
}

// Declarations returns a copy of the declarations in order.
func (r Rule) Declarations() []Declaration {
	return cloneDecls(r.decls)
}

// String renders
//
//	selector {
//	    name: value;
//	}
//
// Every line of the declaration text is indented, including lines inside
// multi-line values.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Selector())
	sb.WriteString(" {\n")

	lines := make([]string, len(r.decls))
	for i, d := range r.decls {
		lines[i] = d.String()
	}
	for _, line := range strings.Split(strings.Join(lines, "\n"), "\n") {
		sb.WriteString(ruleIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("}")
	return sb.String()
}

func (Rule) block() {}
