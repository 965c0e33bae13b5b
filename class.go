package cssbuild

import "strings"

// Class names a CSS class. Declare classes as typed constants and use them
// both in selectors and in class attributes:
//
//	const (
//		Card    cssbuild.Class = "card"
//		CardBtn cssbuild.Class = "card__btn"
//	)
//
// In selector position a Class always renders with exactly one leading dot,
// also when the constant itself was written as ".card".
type Class string

// Name returns the class name without a leading dot.
func (c Class) Name() string {
	return strings.TrimPrefix(strings.TrimSpace(string(c)), ".")
}

// String returns the plain class name for use in a class attribute.
func (c Class) String() string {
	return c.Name()
}

// Selector returns ".name".
func (c Class) Selector() string {
	return "." + c.Name()
}

// AsSelector starts a selector with this class.
func (c Class) AsSelector() Selector {
	return Sel(c)
}

// Rule creates ".name { ... }".
func (c Class) Rule(decls ...Declaration) Rule {
	return NewRule(c.Selector(), decls...)
}

// Child returns ".name > parts...".
func (c Class) Child(parts ...any) Selector {
	return Sel(c).Child(parts...)
}

func (c Class) Descendant(p any) Selector { return Sel(c).Descendant(p) }
func (c Class) Adjacent(p any) Selector   { return Sel(c).Adjacent(p) }
func (c Class) Sibling(p any) Selector    { return Sel(c).Sibling(p) }

func (c Class) Hover() Selector          { return Sel(c).Hover() }
func (c Class) Focus() Selector          { return Sel(c).Focus() }
func (c Class) Active() Selector         { return Sel(c).Active() }
func (c Class) FirstChild() Selector     { return Sel(c).FirstChild() }
func (c Class) LastChild() Selector      { return Sel(c).LastChild() }
func (c Class) NthChild(n any) Selector  { return Sel(c).NthChild(n) }
func (c Class) NthOfType(n any) Selector { return Sel(c).NthOfType(n) }
func (c Class) Not(negated any) Selector { return Sel(c).Not(negated) }
func (c Class) Before() Selector         { return Sel(c).Before() }
func (c Class) After() Selector          { return Sel(c).After() }
func (c Class) FirstLine() Selector      { return Sel(c).FirstLine() }
func (c Class) FirstLetter() Selector    { return Sel(c).FirstLetter() }
func (c Class) Selection() Selector      { return Sel(c).Selection() }
func (c Class) Placeholder() Selector    { return Sel(c).Placeholder() }
