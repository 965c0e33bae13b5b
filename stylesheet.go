package cssbuild

import (
	"io"
	"strings"
)

// blockSeparator separates top-level blocks in a stylesheet.
const blockSeparator = "\n\n"

// Block is a top-level stylesheet item: a Rule or Keyframes.
type Block interface {
	String() string
	block()
}

// Stylesheet is an ordered set of rules and keyframes.
//
// Keyframes always render before rules. Within each kind the order of
// construction is kept; rules and keyframes are not interleaved.
type Stylesheet struct {
	rules     []Rule
	keyframes []Keyframes
}

// Style partitions blocks into keyframes and rules. Pointers to a Rule or
// Keyframes are dereferenced; nil pointers are skipped.
func Style(blocks ...Block) Stylesheet {
	var sheet Stylesheet
	for _, b := range blocks {
		switch b := b.(type) {
		case Rule:
			sheet.rules = append(sheet.rules, b)
		case *Rule:
			if b != nil {
				sheet.rules = append(sheet.rules, *b)
			}
		case Keyframes:
			sheet.keyframes = append(sheet.keyframes, b)
		case *Keyframes:
			if b != nil {
				sheet.keyframes = append(sheet.keyframes, *b)
			}
		}
	}
	return sheet
}

// Rules creates a stylesheet without keyframes.
func Rules(rules ...Rule) Stylesheet {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return Stylesheet{rules: out}
}

// Rules returns a copy of the rules in order.
func (s Stylesheet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Keyframes returns a copy of the keyframes in order.
func (s Stylesheet) Keyframes() []Keyframes {
	out := make([]Keyframes, len(s.keyframes))
	copy(out, s.keyframes)
	return out
}

// String renders the stylesheet. It is the text to embed in a <style>
// element.
func (s Stylesheet) String() string {
	rules := make([]string, len(s.rules))
	for i, r := range s.rules {
		rules[i] = r.String()
	}
	rulesText := strings.Join(rules, blockSeparator)

	if len(s.keyframes) == 0 {
		return rulesText
	}

	frames := make([]string, len(s.keyframes))
	for i, k := range s.keyframes {
		frames[i] = k.String()
	}
	return strings.Join(frames, blockSeparator) + blockSeparator + rulesText
}

// WriteTo writes the rendered stylesheet to w.
func (s Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
