package sheetgen

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/multierr"

	"github.com/yacobolo/cssbuild"
)

// SheetSource is one YAML stylesheet source file.
type SheetSource struct {
	Path      string          `koanf:"-"`
	Variables []VariableSpec  `koanf:"variables"`
	Classes   []string        `koanf:"classes"`
	Keyframes []KeyframesSpec `koanf:"keyframes"`
	Rules     []RuleSpec      `koanf:"rules"`
}

// VariableSpec defines a custom property in the leading :root rule.
type VariableSpec struct {
	Name  string `koanf:"name"`  // "primary_color"
	Value any    `koanf:"value"` // "#007bff"
}

// KeyframesSpec is a named animation.
type KeyframesSpec struct {
	Name  string     `koanf:"name"`
	Steps []StepSpec `koanf:"steps"`
}

// StepSpec is one keyframe step.
type StepSpec struct {
	At           string `koanf:"at"` // "from", "to", "50%"
	Declarations []any  `koanf:"declarations"`
}

// RuleSpec is one rule. Exactly one of Selector and Class is set.
type RuleSpec struct {
	Selector     string   `koanf:"selector"` // raw selector text
	Class        string   `koanf:"class"`    // class identifier, dot added once
	Pseudo       []string `koanf:"pseudo"`   // ["hover", "before"]
	Declarations []any    `koanf:"declarations"`
}

// LoadSource reads a YAML source file. Each call uses its own koanf
// instance so sources never leak keys into each other.
func LoadSource(path string) (*SheetSource, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var src SheetSource
	if err := k.Unmarshal("", &src); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	src.Path = path
	return &src, nil
}

// Sheet is a built source: the stylesheet plus the identifiers it declares.
type Sheet struct {
	Source       *SheetSource
	Style        cssbuild.Stylesheet
	Classes      []cssbuild.Class // declared classes, in first-seen order
	Variables    []cssbuild.Var
	Animations   []string
	Declarations []cssbuild.Declaration // every declaration, for statistics
}

// Build turns a source into a stylesheet. All problems in the source are
// reported together; a source with any problem produces no sheet.
func Build(src *SheetSource) (*Sheet, error) {
	sheet := &Sheet{Source: src}
	var errs error
	var blocks []cssbuild.Block

	seenClass := make(map[string]bool)
	addClass := func(name string) {
		c := cssbuild.Class(name)
		if c.Name() == "" || seenClass[c.Name()] {
			return
		}
		seenClass[c.Name()] = true
		sheet.Classes = append(sheet.Classes, c)
	}
	for _, name := range src.Classes {
		addClass(name)
	}

	if len(src.Variables) > 0 {
		defs := make([]cssbuild.Declaration, 0, len(src.Variables))
		for i, v := range src.Variables {
			if strings.TrimSpace(v.Name) == "" {
				errs = multierr.Append(errs, fmt.Errorf("variables[%d]: missing name", i))
				continue
			}
			variable := cssbuild.Var(strings.TrimSpace(v.Name))
			sheet.Variables = append(sheet.Variables, variable)
			defs = append(defs, variable.Definition(v.Value))
		}
		sheet.Declarations = append(sheet.Declarations, defs...)
		blocks = append(blocks, cssbuild.NewRule(":root", defs...))
	}

	for i, kf := range src.Keyframes {
		if kf.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("keyframes[%d]: missing name", i))
			continue
		}
		steps := make([]cssbuild.KeyframeStep, 0, len(kf.Steps))
		for j, step := range kf.Steps {
			decls, err := parseDeclarations(step.Declarations)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("keyframes %q step %d: %w", kf.Name, j, err))
				continue
			}
			sheet.Declarations = append(sheet.Declarations, decls...)
			steps = append(steps, cssbuild.Frame(step.At, decls...))
		}
		sheet.Animations = append(sheet.Animations, kf.Name)
		blocks = append(blocks, cssbuild.NewKeyframes(kf.Name, steps...))
	}

	for i, rs := range src.Rules {
		selector, err := buildSelector(rs)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rules[%d]: %w", i, err))
			continue
		}
		decls, err := parseDeclarations(rs.Declarations)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rules[%d] %s: %w", i, selector, err))
			continue
		}
		if rs.Class != "" {
			addClass(rs.Class)
		}
		sheet.Declarations = append(sheet.Declarations, decls...)
		blocks = append(blocks, selector.Rule(decls...))
	}

	if errs != nil {
		return nil, errs
	}
	sheet.Style = cssbuild.Style(blocks...)
	return sheet, nil
}

// pseudoHelpers maps the pseudo names accepted in sources to selector helpers.
var pseudoHelpers = map[string]func(cssbuild.Selector) cssbuild.Selector{
	"hover":        cssbuild.Selector.Hover,
	"focus":        cssbuild.Selector.Focus,
	"active":       cssbuild.Selector.Active,
	"first-child":  cssbuild.Selector.FirstChild,
	"last-child":   cssbuild.Selector.LastChild,
	"before":       cssbuild.Selector.Before,
	"after":        cssbuild.Selector.After,
	"first-line":   cssbuild.Selector.FirstLine,
	"first-letter": cssbuild.Selector.FirstLetter,
	"selection":    cssbuild.Selector.Selection,
	"placeholder":  cssbuild.Selector.Placeholder,
}

// pseudoFuncs are the pseudo-classes that take an argument: "nth-child(2n)".
var pseudoFuncs = map[string]func(cssbuild.Selector, any) cssbuild.Selector{
	"nth-child":   cssbuild.Selector.NthChild,
	"nth-of-type": cssbuild.Selector.NthOfType,
	"not":         cssbuild.Selector.Not,
}

func buildSelector(rs RuleSpec) (cssbuild.Selector, error) {
	var s cssbuild.Selector
	switch {
	case rs.Class != "" && rs.Selector != "":
		return s, fmt.Errorf("selector %q and class %q are mutually exclusive", rs.Selector, rs.Class)
	case rs.Class != "":
		s = cssbuild.Sel(cssbuild.Class(rs.Class))
	case strings.TrimSpace(rs.Selector) != "":
		s = cssbuild.Sel(strings.TrimSpace(rs.Selector))
	default:
		return s, fmt.Errorf("missing selector or class")
	}

	for _, name := range rs.Pseudo {
		name = strings.TrimLeft(strings.TrimSpace(name), ":")
		if helper, ok := pseudoHelpers[name]; ok {
			s = helper(s)
			continue
		}
		if open := strings.IndexByte(name, '('); open > 0 && strings.HasSuffix(name, ")") {
			if fn, ok := pseudoFuncs[name[:open]]; ok {
				s = fn(s, name[open+1:len(name)-1])
				continue
			}
		}
		return s, fmt.Errorf("unknown pseudo %q", name)
	}
	return s, nil
}

// parseDeclarations accepts single-key maps ({color: red}) and
// "name: value" strings.
func parseDeclarations(items []any) ([]cssbuild.Declaration, error) {
	decls := make([]cssbuild.Declaration, 0, len(items))
	var errs error
	for i, item := range items {
		d, err := parseDeclaration(item)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("declarations[%d]: %w", i, err))
			continue
		}
		decls = append(decls, d)
	}
	return decls, errs
}

func parseDeclaration(item any) (cssbuild.Declaration, error) {
	switch item := item.(type) {
	case string:
		name, value, ok := strings.Cut(item, ":")
		if !ok {
			return cssbuild.Declaration{}, fmt.Errorf("expected \"name: value\", got %q", item)
		}
		return cssbuild.NewDeclaration(name, strings.TrimSuffix(strings.TrimSpace(value), ";"))
	case map[string]any:
		if len(item) != 1 {
			return cssbuild.Declaration{}, fmt.Errorf("expected a single property, got %d", len(item))
		}
		for name, value := range item {
			return cssbuild.NewDeclaration(name, value)
		}
	}
	return cssbuild.Declaration{}, fmt.Errorf("unsupported declaration %v (%T)", item, item)
}
