package cssbuild

import "strings"

// KeyframeStep is one step of an animation: a label ("0%", "from", "to")
// and the declarations that apply at that point.
type KeyframeStep struct {
	label string
	decls []Declaration
}

// Frame creates a step with an arbitrary label, e.g. Frame("50%", ...).
func Frame(label string, decls ...Declaration) KeyframeStep {
	return KeyframeStep{label: label, decls: cloneDecls(decls)}
}

// From creates the "from" step.
func From(decls ...Declaration) KeyframeStep {
	return Frame("from", decls...)
}

// To creates the "to" step.
func To(decls ...Declaration) KeyframeStep {
	return Frame("to", decls...)
}

// Label returns the step label.
func (s KeyframeStep) Label() string {
	return s.label
}

// String renders the step on one line: "from { opacity: 0; }".
func (s KeyframeStep) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.String()
	}
	return s.label + " { " + strings.Join(parts, " ") + " }"
}

// Keyframes is a named @keyframes animation.
type Keyframes struct {
	name  string
	steps []KeyframeStep
}

// NewKeyframes creates an animation from ordered steps.
func NewKeyframes(name string, steps ...KeyframeStep) Keyframes {
	out := make([]KeyframeStep, len(steps))
	copy(out, steps)
	return Keyframes{name: name, steps: out}
}

// Name returns the animation name, for use in animation-name.
func (k Keyframes) Name() string {
	return k.name
}

// String renders
//
//	@keyframes name {
//	  from { ... }
//	  to { ... }
//	}
func (k Keyframes) String() string {
	steps := make([]string, len(k.steps))
	for i, s := range k.steps {
		steps[i] = s.String()
	}
	return "@keyframes " + k.name + " {\n  " + strings.Join(steps, "\n  ") + "\n}"
}

func (Keyframes) block() {}
