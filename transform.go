package cssbuild

import "strings"

// Transform is an ordered list of transform functions, rendered
// space-separated as the value of the transform property.
//
// Every method returns a new Transform; the receiver is never modified.
type Transform struct {
	funcs []string
}

// NewTransform starts a chain from raw function texts.
func NewTransform(funcs ...any) Transform {
	out := make([]string, len(funcs))
	for i, f := range funcs {
		out[i] = Text(f)
	}
	return Transform{funcs: out}
}

func (t Transform) chain(fn string) Transform {
	out := make([]string, len(t.funcs), len(t.funcs)+1)
	copy(out, t.funcs)
	return Transform{funcs: append(out, fn)}
}

// Functions returns a copy of the function texts in order.
func (t Transform) Functions() []string {
	out := make([]string, len(t.funcs))
	copy(out, t.funcs)
	return out
}

func (t Transform) String() string {
	return strings.Join(t.funcs, " ")
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (t Transform) Rotate(angle any) Transform  { return t.chain(call("rotate", Text(angle))) }
func (t Transform) RotateX(angle any) Transform { return t.chain(call("rotateX", Text(angle))) }
func (t Transform) RotateY(angle any) Transform { return t.chain(call("rotateY", Text(angle))) }
func (t Transform) RotateZ(angle any) Transform { return t.chain(call("rotateZ", Text(angle))) }

// Scale appends scale(x) or scale(x, y). Only the first y is used.
func (t Transform) Scale(x float64, y ...float64) Transform {
	return t.chain(scaleFunc(x, y))
}

func (t Transform) ScaleX(v float64) Transform { return t.chain(call("scaleX", formatNumber(v))) }
func (t Transform) ScaleY(v float64) Transform { return t.chain(call("scaleY", formatNumber(v))) }

func (t Transform) Translate(x, y any) Transform {
	return t.chain(call("translate", Text(x), Text(y)))
}

func (t Transform) TranslateX(v any) Transform { return t.chain(call("translateX", Text(v))) }
func (t Transform) TranslateY(v any) Transform { return t.chain(call("translateY", Text(v))) }
func (t Transform) TranslateZ(v any) Transform { return t.chain(call("translateZ", Text(v))) }

func (t Transform) Skew(x, y any) Transform {
	return t.chain(call("skew", Text(x), Text(y)))
}

func (t Transform) SkewX(angle any) Transform { return t.chain(call("skewX", Text(angle))) }
func (t Transform) SkewY(angle any) Transform { return t.chain(call("skewY", Text(angle))) }

func scaleFunc(x float64, y []float64) string {
	if len(y) == 0 {
		return call("scale", formatNumber(x))
	}
	return call("scale", formatNumber(x), formatNumber(y[0]))
}

// Package-level constructors start a new chain:
//
//	Rotate(Deg(45)).Scale(1.5).TranslateX(Px(10))
//	// rotate(45deg) scale(1.5) translateX(10px)

func Rotate(angle any) Transform              { return Transform{}.Rotate(angle) }
func RotateX(angle any) Transform             { return Transform{}.RotateX(angle) }
func RotateY(angle any) Transform             { return Transform{}.RotateY(angle) }
func RotateZ(angle any) Transform             { return Transform{}.RotateZ(angle) }
func Scale(x float64, y ...float64) Transform { return Transform{}.Scale(x, y...) }
func ScaleX(v float64) Transform              { return Transform{}.ScaleX(v) }
func ScaleY(v float64) Transform              { return Transform{}.ScaleY(v) }
func Translate(x, y any) Transform            { return Transform{}.Translate(x, y) }
func TranslateX(v any) Transform              { return Transform{}.TranslateX(v) }
func TranslateY(v any) Transform              { return Transform{}.TranslateY(v) }
func TranslateZ(v any) Transform              { return Transform{}.TranslateZ(v) }
func Skew(x, y any) Transform                 { return Transform{}.Skew(x, y) }
func SkewX(angle any) Transform               { return Transform{}.SkewX(angle) }
func SkewY(angle any) Transform               { return Transform{}.SkewY(angle) }
