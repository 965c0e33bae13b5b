package cssbuild

// Calc is a calc() expression built by text composition.
//
// There is no expression tree: each arithmetic call wraps the rendered text
// of its operands, so chained calls nest calc() instead of flattening it.
type Calc struct {
	expr string
}

// CalcOf wraps raw expression text, e.g. CalcOf("100% - 2rem").
func CalcOf(expr string) Calc {
	return Calc{expr: expr}
}

// Plus returns calc(a + b).
func Plus(a, b any) Calc {
	return arith(a, "+", b)
}

// Minus returns calc(a - b).
func Minus(a, b any) Calc {
	return arith(a, "-", b)
}

// Times returns calc(a * b).
func Times(a, b any) Calc {
	return arith(a, "*", b)
}

// Divide returns calc(a / b).
func Divide(a, b any) Calc {
	return arith(a, "/", b)
}

func arith(left any, op string, right any) Calc {
	return Calc{expr: Text(left) + " " + op + " " + Text(right)}
}

// Expression returns the text between the calc( and ) delimiters.
func (c Calc) Expression() string {
	return c.expr
}

func (c Calc) String() string {
	return "calc(" + c.expr + ")"
}

// Plus returns calc(c + other), with c nested as its own calc().
func (c Calc) Plus(other any) Calc {
	return Plus(c, other)
}

// Minus returns calc(c - other), with c nested as its own calc().
func (c Calc) Minus(other any) Calc {
	return Minus(c, other)
}

// Times returns calc(c * other), with c nested as its own calc().
func (c Calc) Times(other any) Calc {
	return Times(c, other)
}

// Divide returns calc(c / other), with c nested as its own calc().
func (c Calc) Divide(other any) Calc {
	return Divide(c, other)
}
