package cssbuild

// LengthUnit is the suffix of a CSS length.
type LengthUnit string

// Length units
const (
	UnitPx      LengthUnit = "px"
	UnitRem     LengthUnit = "rem"
	UnitEm      LengthUnit = "em"
	UnitPercent LengthUnit = "%"
	UnitVh      LengthUnit = "vh"
	UnitVw      LengthUnit = "vw"
	UnitVmin    LengthUnit = "vmin"
	UnitVmax    LengthUnit = "vmax"
	UnitCm      LengthUnit = "cm"
	UnitMm      LengthUnit = "mm"
	UnitIn      LengthUnit = "in"
	UnitPt      LengthUnit = "pt"
	UnitPc      LengthUnit = "pc"
)

// AngleUnit is the suffix of a CSS angle.
type AngleUnit string

// Angle units
const (
	UnitDeg  AngleUnit = "deg"
	UnitRad  AngleUnit = "rad"
	UnitGrad AngleUnit = "grad"
	UnitTurn AngleUnit = "turn"
)

// Dimension is a number with a unit suffix, e.g. 10px or 45deg.
type Dimension struct {
	value float64
	unit  string
}

// NewLength creates a length dimension.
func NewLength(value float64, unit LengthUnit) Dimension {
	return Dimension{value: value, unit: string(unit)}
}

// NewAngle creates an angle dimension.
func NewAngle(value float64, unit AngleUnit) Dimension {
	return Dimension{value: value, unit: string(unit)}
}

// Length factories
func Px(v float64) Dimension      { return NewLength(v, UnitPx) }
func Rem(v float64) Dimension     { return NewLength(v, UnitRem) }
func Em(v float64) Dimension      { return NewLength(v, UnitEm) }
func Percent(v float64) Dimension { return NewLength(v, UnitPercent) }
func Vh(v float64) Dimension      { return NewLength(v, UnitVh) }
func Vw(v float64) Dimension      { return NewLength(v, UnitVw) }
func Vmin(v float64) Dimension    { return NewLength(v, UnitVmin) }
func Vmax(v float64) Dimension    { return NewLength(v, UnitVmax) }
func Cm(v float64) Dimension      { return NewLength(v, UnitCm) }
func Mm(v float64) Dimension      { return NewLength(v, UnitMm) }
func In(v float64) Dimension      { return NewLength(v, UnitIn) }
func Pt(v float64) Dimension      { return NewLength(v, UnitPt) }
func Pc(v float64) Dimension      { return NewLength(v, UnitPc) }

// Angle factories
func Deg(v float64) Dimension  { return NewAngle(v, UnitDeg) }
func Rad(v float64) Dimension  { return NewAngle(v, UnitRad) }
func Grad(v float64) Dimension { return NewAngle(v, UnitGrad) }
func Turn(v float64) Dimension { return NewAngle(v, UnitTurn) }

// Value returns the magnitude.
func (d Dimension) Value() float64 {
	return d.value
}

// Unit returns the unit suffix ("px", "%", "deg", ...).
func (d Dimension) Unit() string {
	return d.unit
}

// String renders magnitude and suffix. A zero magnitude renders as the bare
// literal "0" whatever the unit.
func (d Dimension) String() string {
	if d.value == 0 {
		return "0"
	}
	return formatNumber(d.value) + d.unit
}

// Plus returns calc(d + other).
func (d Dimension) Plus(other any) Calc {
	return Plus(d, other)
}

// Minus returns calc(d - other).
func (d Dimension) Minus(other any) Calc {
	return Minus(d, other)
}

// Times returns calc(d * other).
func (d Dimension) Times(other any) Calc {
	return Times(d, other)
}

// Divide returns calc(d / other).
func (d Dimension) Divide(other any) Calc {
	return Divide(d, other)
}
