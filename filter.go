package cssbuild

import "strings"

// Filter is an ordered list of filter functions, rendered space-separated
// as the value of the filter or backdrop-filter property.
type Filter struct {
	funcs []string
}

// NewFilter starts a chain from raw function texts.
func NewFilter(funcs ...any) Filter {
	out := make([]string, len(funcs))
	for i, f := range funcs {
		out[i] = Text(f)
	}
	return Filter{funcs: out}
}

func (f Filter) chain(fn string) Filter {
	out := make([]string, len(f.funcs), len(f.funcs)+1)
	copy(out, f.funcs)
	return Filter{funcs: append(out, fn)}
}

// Functions returns a copy of the function texts in order.
func (f Filter) Functions() []string {
	out := make([]string, len(f.funcs))
	copy(out, f.funcs)
	return out
}

func (f Filter) String() string {
	return strings.Join(f.funcs, " ")
}

func (f Filter) Blur(radius any) Filter { return f.chain(call("blur", Text(radius))) }

func (f Filter) Brightness(amount float64) Filter {
	return f.chain(call("brightness", formatNumber(amount)))
}

func (f Filter) Contrast(amount float64) Filter {
	return f.chain(call("contrast", formatNumber(amount)))
}

// DropShadow arguments are space separated, unlike the other functions.
func (f Filter) DropShadow(offsetX, offsetY, blur, color any) Filter {
	return f.chain("drop-shadow(" + Join(" ", offsetX, offsetY, blur, color) + ")")
}

func (f Filter) Grayscale(amount float64) Filter {
	return f.chain(call("grayscale", formatNumber(amount)))
}

func (f Filter) HueRotate(angle any) Filter { return f.chain(call("hue-rotate", Text(angle))) }

func (f Filter) Invert(amount float64) Filter {
	return f.chain(call("invert", formatNumber(amount)))
}

func (f Filter) Opacity(amount float64) Filter {
	return f.chain(call("opacity", formatNumber(amount)))
}

func (f Filter) Saturate(amount float64) Filter {
	return f.chain(call("saturate", formatNumber(amount)))
}

func (f Filter) Sepia(amount float64) Filter {
	return f.chain(call("sepia", formatNumber(amount)))
}

func Blur(radius any) Filter           { return Filter{}.Blur(radius) }
func Brightness(amount float64) Filter { return Filter{}.Brightness(amount) }
func Contrast(amount float64) Filter   { return Filter{}.Contrast(amount) }
func DropShadow(offsetX, offsetY, blur, color any) Filter {
	return Filter{}.DropShadow(offsetX, offsetY, blur, color)
}
func Grayscale(amount float64) Filter { return Filter{}.Grayscale(amount) }
func HueRotate(angle any) Filter      { return Filter{}.HueRotate(angle) }
func Invert(amount float64) Filter    { return Filter{}.Invert(amount) }
func Opacity(amount float64) Filter   { return Filter{}.Opacity(amount) }
func Saturate(amount float64) Filter  { return Filter{}.Saturate(amount) }
func Sepia(amount float64) Filter     { return Filter{}.Sepia(amount) }
