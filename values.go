package cssbuild

// Min renders min(a, b, ...).
func Min(values ...any) string {
	return "min(" + Join(", ", values...) + ")"
}

// Max renders max(a, b, ...).
func Max(values ...any) string {
	return "max(" + Join(", ", values...) + ")"
}

// Clamp renders clamp(min, preferred, max).
func Clamp(minimum, preferred, maximum any) string {
	return "clamp(" + Join(", ", minimum, preferred, maximum) + ")"
}

func RGB(r, g, b int) string {
	return "rgb(" + Join(", ", r, g, b) + ")"
}

func RGBA(r, g, b int, alpha float64) string {
	return "rgba(" + Join(", ", r, g, b, alpha) + ")"
}

// HSL takes saturation and lightness as percentages, e.g. HSL(210, Percent(50), Percent(40)).
func HSL(hue int, saturation, lightness any) string {
	return "hsl(" + Join(", ", hue, saturation, lightness) + ")"
}

func HSLA(hue int, saturation, lightness any, alpha float64) string {
	return "hsla(" + Join(", ", hue, saturation, lightness, alpha) + ")"
}

func LinearGradient(stops ...any) string {
	return "linear-gradient(" + Join(", ", stops...) + ")"
}

// LinearGradientAngle renders linear-gradient(angle, stops...). The angle may
// also be a direction such as "to right".
func LinearGradientAngle(angle any, stops ...any) string {
	return "linear-gradient(" + Join(", ", append([]any{angle}, stops...)...) + ")"
}

func RadialGradient(stops ...any) string {
	return "radial-gradient(" + Join(", ", stops...) + ")"
}

func ConicGradient(stops ...any) string {
	return "conic-gradient(" + Join(", ", stops...) + ")"
}
