package cssbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueFunctions(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "min", got: Min(Px(300), Percent(50)), want: "min(300px, 50%)"},
		{name: "max", got: Max(Rem(1), Vw(2)), want: "max(1rem, 2vw)"},
		{name: "clamp", got: Clamp(Rem(1), Vw(2.5), Rem(2)), want: "clamp(1rem, 2.5vw, 2rem)"},
		{name: "rgb", got: RGB(255, 0, 128), want: "rgb(255, 0, 128)"},
		{name: "rgba", got: RGBA(0, 0, 0, 0.5), want: "rgba(0, 0, 0, 0.5)"},
		{name: "hsl", got: HSL(210, Percent(50), Percent(40)), want: "hsl(210, 50%, 40%)"},
		{name: "hsla", got: HSLA(210, "50%", "40%", 0.25), want: "hsla(210, 50%, 40%, 0.25)"},
		{name: "linear gradient", got: LinearGradient(ColorRed, ColorBlue), want: "linear-gradient(red, blue)"},
		{
			name: "linear gradient with angle",
			got:  LinearGradientAngle(Deg(90), "#fff", "#000 50%"),
			want: "linear-gradient(90deg, #fff, #000 50%)",
		},
		{
			name: "linear gradient with direction",
			got:  LinearGradientAngle("to right", ColorWhite, ColorBlack),
			want: "linear-gradient(to right, white, black)",
		},
		{name: "radial gradient", got: RadialGradient("circle", ColorYellow, ColorTransparent), want: "radial-gradient(circle, yellow, transparent)"},
		{name: "conic gradient", got: ConicGradient(ColorRed, ColorGreen), want: "conic-gradient(red, green)"},
		{name: "min with var", got: Min(Var("max_w").Reference(), Percent(100)), want: "min(var(--max-w), 100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestKeywordsRenderAsText(t *testing.T) {
	assert.Equal(t, "inline-flex", Text(DisplayInlineFlex))
	assert.Equal(t, "sticky", Text(PositionSticky))
	assert.Equal(t, "700", Text(FontWeight700))
	assert.Equal(t, "column-reverse", Text(FlexDirectionColumnReverse))
	assert.Equal(t, "space-between", Text(JustifyContentSpaceBetween))
	assert.Equal(t, "baseline", Text(AlignItemsBaseline))
	assert.Equal(t, "hidden", Text(OverflowHidden))
	assert.Equal(t, "not-allowed", Text(CursorNotAllowed))
	assert.Equal(t, "justify", Text(TextAlignJustify))
	assert.Equal(t, "currentColor", Text(ColorCurrentColor))
}
