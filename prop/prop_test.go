package prop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssbuild"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name string
		decl cssbuild.Declaration
		want string
	}{
		{name: "color keyword", decl: Color(cssbuild.ColorRed), want: "color: red;"},
		{name: "color string", decl: Color("#007bff"), want: "color: #007bff;"},
		{name: "background color var", decl: BackgroundColor(cssbuild.Var("bg").Reference()), want: "background-color: var(--bg);"},
		{name: "margin shorthand", decl: Margin(cssbuild.Zero, cssbuild.Auto), want: "margin: 0 auto;"},
		{name: "padding four values", decl: Padding(cssbuild.Px(1), cssbuild.Px(2), cssbuild.Px(3), cssbuild.Px(4)), want: "padding: 1px 2px 3px 4px;"},
		{name: "border", decl: Border(cssbuild.Px(1), "solid", cssbuild.ColorGray), want: "border: 1px solid gray;"},
		{name: "border radius", decl: BorderRadius(cssbuild.Rem(0.5)), want: "border-radius: 0.5rem;"},
		{name: "font family commas", decl: FontFamily("Inter", "system-ui", "sans-serif"), want: "font-family: Inter, system-ui, sans-serif;"},
		{name: "font weight", decl: FontWeight(cssbuild.FontWeightBold), want: "font-weight: bold;"},
		{name: "display", decl: Display(cssbuild.DisplayFlex), want: "display: flex;"},
		{name: "position", decl: Position(cssbuild.PositionAbsolute), want: "position: absolute;"},
		{name: "width calc", decl: Width(cssbuild.Minus(cssbuild.Percent(100), cssbuild.Px(20))), want: "width: calc(100% - 20px);"},
		{name: "max width clamp", decl: MaxWidth(cssbuild.Clamp(cssbuild.Px(320), cssbuild.Percent(80), cssbuild.Px(960))), want: "max-width: clamp(320px, 80%, 960px);"},
		{name: "z index", decl: ZIndex(10), want: "z-index: 10;"},
		{name: "justify content", decl: JustifyContent(cssbuild.JustifyContentSpaceBetween), want: "justify-content: space-between;"},
		{name: "align items", decl: AlignItems(cssbuild.AlignItemsCenter), want: "align-items: center;"},
		{name: "flex direction", decl: FlexDirection(cssbuild.FlexDirectionColumn), want: "flex-direction: column;"},
		{name: "gap", decl: Gap(cssbuild.Rem(1), cssbuild.Rem(2)), want: "gap: 1rem 2rem;"},
		{name: "overflow", decl: OverflowX(cssbuild.OverflowScroll), want: "overflow-x: scroll;"},
		{name: "cursor", decl: Cursor(cssbuild.CursorPointer), want: "cursor: pointer;"},
		{name: "transform chain", decl: Transform(cssbuild.Rotate(cssbuild.Deg(45)).Scale(1.5)), want: "transform: rotate(45deg) scale(1.5);"},
		{name: "filter chain", decl: Filter(cssbuild.Blur(cssbuild.Px(5)).Grayscale(1)), want: "filter: blur(5px) grayscale(1);"},
		{name: "opacity number", decl: Opacity(0.5), want: "opacity: 0.5;"},
		{name: "content quoted", decl: Content(`""`), want: `content: "";`},
		{name: "animation shorthand", decl: Animation("fadeIn", "1s", "ease-in"), want: "animation: fadeIn 1s ease-in;"},
		{name: "animation name", decl: AnimationName("spin"), want: "animation-name: spin;"},
		{name: "animation iteration count", decl: AnimationIterationCount("infinite"), want: "animation-iteration-count: infinite;"},
		{name: "text align", decl: TextAlign(cssbuild.TextAlignCenter), want: "text-align: center;"},
		{name: "line height unitless", decl: LineHeight(1.5), want: "line-height: 1.5;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.decl.String())
		})
	}
}

func TestCustom(t *testing.T) {
	assert.Equal(t, "--gap: 8px;", Custom("gap", cssbuild.Px(8)).String())
	assert.Equal(t, "--gap: 8px;", Custom("--gap", "8px").String())
}

func TestProp(t *testing.T) {
	d, err := Prop("  aspect-ratio ", "16 / 9")
	require.NoError(t, err)
	assert.Equal(t, "aspect-ratio: 16 / 9;", d.String())

	_, err = Prop("   ", "x")
	var invalid *cssbuild.InvalidPropertyError
	require.True(t, errors.As(err, &invalid))
}
