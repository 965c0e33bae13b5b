package prop

import "github.com/yacobolo/cssbuild"

// Color and background.

func Color(v any) cssbuild.Declaration           { return fixed("color", v) }
func BackgroundColor(v any) cssbuild.Declaration { return fixed("background-color", v) }
func Background(v any) cssbuild.Declaration      { return fixed("background", v) }
func BackgroundImage(v any) cssbuild.Declaration { return fixed("background-image", v) }

// Font and text.

func FontSize(v any) cssbuild.Declaration       { return fixed("font-size", v) }
func FontWeight(v any) cssbuild.Declaration     { return fixed("font-weight", v) }
func TextAlign(v any) cssbuild.Declaration      { return fixed("text-align", v) }
func TextDecoration(v any) cssbuild.Declaration { return fixed("text-decoration", v) }
func LineHeight(v any) cssbuild.Declaration     { return fixed("line-height", v) }

// FontFamily joins families with commas: FontFamily("Inter", "sans-serif").
func FontFamily(families ...any) cssbuild.Declaration {
	return fixed("font-family", cssbuild.Join(", ", families...))
}

// Box model.

func Margin(values ...any) cssbuild.Declaration  { return spaced("margin", values) }
func MarginTop(v any) cssbuild.Declaration       { return fixed("margin-top", v) }
func MarginRight(v any) cssbuild.Declaration     { return fixed("margin-right", v) }
func MarginBottom(v any) cssbuild.Declaration    { return fixed("margin-bottom", v) }
func MarginLeft(v any) cssbuild.Declaration      { return fixed("margin-left", v) }
func Padding(values ...any) cssbuild.Declaration { return spaced("padding", values) }
func PaddingTop(v any) cssbuild.Declaration      { return fixed("padding-top", v) }
func PaddingRight(v any) cssbuild.Declaration    { return fixed("padding-right", v) }
func PaddingBottom(v any) cssbuild.Declaration   { return fixed("padding-bottom", v) }
func PaddingLeft(v any) cssbuild.Declaration     { return fixed("padding-left", v) }

func Border(values ...any) cssbuild.Declaration       { return spaced("border", values) }
func BorderColor(v any) cssbuild.Declaration          { return fixed("border-color", v) }
func BorderRadius(values ...any) cssbuild.Declaration { return spaced("border-radius", values) }
func Outline(v any) cssbuild.Declaration              { return fixed("outline", v) }
func BoxShadow(v any) cssbuild.Declaration            { return fixed("box-shadow", v) }

// Layout.

func Display(v any) cssbuild.Declaration   { return fixed("display", v) }
func Position(v any) cssbuild.Declaration  { return fixed("position", v) }
func Top(v any) cssbuild.Declaration       { return fixed("top", v) }
func Right(v any) cssbuild.Declaration     { return fixed("right", v) }
func Bottom(v any) cssbuild.Declaration    { return fixed("bottom", v) }
func Left(v any) cssbuild.Declaration      { return fixed("left", v) }
func ZIndex(v any) cssbuild.Declaration    { return fixed("z-index", v) }
func Width(v any) cssbuild.Declaration     { return fixed("width", v) }
func Height(v any) cssbuild.Declaration    { return fixed("height", v) }
func MinWidth(v any) cssbuild.Declaration  { return fixed("min-width", v) }
func MinHeight(v any) cssbuild.Declaration { return fixed("min-height", v) }
func MaxWidth(v any) cssbuild.Declaration  { return fixed("max-width", v) }
func MaxHeight(v any) cssbuild.Declaration { return fixed("max-height", v) }

// Flexbox and grid.

func FlexDirection(v any) cssbuild.Declaration       { return fixed("flex-direction", v) }
func FlexWrap(v any) cssbuild.Declaration            { return fixed("flex-wrap", v) }
func Flex(values ...any) cssbuild.Declaration        { return spaced("flex", values) }
func JustifyContent(v any) cssbuild.Declaration      { return fixed("justify-content", v) }
func AlignItems(v any) cssbuild.Declaration          { return fixed("align-items", v) }
func Gap(values ...any) cssbuild.Declaration         { return spaced("gap", values) }
func GridTemplateColumns(v any) cssbuild.Declaration { return fixed("grid-template-columns", v) }

// Overflow and cursor.

func Overflow(v any) cssbuild.Declaration  { return fixed("overflow", v) }
func OverflowX(v any) cssbuild.Declaration { return fixed("overflow-x", v) }
func OverflowY(v any) cssbuild.Declaration { return fixed("overflow-y", v) }
func Cursor(v any) cssbuild.Declaration    { return fixed("cursor", v) }

// Effects.

func Transform(v any) cssbuild.Declaration      { return fixed("transform", v) }
func Filter(v any) cssbuild.Declaration         { return fixed("filter", v) }
func BackdropFilter(v any) cssbuild.Declaration { return fixed("backdrop-filter", v) }
func Opacity(v any) cssbuild.Declaration        { return fixed("opacity", v) }
func Transition(v any) cssbuild.Declaration     { return fixed("transition", v) }

// Content takes the value as written, quotes included: Content(`"→"`).
func Content(v any) cssbuild.Declaration { return fixed("content", v) }

// Animation.

func Animation(values ...any) cssbuild.Declaration { return spaced("animation", values) }
func AnimationName(v any) cssbuild.Declaration     { return fixed("animation-name", v) }
func AnimationDuration(v any) cssbuild.Declaration { return fixed("animation-duration", v) }
func AnimationTimingFunction(v any) cssbuild.Declaration {
	return fixed("animation-timing-function", v)
}
func AnimationDelay(v any) cssbuild.Declaration { return fixed("animation-delay", v) }
func AnimationIterationCount(v any) cssbuild.Declaration {
	return fixed("animation-iteration-count", v)
}
func AnimationDirection(v any) cssbuild.Declaration { return fixed("animation-direction", v) }
func AnimationFillMode(v any) cssbuild.Declaration  { return fixed("animation-fill-mode", v) }
