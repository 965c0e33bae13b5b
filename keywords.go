package cssbuild

// Keyword types name the common values of frequently used properties.
// They are plain strings; any other keyword can be passed as a string.

type Color string

const (
	ColorBlack        Color = "black"
	ColorWhite        Color = "white"
	ColorRed          Color = "red"
	ColorGreen        Color = "green"
	ColorBlue         Color = "blue"
	ColorYellow       Color = "yellow"
	ColorOrange       Color = "orange"
	ColorPurple       Color = "purple"
	ColorPink         Color = "pink"
	ColorGray         Color = "gray"
	ColorLightGray    Color = "lightgray"
	ColorDarkGray     Color = "darkgray"
	ColorLightBlue    Color = "lightblue"
	ColorTransparent  Color = "transparent"
	ColorCurrentColor Color = "currentColor"
)

func (c Color) String() string { return string(c) }

type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayFlex        Display = "flex"
	DisplayInlineFlex  Display = "inline-flex"
	DisplayGrid        Display = "grid"
	DisplayInlineGrid  Display = "inline-grid"
	DisplayContents    Display = "contents"
	DisplayNone        Display = "none"
)

func (d Display) String() string { return string(d) }

type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
	PositionSticky   Position = "sticky"
)

func (p Position) String() string { return string(p) }

type FontWeight string

const (
	FontWeightNormal  FontWeight = "normal"
	FontWeightBold    FontWeight = "bold"
	FontWeightBolder  FontWeight = "bolder"
	FontWeightLighter FontWeight = "lighter"
	FontWeight100     FontWeight = "100"
	FontWeight200     FontWeight = "200"
	FontWeight300     FontWeight = "300"
	FontWeight400     FontWeight = "400"
	FontWeight500     FontWeight = "500"
	FontWeight600     FontWeight = "600"
	FontWeight700     FontWeight = "700"
	FontWeight800     FontWeight = "800"
	FontWeight900     FontWeight = "900"
)

func (w FontWeight) String() string { return string(w) }

type FlexDirection string

const (
	FlexDirectionRow           FlexDirection = "row"
	FlexDirectionRowReverse    FlexDirection = "row-reverse"
	FlexDirectionColumn        FlexDirection = "column"
	FlexDirectionColumnReverse FlexDirection = "column-reverse"
)

func (f FlexDirection) String() string { return string(f) }

type JustifyContent string

const (
	JustifyContentFlexStart    JustifyContent = "flex-start"
	JustifyContentFlexEnd      JustifyContent = "flex-end"
	JustifyContentCenter       JustifyContent = "center"
	JustifyContentSpaceBetween JustifyContent = "space-between"
	JustifyContentSpaceAround  JustifyContent = "space-around"
	JustifyContentSpaceEvenly  JustifyContent = "space-evenly"
)

func (j JustifyContent) String() string { return string(j) }

type AlignItems string

const (
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsBaseline  AlignItems = "baseline"
	AlignItemsStretch   AlignItems = "stretch"
)

func (a AlignItems) String() string { return string(a) }

type Overflow string

const (
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowScroll  Overflow = "scroll"
	OverflowAuto    Overflow = "auto"
	OverflowClip    Overflow = "clip"
)

func (o Overflow) String() string { return string(o) }

type Cursor string

const (
	CursorAuto       Cursor = "auto"
	CursorDefault    Cursor = "default"
	CursorPointer    Cursor = "pointer"
	CursorMove       Cursor = "move"
	CursorText       Cursor = "text"
	CursorWait       Cursor = "wait"
	CursorHelp       Cursor = "help"
	CursorNotAllowed Cursor = "not-allowed"
	CursorGrab       Cursor = "grab"
	CursorGrabbing   Cursor = "grabbing"
)

func (c Cursor) String() string { return string(c) }

type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignRight   TextAlign = "right"
	TextAlignCenter  TextAlign = "center"
	TextAlignJustify TextAlign = "justify"
	TextAlignStart   TextAlign = "start"
	TextAlignEnd     TextAlign = "end"
)

func (t TextAlign) String() string { return string(t) }
