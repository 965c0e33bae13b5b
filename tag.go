package cssbuild

// Tag is an HTML element name usable as a selector part.
type Tag string

// HTML elements
const (
	TagDiv    Tag = "div"
	TagSpan   Tag = "span"
	TagP      Tag = "p"
	TagA      Tag = "a"
	TagH1     Tag = "h1"
	TagH2     Tag = "h2"
	TagH3     Tag = "h3"
	TagH4     Tag = "h4"
	TagH5     Tag = "h5"
	TagH6     Tag = "h6"
	TagUl     Tag = "ul"
	TagOl     Tag = "ol"
	TagLi     Tag = "li"
	TagTable  Tag = "table"
	TagTr     Tag = "tr"
	TagTd     Tag = "td"
	TagTh     Tag = "th"
	TagThead  Tag = "thead"
	TagTbody  Tag = "tbody"
	TagTfoot  Tag = "tfoot"
	TagForm   Tag = "form"
	TagInput  Tag = "input"
	TagButton Tag = "button"
	TagLabel  Tag = "label"
	TagSelect Tag = "select"
	TagOption Tag = "option"

	TagTextarea   Tag = "textarea"
	TagSection    Tag = "section"
	TagArticle    Tag = "article"
	TagHeader     Tag = "header"
	TagFooter     Tag = "footer"
	TagNav        Tag = "nav"
	TagMain       Tag = "main"
	TagAside      Tag = "aside"
	TagImg        Tag = "img"
	TagFigure     Tag = "figure"
	TagFigcaption Tag = "figcaption"
	TagStrong     Tag = "strong"
	TagEm         Tag = "em"
	TagCode       Tag = "code"
	TagPre        Tag = "pre"
	TagBlockquote Tag = "blockquote"
	TagCite       Tag = "cite"
	TagQ          Tag = "q"
	TagDl         Tag = "dl"
	TagDt         Tag = "dt"
	TagDd         Tag = "dd"
	TagIframe     Tag = "iframe"
	TagCanvas     Tag = "canvas"
	TagSvg        Tag = "svg"
	TagVideo      Tag = "video"
	TagAudio      Tag = "audio"
	TagSource     Tag = "source"
	TagDetails    Tag = "details"
	TagSummary    Tag = "summary"
	TagMark       Tag = "mark"
	TagTime       Tag = "time"
	TagProgress   Tag = "progress"
	TagMeter      Tag = "meter"
)

func (t Tag) String() string {
	return string(t)
}

// AsSelector starts a selector with this element.
func (t Tag) AsSelector() Selector {
	return Sel(t)
}

// Rule creates "tag { ... }".
func (t Tag) Rule(decls ...Declaration) Rule {
	return NewRule(t, decls...)
}

// ChildOf returns ".parent > tag".
func (t Tag) ChildOf(parent Class) Selector {
	return Sel(parent, ">", t)
}

// DescendantOf returns ".parent tag".
func (t Tag) DescendantOf(parent Class) Selector {
	return Sel(parent, t)
}

func (t Tag) Child(parts ...any) Selector { return Sel(t).Child(parts...) }
func (t Tag) Descendant(p any) Selector   { return Sel(t).Descendant(p) }
func (t Tag) Adjacent(p any) Selector     { return Sel(t).Adjacent(p) }
func (t Tag) Sibling(p any) Selector      { return Sel(t).Sibling(p) }

func (t Tag) Hover() Selector          { return Sel(t).Hover() }
func (t Tag) Focus() Selector          { return Sel(t).Focus() }
func (t Tag) Active() Selector         { return Sel(t).Active() }
func (t Tag) FirstChild() Selector     { return Sel(t).FirstChild() }
func (t Tag) LastChild() Selector      { return Sel(t).LastChild() }
func (t Tag) NthChild(n any) Selector  { return Sel(t).NthChild(n) }
func (t Tag) NthOfType(n any) Selector { return Sel(t).NthOfType(n) }
func (t Tag) Not(negated any) Selector { return Sel(t).Not(negated) }
func (t Tag) Before() Selector         { return Sel(t).Before() }
func (t Tag) After() Selector          { return Sel(t).After() }
func (t Tag) FirstLine() Selector      { return Sel(t).FirstLine() }
func (t Tag) FirstLetter() Selector    { return Sel(t).FirstLetter() }
func (t Tag) Selection() Selector      { return Sel(t).Selection() }
func (t Tag) Placeholder() Selector    { return Sel(t).Placeholder() }

// WithAttr returns "tag[attr]".
func (t Tag) WithAttr(attr string) Selector {
	return Sel(t).WithAttr(attr)
}

// WithAttrValue returns `tag[attr="value"]`.
func (t Tag) WithAttrValue(attr string, value any) Selector {
	return Sel(t).WithAttrValue(attr, value)
}
