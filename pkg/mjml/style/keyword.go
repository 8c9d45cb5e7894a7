package style

// Align is a horizontal alignment keyword.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (a Align) String() string { return string(a) }

// TextAlign is a text alignment keyword.
type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
	TextAlignJustify TextAlign = "justify"
)

func (a TextAlign) String() string { return string(a) }

// VerticalAlign is a vertical alignment keyword.
type VerticalAlign string

const (
	VerticalTop    VerticalAlign = "top"
	VerticalMiddle VerticalAlign = "middle"
	VerticalBottom VerticalAlign = "bottom"
)

func (a VerticalAlign) String() string { return string(a) }

// BorderStyle is a border line style.
type BorderStyle string

const (
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderSolid  BorderStyle = "solid"
)

func (s BorderStyle) String() string { return string(s) }

// FontStyle is a font style keyword.
type FontStyle string

const (
	FontNormal  FontStyle = "normal"
	FontItalic  FontStyle = "italic"
	FontOblique FontStyle = "oblique"
)

func (s FontStyle) String() string { return string(s) }

// TextDecoration is a text decoration keyword.
type TextDecoration string

const (
	DecorationUnderline   TextDecoration = "underline"
	DecorationOverline    TextDecoration = "overline"
	DecorationLineThrough TextDecoration = "line-through"
	DecorationNone        TextDecoration = "none"
)

func (d TextDecoration) String() string { return string(d) }

// TextTransform is a text transform keyword.
type TextTransform string

const (
	TransformCapitalize TextTransform = "capitalize"
	TransformUppercase  TextTransform = "uppercase"
	TransformLowercase  TextTransform = "lowercase"
	TransformNone       TextTransform = "none"
)

func (t TextTransform) String() string { return string(t) }

// Direction is a text direction keyword.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

func (d Direction) String() string { return string(d) }
