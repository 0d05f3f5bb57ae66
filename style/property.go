// Package style defines typographic properties, heading level shared style
// definitions and the registry holding them. It is the leaf of the engine:
// nothing here knows about documents or selections.
package style

// Property names a single visual property a run, a block or a heading level
// definition can carry. Values are kept as `any` the same way the document
// keeps them: string for families/colors/alignment, float64 for sizes and
// ratios, int for weights, bool for emphasis marks.
type Property string

const (
	FontFamily    Property = "fontFamily"
	FontSize      Property = "fontSize"   // points
	FontWeight    Property = "fontWeight" // 100..900
	LetterSpacing Property = "letterSpacing"
	LineHeight    Property = "lineHeight" // unitless ratio
	Color         Property = "color"
	Bold          Property = "bold"
	Italic        Property = "italic"
	Underline     Property = "underline"
	Strikethrough Property = "strikethrough"
	Code          Property = "code"

	// Block scoped attributes. These are set on the block itself, never on
	// inline runs.
	BackgroundColor Property = "backgroundColor"
	TextAlign       Property = "textAlign"
)

// InlineProperties lists everything that can live on a run as an inline mark,
// in a stable order used by capture and the format painter.
var InlineProperties = []Property{
	FontFamily, FontSize, FontWeight, LetterSpacing, LineHeight, Color,
	Bold, Italic, Underline, Strikethrough, Code,
}

// BlockProperties lists block scoped attributes.
var BlockProperties = []Property{
	LineHeight, LetterSpacing, BackgroundColor, TextAlign,
}

// IsBoolean reports whether the property is a boolean emphasis mark.
func (p Property) IsBoolean() bool {
	switch p {
	case Bold, Italic, Underline, Strikethrough, Code:
		return true
	}
	return false
}

// IsInline reports whether the property can be carried by a run mark.
func (p Property) IsInline() bool {
	for _, ip := range InlineProperties {
		if p == ip {
			return true
		}
	}
	return false
}

// IsBlockScoped reports whether the property can be carried by a block
// attribute. LineHeight and LetterSpacing live on both levels: a run mark
// (instance override) and a block attribute.
func (p Property) IsBlockScoped() bool {
	for _, bp := range BlockProperties {
		if p == bp {
			return true
		}
	}
	return false
}

// Source identifies the authority a resolved value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceBlockAttribute
	SourceHeadingLevelShared
	SourceInstanceMark
)

func (s Source) String() string {
	switch s {
	case SourceInstanceMark:
		return "instanceMark"
	case SourceHeadingLevelShared:
		return "headingLevelShared"
	case SourceBlockAttribute:
		return "blockAttribute"
	default:
		return "default"
	}
}

// Value is a resolved property value tagged with its authority.
// It is never persisted, always recomputed.
type Value struct {
	Property Property
	Value    any
	Source   Source
}

// IsCustomized is true whenever the value did not fall through to the
// caller supplied default.
func (v Value) IsCustomized() bool {
	return v.Source != SourceDefault
}
