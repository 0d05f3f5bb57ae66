package style

import "fmt"

// Heading levels run 1 through 6.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// DividerPosition places the heading divider relative to the heading text.
type DividerPosition string

const (
	DividerBelow DividerPosition = "below"
	DividerAbove DividerPosition = "above"
	DividerBoth  DividerPosition = "both"
)

// DividerStyle selects the divider line pattern.
type DividerStyle string

const (
	DividerSolid  DividerStyle = "solid"
	DividerDashed DividerStyle = "dashed"
	DividerDotted DividerStyle = "dotted"
)

// Divider bounds. Thickness is in points, distance in line units.
const (
	MinDividerThickness = 0.25
	MaxDividerThickness = 10.0
	MinDividerDistance  = 0.0
	MaxDividerDistance  = 5.0
)

// Divider describes an optional rule drawn with headings of a level.
type Divider struct {
	Enabled   bool            `yaml:"enabled"`
	Position  DividerPosition `yaml:"position"`
	Style     DividerStyle    `yaml:"style"`
	Double    bool            `yaml:"double"`
	Thickness float64         `yaml:"thickness"`
	Distance  float64         `yaml:"distance"`
	Color     string          `yaml:"color"`
}

// Validate checks divider fields against their documented bounds. The
// registry rejects out of range dividers without touching stored state.
func (d Divider) Validate() error {
	switch d.Position {
	case DividerBelow, DividerAbove, DividerBoth:
	default:
		return fmt.Errorf("invalid divider position %q", string(d.Position))
	}
	switch d.Style {
	case DividerSolid, DividerDashed, DividerDotted:
	default:
		return fmt.Errorf("invalid divider style %q", string(d.Style))
	}
	if d.Thickness < MinDividerThickness || d.Thickness > MaxDividerThickness {
		return fmt.Errorf("divider thickness %g out of range [%g, %g]", d.Thickness, MinDividerThickness, MaxDividerThickness)
	}
	if d.Distance < MinDividerDistance || d.Distance > MaxDividerDistance {
		return fmt.Errorf("divider distance %g out of range [%g, %g]", d.Distance, MinDividerDistance, MaxDividerDistance)
	}
	return nil
}

// Definition is the shared style for one heading level. Every field is
// optional - absent means "no opinion, fall through to the next authority".
type Definition struct {
	FontFamily      *string  `yaml:"font_family,omitempty"`
	FontSize        *float64 `yaml:"font_size,omitempty"`
	FontWeight      *int     `yaml:"font_weight,omitempty"`
	LetterSpacing   *float64 `yaml:"letter_spacing,omitempty"`
	LineHeight      *float64 `yaml:"line_height,omitempty"`
	TextColor       *string  `yaml:"text_color,omitempty"`
	BackgroundColor *string  `yaml:"background_color,omitempty"`
	Bold            *bool    `yaml:"bold,omitempty"`
	Italic          *bool    `yaml:"italic,omitempty"`
	Underline       *bool    `yaml:"underline,omitempty"`
	Strikethrough   *bool    `yaml:"strikethrough,omitempty"`
	Divider         *Divider `yaml:"divider,omitempty"`
}

// Get returns the definition's opinion on a property if it has one.
// TextColor answers for the Color property, Divider is not a property.
func (d *Definition) Get(p Property) (any, bool) {
	if d == nil {
		return nil, false
	}
	switch p {
	case FontFamily:
		if d.FontFamily != nil {
			return *d.FontFamily, true
		}
	case FontSize:
		if d.FontSize != nil {
			return *d.FontSize, true
		}
	case FontWeight:
		if d.FontWeight != nil {
			return *d.FontWeight, true
		}
	case LetterSpacing:
		if d.LetterSpacing != nil {
			return *d.LetterSpacing, true
		}
	case LineHeight:
		if d.LineHeight != nil {
			return *d.LineHeight, true
		}
	case Color:
		if d.TextColor != nil {
			return *d.TextColor, true
		}
	case BackgroundColor:
		if d.BackgroundColor != nil {
			return *d.BackgroundColor, true
		}
	case Bold:
		if d.Bold != nil {
			return *d.Bold, true
		}
	case Italic:
		if d.Italic != nil {
			return *d.Italic, true
		}
	case Underline:
		if d.Underline != nil {
			return *d.Underline, true
		}
	case Strikethrough:
		if d.Strikethrough != nil {
			return *d.Strikethrough, true
		}
	}
	return nil, false
}

// Set records the definition's opinion on a property. Values of the wrong
// dynamic type are ignored - absence is a valid value, a malformed one is not
// worth failing over.
func (d *Definition) Set(p Property, value any) {
	switch p {
	case FontFamily:
		if v, ok := value.(string); ok {
			d.FontFamily = &v
		}
	case FontSize:
		if v, ok := toFloat(value); ok {
			d.FontSize = &v
		}
	case FontWeight:
		if v, ok := toInt(value); ok {
			d.FontWeight = &v
		}
	case LetterSpacing:
		if v, ok := toFloat(value); ok {
			d.LetterSpacing = &v
		}
	case LineHeight:
		if v, ok := toFloat(value); ok {
			d.LineHeight = &v
		}
	case Color:
		if v, ok := value.(string); ok {
			d.TextColor = &v
		}
	case BackgroundColor:
		if v, ok := value.(string); ok {
			d.BackgroundColor = &v
		}
	case Bold:
		if v, ok := value.(bool); ok {
			d.Bold = &v
		}
	case Italic:
		if v, ok := value.(bool); ok {
			d.Italic = &v
		}
	case Underline:
		if v, ok := value.(bool); ok {
			d.Underline = &v
		}
	case Strikethrough:
		if v, ok := value.(bool); ok {
			d.Strikethrough = &v
		}
	}
}

// Unset drops the definition's opinion on a property.
func (d *Definition) Unset(p Property) {
	switch p {
	case FontFamily:
		d.FontFamily = nil
	case FontSize:
		d.FontSize = nil
	case FontWeight:
		d.FontWeight = nil
	case LetterSpacing:
		d.LetterSpacing = nil
	case LineHeight:
		d.LineHeight = nil
	case Color:
		d.TextColor = nil
	case BackgroundColor:
		d.BackgroundColor = nil
	case Bold:
		d.Bold = nil
	case Italic:
		d.Italic = nil
	case Underline:
		d.Underline = nil
	case Strikethrough:
		d.Strikethrough = nil
	}
}

// Empty reports whether the definition carries no opinion at all.
func (d *Definition) Empty() bool {
	if d == nil {
		return true
	}
	return d.FontFamily == nil && d.FontSize == nil && d.FontWeight == nil &&
		d.LetterSpacing == nil && d.LineHeight == nil && d.TextColor == nil &&
		d.BackgroundColor == nil && d.Bold == nil && d.Italic == nil &&
		d.Underline == nil && d.Strikethrough == nil && d.Divider == nil
}

// Clone returns a deep copy.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	c := &Definition{}
	c.FontFamily = clonePtr(d.FontFamily)
	c.FontSize = clonePtr(d.FontSize)
	c.FontWeight = clonePtr(d.FontWeight)
	c.LetterSpacing = clonePtr(d.LetterSpacing)
	c.LineHeight = clonePtr(d.LineHeight)
	c.TextColor = clonePtr(d.TextColor)
	c.BackgroundColor = clonePtr(d.BackgroundColor)
	c.Bold = clonePtr(d.Bold)
	c.Italic = clonePtr(d.Italic)
	c.Underline = clonePtr(d.Underline)
	c.Strikethrough = clonePtr(d.Strikethrough)
	if d.Divider != nil {
		div := *d.Divider
		c.Divider = &div
	}
	return c
}

// Properties returns every property the definition has an opinion on, in
// InlineProperties/BlockProperties order. Divider is not included.
func (d *Definition) Properties() []Property {
	var out []Property
	seen := make(map[Property]bool)
	for _, p := range InlineProperties {
		if _, ok := d.Get(p); ok {
			out = append(out, p)
			seen[p] = true
		}
	}
	for _, p := range BlockProperties {
		if seen[p] {
			continue
		}
		if _, ok := d.Get(p); ok {
			out = append(out, p)
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
