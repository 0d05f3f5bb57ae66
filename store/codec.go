package store

import (
	"fmt"

	"github.com/amazon-ion/ion-go/ion"

	"scribe/style"
)

// Persisted rows carry the definition as a binary Ion blob. Ion keeps absent
// fields absent instead of zero-valued, which matches the "no opinion" nature
// of definition fields, and stays readable by other tooling.

type dividerRecord struct {
	Enabled   bool    `ion:"enabled"`
	Position  string  `ion:"position"`
	Style     string  `ion:"style"`
	Double    bool    `ion:"double"`
	Thickness float64 `ion:"thickness"`
	Distance  float64 `ion:"distance"`
	Color     string  `ion:"color,omitempty"`
}

type definitionRecord struct {
	FontFamily      *string        `ion:"fontFamily,omitempty"`
	FontSize        *float64       `ion:"fontSize,omitempty"`
	FontWeight      *int           `ion:"fontWeight,omitempty"`
	LetterSpacing   *float64       `ion:"letterSpacing,omitempty"`
	LineHeight      *float64       `ion:"lineHeight,omitempty"`
	TextColor       *string        `ion:"textColor,omitempty"`
	BackgroundColor *string        `ion:"backgroundColor,omitempty"`
	Bold            *bool          `ion:"bold,omitempty"`
	Italic          *bool          `ion:"italic,omitempty"`
	Underline       *bool          `ion:"underline,omitempty"`
	Strikethrough   *bool          `ion:"strikethrough,omitempty"`
	Divider         *dividerRecord `ion:"divider,omitempty"`
}

func encodeDefinition(def *style.Definition) ([]byte, error) {
	rec := definitionRecord{
		FontFamily:      def.FontFamily,
		FontSize:        def.FontSize,
		FontWeight:      def.FontWeight,
		LetterSpacing:   def.LetterSpacing,
		LineHeight:      def.LineHeight,
		TextColor:       def.TextColor,
		BackgroundColor: def.BackgroundColor,
		Bold:            def.Bold,
		Italic:          def.Italic,
		Underline:       def.Underline,
		Strikethrough:   def.Strikethrough,
	}
	if def.Divider != nil {
		rec.Divider = &dividerRecord{
			Enabled:   def.Divider.Enabled,
			Position:  string(def.Divider.Position),
			Style:     string(def.Divider.Style),
			Double:    def.Divider.Double,
			Thickness: def.Divider.Thickness,
			Distance:  def.Divider.Distance,
			Color:     def.Divider.Color,
		}
	}
	blob, err := ion.MarshalBinary(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding definition: %w", err)
	}
	return blob, nil
}

func decodeDefinition(blob []byte) (*style.Definition, error) {
	var rec definitionRecord
	if err := ion.Unmarshal(blob, &rec); err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	def := &style.Definition{
		FontFamily:      rec.FontFamily,
		FontSize:        rec.FontSize,
		FontWeight:      rec.FontWeight,
		LetterSpacing:   rec.LetterSpacing,
		LineHeight:      rec.LineHeight,
		TextColor:       rec.TextColor,
		BackgroundColor: rec.BackgroundColor,
		Bold:            rec.Bold,
		Italic:          rec.Italic,
		Underline:       rec.Underline,
		Strikethrough:   rec.Strikethrough,
	}
	if rec.Divider != nil {
		def.Divider = &style.Divider{
			Enabled:   rec.Divider.Enabled,
			Position:  style.DividerPosition(rec.Divider.Position),
			Style:     style.DividerStyle(rec.Divider.Style),
			Double:    rec.Divider.Double,
			Thickness: rec.Divider.Thickness,
			Distance:  rec.Divider.Distance,
			Color:     rec.Divider.Color,
		}
	}
	return def, nil
}
