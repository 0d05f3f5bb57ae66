// Package docio reads and writes the block document as XML. The format is a
// plain structural dump: one element per block, one per run, style marks and
// block attributes carried as XML attributes. It exists so the CLI and tests
// can move documents in and out of the engine; a real host would feed its own
// document model instead.
package docio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"scribe/document"
	"scribe/style"
)

// Read parses a document from r. Unknown elements and attributes are skipped
// with a warning, malformed input fails.
func Read(r io.Reader, log *zap.Logger) (*document.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read document XML: %w", err)
	}

	root := doc.SelectElement("document")
	if root == nil {
		return nil, fmt.Errorf("document XML has no <document> root")
	}

	var blocks []*document.Block
	for _, el := range root.SelectElements("block") {
		b, err := readBlock(el, log)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return document.New(blocks...), nil
}

func readBlock(el *etree.Element, log *zap.Logger) (*document.Block, error) {
	kind := document.ParseBlockKind(el.SelectAttrValue("kind", "paragraph"))
	level := 0
	if kind == document.KindHeading {
		var err error
		level, err = strconv.Atoi(el.SelectAttrValue("level", ""))
		if err != nil || level < style.MinHeadingLevel || level > style.MaxHeadingLevel {
			return nil, fmt.Errorf("heading block with bad level %q", el.SelectAttrValue("level", ""))
		}
	}

	b := document.NewBlock(kind, level, "")
	if id := el.SelectAttrValue("id", ""); id != "" {
		b.ID = document.BlockID(id)
	}

	for _, a := range el.Attr {
		switch a.Key {
		case "kind", "level", "id":
			continue
		}
		p := style.Property(a.Key)
		if !p.IsBlockScoped() {
			log.Warn("Skipping unknown block attribute", zap.String("name", a.Key))
			continue
		}
		v, ok := parseValue(p, a.Value)
		if !ok {
			log.Warn("Skipping malformed block attribute",
				zap.String("name", a.Key), zap.String("value", a.Value))
			continue
		}
		b.Attrs[p] = v
	}

	for _, re := range el.SelectElements("run") {
		run := document.Run{Text: re.Text(), Marks: make(document.Marks)}
		for _, a := range re.Attr {
			p := style.Property(a.Key)
			if !p.IsInline() {
				log.Warn("Skipping unknown run mark", zap.String("name", a.Key))
				continue
			}
			v, ok := parseValue(p, a.Value)
			if !ok {
				log.Warn("Skipping malformed run mark",
					zap.String("name", a.Key), zap.String("value", a.Value))
				continue
			}
			run.Marks[p] = v
		}
		b.Runs = append(b.Runs, run)
	}
	return b, nil
}

// Write serializes the document to w as indented UTF-8 XML.
func Write(w io.Writer, doc *document.Document) error {
	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	root := out.CreateElement("document")
	for _, b := range doc.Blocks() {
		el := root.CreateElement("block")
		el.CreateAttr("id", string(b.ID))
		el.CreateAttr("kind", b.Kind.String())
		if b.Kind == document.KindHeading {
			el.CreateAttr("level", strconv.Itoa(b.Level))
		}
		for _, p := range style.BlockProperties {
			if v, ok := b.Attrs[p]; ok {
				if s, ok := formatValue(p, v); ok {
					el.CreateAttr(string(p), s)
				}
			}
		}
		for _, r := range b.Runs {
			re := el.CreateElement("run")
			for _, p := range style.InlineProperties {
				if v, ok := r.Marks[p]; ok {
					if s, ok := formatValue(p, v); ok {
						re.CreateAttr(string(p), s)
					}
				}
			}
			re.SetText(r.Text)
		}
	}

	out.Indent(2)
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write document XML: %w", err)
	}
	return nil
}

// parseValue converts the textual attribute form into the dynamic type the
// property carries in mark sets.
func parseValue(p style.Property, s string) (any, bool) {
	switch {
	case p.IsBoolean():
		v, err := strconv.ParseBool(s)
		return v, err == nil
	case p == style.FontWeight:
		v, err := strconv.Atoi(s)
		return v, err == nil
	case p == style.FontSize, p == style.LetterSpacing, p == style.LineHeight:
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	default:
		return s, true
	}
}

func formatValue(p style.Property, v any) (string, bool) {
	switch {
	case p.IsBoolean():
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), true
		}
	case p == style.FontWeight:
		if n, ok := v.(int); ok {
			return strconv.Itoa(n), true
		}
	case p == style.FontSize, p == style.LetterSpacing, p == style.LineHeight:
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64), true
		}
	default:
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
