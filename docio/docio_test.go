package docio

import (
	"bytes"
	"strings"
	"testing"

	"scribe/document"
	"scribe/style"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<document>
  <block kind="heading" level="2" id="b1">
    <run bold="true" fontSize="20">Chapter One</run>
  </block>
  <block kind="paragraph" id="b2" textAlign="center" lineHeight="1.5">
    <run>plain </run>
    <run italic="true" color="#336699">emphasized</run>
  </block>
  <block kind="codeBlock" id="b3">
    <run code="true">x := 1</run>
  </block>
</document>
`

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleXML), nil)
	if err != nil {
		t.Fatal(err)
	}
	blocks := doc.Blocks()
	if len(blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(blocks))
	}

	h := blocks[0]
	if h.Kind != document.KindHeading || h.Level != 2 || h.ID != "b1" {
		t.Errorf("heading = %+v", h)
	}
	if v, ok := h.Runs[0].Marks[style.FontSize]; !ok || v != 20.0 {
		t.Errorf("fontSize = %v, %v (want float64 20)", v, ok)
	}
	if v := h.Runs[0].Marks[style.Bold]; v != true {
		t.Errorf("bold = %v", v)
	}

	p := blocks[1]
	if v, ok := p.Attrs[style.TextAlign]; !ok || v != "center" {
		t.Errorf("textAlign = %v, %v", v, ok)
	}
	if v, ok := p.Attrs[style.LineHeight]; !ok || v != 1.5 {
		t.Errorf("lineHeight = %v, %v", v, ok)
	}
	if p.Text() != "plain emphasized" {
		t.Errorf("text = %q", p.Text())
	}
	if v := p.Runs[1].Marks[style.Color]; v != "#336699" {
		t.Errorf("color = %v", v)
	}

	if blocks[2].Kind != document.KindCodeBlock {
		t.Errorf("kind = %v", blocks[2].Kind)
	}
}

func TestReadRejectsBadHeadingLevel(t *testing.T) {
	for _, bad := range []string{
		`<document><block kind="heading"><run>x</run></block></document>`,
		`<document><block kind="heading" level="7"><run>x</run></block></document>`,
		`<document><block kind="heading" level="abc"><run>x</run></block></document>`,
	} {
		if _, err := Read(strings.NewReader(bad), nil); err == nil {
			t.Errorf("accepted %s", bad)
		}
	}
}

func TestReadSkipsUnknownAttributes(t *testing.T) {
	in := `<document><block kind="paragraph" custom="x"><run blink="true">hi</run></block></document>`
	doc, err := Read(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := doc.Blocks()[0]
	if len(b.Attrs) != 0 {
		t.Errorf("attrs = %v", b.Attrs)
	}
	if len(b.Runs[0].Marks) != 0 {
		t.Errorf("marks = %v", b.Runs[0].Marks)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	h := document.NewBlock(document.KindHeading, 3, "")
	h.Runs = []document.Run{{Text: "Title", Marks: document.Marks{
		style.Bold:       true,
		style.FontFamily: "Georgia",
		style.FontSize:   18.0,
		style.FontWeight: 700,
	}}}
	p := document.NewBlock(document.KindParagraph, 0, "")
	p.Attrs[style.TextAlign] = "right"
	p.Runs = []document.Run{
		{Text: "one ", Marks: document.Marks{}},
		{Text: "two", Marks: document.Marks{style.Underline: true}},
	}
	orig := document.New(h, p)

	var buf bytes.Buffer
	if err := Write(&buf, orig); err != nil {
		t.Fatal(err)
	}
	back, err := Read(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	blocks := back.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d", len(blocks))
	}
	if blocks[0].ID != h.ID || blocks[0].Level != 3 {
		t.Errorf("heading = %+v", blocks[0])
	}
	m := blocks[0].Runs[0].Marks
	if m[style.Bold] != true || m[style.FontFamily] != "Georgia" || m[style.FontSize] != 18.0 || m[style.FontWeight] != 700 {
		t.Errorf("marks = %v", m)
	}
	if blocks[1].Attrs[style.TextAlign] != "right" {
		t.Errorf("attrs = %v", blocks[1].Attrs)
	}
	if blocks[1].Text() != "one two" {
		t.Errorf("text = %q", blocks[1].Text())
	}
	if blocks[1].Runs[1].Marks[style.Underline] != true {
		t.Errorf("underline lost: %v", blocks[1].Runs[1].Marks)
	}
}

func TestReadLatin1Encoding(t *testing.T) {
	// declared charset is honored through the charset reader
	in := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<document><block kind=\"paragraph\"><run>caf\xe9</run></block></document>"
	doc, err := Read(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Blocks()[0].Text(); got != "café" {
		t.Errorf("text = %q", got)
	}
}
