package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"scribe/config"
	"scribe/docio"
	"scribe/document"
	"scribe/engine"
	"scribe/state"
	"scribe/style"
)

// openEditor reads the document and builds an engine over it with the
// persisted heading styles hydrated.
func openEditor(env *state.LocalEnv, path string) (*document.Document, *engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open document '%s': %w", path, err)
	}
	defer f.Close()

	doc, err := docio.Read(f, env.Log)
	if err != nil {
		return nil, nil, err
	}
	doc.SetReadOnly(env.Cfg.Editor.ReadOnly)

	reg := style.NewRegistry()
	if err := env.Styles.Load(reg); err != nil {
		return nil, nil, err
	}
	return doc, engine.New(doc, reg, env.Theme, env.Log), nil
}

func writeDocument(env *state.LocalEnv, doc *document.Document, path string) error {
	if _, err := os.Stat(path); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", path)
		}
		env.Log.Warn("Overwriting existing file", zap.String("file", path))
	} else if !os.IsNotExist(err) {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create document '%s': %w", path, err)
	}
	defer f.Close()
	if err := docio.Write(f, doc); err != nil {
		return err
	}
	env.Log.Info("Document written", zap.String("path", path))
	return nil
}

func selectWholeBlock(doc *document.Document, id document.BlockID) error {
	b, ok := doc.Block(id)
	if !ok {
		return fmt.Errorf("document has no block '%s'", id)
	}
	return doc.SetSelection(document.Range(b.ID, 0, b.Len()))
}

// defaultFor maps configured editor defaults to a property's fallback value.
func defaultFor(d config.DefaultsConfig, p style.Property) any {
	switch p {
	case style.FontFamily:
		return d.FontFamily
	case style.FontSize:
		return d.FontSize
	case style.FontWeight:
		return d.FontWeight
	case style.LineHeight:
		return d.LineHeight
	case style.Color:
		return d.TextColor
	case style.TextAlign:
		return d.TextAlign
	case style.LetterSpacing:
		return 0.0
	case style.BackgroundColor:
		return ""
	default:
		return false
	}
}

// inspectProperties is every property inspect reports, in natural name order
// so fontSize sorts before fontWeight and h2 style output stays stable.
func inspectProperties() []style.Property {
	seen := make(map[style.Property]bool)
	var props []style.Property
	for _, p := range style.InlineProperties {
		if !seen[p] {
			props = append(props, p)
			seen[p] = true
		}
	}
	for _, p := range style.BlockProperties {
		if !seen[p] {
			props = append(props, p)
			seen[p] = true
		}
	}
	sort.Slice(props, func(i, j int) bool {
		return natural.Less(string(props[i]), string(props[j]))
	})
	return props
}

func inspectDocument(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one document, got %d arguments", cmd.Args().Len())
	}

	doc, eng, err := openEditor(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	only := document.BlockID(cmd.String("block"))
	props := inspectProperties()

	printed := 0
	for _, b := range doc.Blocks() {
		if only != "" && b.ID != only {
			continue
		}
		if err := doc.SetSelection(document.Range(b.ID, 0, b.Len())); err != nil {
			return err
		}
		sctx := eng.Context()
		if sctx == nil {
			continue
		}

		head := fmt.Sprintf("block %s %s", b.ID, b.Kind)
		if b.Kind == document.KindHeading {
			head = fmt.Sprintf("%s level=%d", head, b.Level)
		}
		fmt.Printf("%s %q\n", head, b.Text())

		for _, p := range props {
			v := eng.ReadStyle(sctx, p, defaultFor(env.Cfg.Editor.Defaults, p))
			fmt.Printf("  %-16s = %-24v (%s)\n", p, v.Value, v.Source)
		}
		printed++
	}

	if only != "" && printed == 0 {
		return fmt.Errorf("document has no block '%s'", only)
	}
	return nil
}

func promoteHeadingStyle(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected DOCUMENT and BLOCK_ID, got %d arguments", cmd.Args().Len())
	}
	srcPath := cmd.Args().Get(0)
	blockID := document.BlockID(cmd.Args().Get(1))

	doc, eng, err := openEditor(env, srcPath)
	if err != nil {
		return err
	}

	b, ok := doc.Block(blockID)
	if !ok {
		return fmt.Errorf("document has no block '%s'", blockID)
	}
	if b.Kind != document.KindHeading {
		return fmt.Errorf("block '%s' is a %s, only headings have a shared level style", blockID, b.Kind)
	}
	level := b.Level

	if err := selectWholeBlock(doc, blockID); err != nil {
		return err
	}
	snap := eng.CaptureBlockStyle(eng.Context())
	if snap.Len() == 0 {
		env.Log.Warn("Nothing to promote, block carries no formatting", zap.String("block", string(blockID)))
		return nil
	}

	if err := eng.AssignHeadingStyle(level, snap); err != nil {
		return err
	}
	if err := env.Styles.Save(eng.Registry()); err != nil {
		return err
	}
	env.Log.Info("Promoted block style to heading level",
		zap.String("block", string(blockID)),
		zap.Int("level", level),
		zap.Int("properties", snap.Len()))

	outPath := cmd.String("output")
	if len(outPath) == 0 {
		outPath = srcPath
	}
	return writeDocument(env, doc, outPath)
}

func listHeadingStyles(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 0 {
		env.Log.Warn("Malformed command line, command takes no arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	reg := style.NewRegistry()
	if err := env.Styles.Load(reg); err != nil {
		return err
	}

	defs := reg.Export()
	if len(defs) == 0 {
		fmt.Println("no heading styles stored")
		return nil
	}

	levels := make([]int, 0, len(defs))
	for l := range defs {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	for _, l := range levels {
		data, err := yaml.Marshal(defs[l])
		if err != nil {
			return fmt.Errorf("unable to encode heading %d style: %w", l, err)
		}
		fmt.Printf("h%d:\n", l)
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

func paintFormatting(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("expected DOCUMENT and at least one target BLOCK_ID")
	}
	srcPath := cmd.Args().Get(0)
	targets := cmd.Args().Slice()[1:]

	doc, eng, err := openEditor(env, srcPath)
	if err != nil {
		return err
	}

	if err := selectWholeBlock(doc, document.BlockID(cmd.String("from"))); err != nil {
		return err
	}

	painter := eng.NewPainter()
	if !painter.Capture() {
		return fmt.Errorf("nothing to capture from block '%s'", cmd.String("from"))
	}
	// several targets behave like painting with the modifier held down
	painter.HoldDown()
	defer painter.HoldUp()

	for _, target := range targets {
		if err := selectWholeBlock(doc, document.BlockID(target)); err != nil {
			return err
		}
		if err := painter.Apply(); err != nil {
			return fmt.Errorf("painting block '%s': %w", target, err)
		}
		env.Log.Debug("Painted block", zap.String("block", target))
	}

	outPath := cmd.String("output")
	if len(outPath) == 0 {
		outPath = srcPath
	}
	return writeDocument(env, doc, outPath)
}
