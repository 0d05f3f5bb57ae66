package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"scribe/document"
	"scribe/state"
)

// Rewriting an existing document file requires explicit consent, same as any
// other destination that already exists.
func TestWriteDocumentOverwriteProtection(t *testing.T) {
	env := &state.LocalEnv{Log: zaptest.NewLogger(t)}
	doc := document.New(document.NewBlock(document.KindParagraph, 0, "text"))

	path := filepath.Join(t.TempDir(), "doc.xml")
	if err := writeDocument(env, doc, path); err != nil {
		t.Fatalf("writing to a fresh path: %v", err)
	}

	err := writeDocument(env, doc, path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("rewriting without consent = %v, want existing-file refusal", err)
	}

	env.Overwrite = true
	if err := writeDocument(env, doc, path); err != nil {
		t.Fatalf("rewriting with overwrite enabled: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
