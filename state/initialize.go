package state

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"scribe/store"
	"scribe/theme"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// InitializeEditor prepares the editor collaborators from the loaded
// configuration: the theme (external stylesheet or the embedded default) and
// the styles database (in-memory when no path is configured).
func (e *LocalEnv) InitializeEditor() error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}

	if path := e.Cfg.Editor.Theme.StylesheetPath; len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read theme stylesheet: %w", err)
		}
		t, err := theme.New(data, e.Log)
		if err != nil {
			return fmt.Errorf("unable to parse theme stylesheet %s: %w", path, err)
		}
		e.Theme = t
		e.Rpt.StoreData("theme.css", data)
		e.Log.Debug("Using external theme", zap.String("path", path))
	} else {
		e.Theme = theme.Default(e.Log)
		e.Log.Debug("Using embedded theme")
	}

	dbPath := e.Cfg.Editor.Storage.StylesPath
	if len(dbPath) == 0 {
		dbPath = ":memory:"
	} else {
		e.Rpt.Store("styles.db", dbPath)
	}
	st, err := store.Open(dbPath, e.Log)
	if err != nil {
		return fmt.Errorf("unable to open styles storage: %w", err)
	}
	e.Styles = st
	return nil
}

// CloseEditor releases editor collaborators.
func (e *LocalEnv) CloseEditor() error {
	if e.Styles == nil {
		return nil
	}
	err := e.Styles.Close()
	e.Styles = nil
	return err
}
