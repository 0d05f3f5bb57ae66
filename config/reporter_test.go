package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()

	extra := filepath.Join(dir, "styles.db")
	if err := os.WriteFile(extra, []byte("not really a database"), 0644); err != nil {
		t.Fatal(err)
	}

	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}

	rpt.StoreData("config/config.yaml", []byte("version: 1\n"))
	rpt.Store("styles.db", extra)
	if err := rpt.Close(); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	got := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatal(err)
		}
		got[f.Name] = string(data)
	}

	if _, ok := got["MANIFEST"]; !ok {
		t.Error("report has no MANIFEST")
	}
	if got["config/config.yaml"] != "version: 1\n" {
		t.Errorf("config entry = %q", got["config/config.yaml"])
	}
	if got["styles.db"] != "not really a database" {
		t.Errorf("styles.db entry = %q", got["styles.db"])
	}
}

func TestNilReportIsSafe(t *testing.T) {
	var rpt *Report
	rpt.Store("name", "path")
	rpt.StoreData("name", []byte("data"))
	if rpt.Name() != "" {
		t.Error("nil report has a name")
	}
	if err := rpt.Close(); err != nil {
		t.Error(err)
	}
}
