package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_alert.sql", "CREATE TABLE alert ();")
	writeFile(t, dir, "001_hemogram.sql", "CREATE TABLE hemogram ();")
	writeFile(t, dir, "010_indexes.sql", "CREATE INDEX idx ON hemogram (id);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	want := []int{1, 2, 10}
	for idx, v := range want {
		if migrations[idx].Version != v {
			t.Errorf("position %d: expected version %d, got %d", idx, v, migrations[idx].Version)
		}
	}
	if migrations[0].SQL != "CREATE TABLE hemogram ();" {
		t.Errorf("file content not loaded: %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_SkipsNonMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001_hemogram.sql", "CREATE TABLE hemogram ();")
	writeFile(t, dir, "README.md", "notes")
	writeFile(t, dir, "seed.sql", "INSERT INTO hemogram DEFAULT VALUES;")
	writeFile(t, dir, "abc_bad.sql", "SELECT 1;")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(migrations))
	}
	if migrations[0].Name != "001_hemogram.sql" {
		t.Errorf("unexpected migration: %s", migrations[0].Name)
	}
}

func TestLoadMigrations_MissingDirectory(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "nope"))
	if _, err := m.LoadMigrations(); err == nil {
		t.Error("expected error for missing directory")
	}
}
