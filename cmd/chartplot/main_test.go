package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunRendersCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	csv := "x,y,kind\n1,10,a\n2,20,b\n3,15,a\n"
	if err := os.WriteFile(in, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.svg")

	opt := &options{
		in:     in,
		kind:   "point",
		x:      "x",
		y:      "y",
		color:  "kind",
		out:    out,
		width:  500,
		height: 400,
	}
	if err := run(opt); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunRejectsUnknownMark(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(in, []byte("x,y\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opt := &options{in: in, kind: "sparkle", out: filepath.Join(dir, "o.svg"), width: 500, height: 400}
	if err := run(opt); err == nil {
		t.Fatal("unknown mark accepted")
	}
}

func TestLoadRejectsUnknownInput(t *testing.T) {
	if _, err := load("data.parquet", ""); err == nil {
		t.Fatal("unsupported input accepted")
	}
}
