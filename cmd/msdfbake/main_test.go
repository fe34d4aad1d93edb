package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/msdf/internal/manifest"
)

func TestBake(t *testing.T) {
	for _, loader := range []string{"sfnt", "typesetting"} {
		t.Run(loader, func(t *testing.T) {
			m, err := manifest.ParseString("test", `
size 24
glyphs "Ab "
shape "tri" "M0 0 L10 0 L5 8 Z"
`)
			if err != nil {
				t.Fatal(err)
			}
			m.Out = t.TempDir()

			var term bytes.Buffer
			n, err := bake(m, loader, &term)
			if err != nil {
				t.Fatalf("bake() = %v", err)
			}
			if n != 4 {
				t.Errorf("bake() wrote %d files, want 4", n)
			}

			for _, name := range []string{"U+0041.png", "U+0062.png", "U+0020.png", "tri.png"} {
				f, err := os.Open(filepath.Join(m.Out, name))
				if err != nil {
					t.Fatalf("missing output: %v", err)
				}
				cfg, err := png.DecodeConfig(f)
				f.Close()
				if err != nil {
					t.Fatalf("%s: %v", name, err)
				}
				if cfg.Width != 24 || cfg.Height != 24 {
					t.Errorf("%s: %dx%d, want 24x24", name, cfg.Width, cfg.Height)
				}
			}
			if !strings.Contains(term.String(), "tri.png") {
				t.Error("terminal preview missing shape name")
			}
		})
	}
}

func TestBakeErrors(t *testing.T) {
	m := manifest.Default()
	m.Out = t.TempDir()
	m.Glyphs = []rune("A")

	if _, err := bake(&m, "freetype", nil); err == nil {
		t.Error("bake(unknown loader) = nil error")
	}

	m.Font = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := bake(&m, "sfnt", nil); !os.IsNotExist(err) {
		t.Errorf("bake(missing font) = %v, want not-exist", err)
	}
}
