// Package manifest parses msdfbake manifests.
//
// A manifest lists what to bake, one statement per entry:
//
//	# Latin caps from the built-in font
//	font default
//	size 48
//	range 4
//	padding 2
//	glyphs "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
//	shape "arrow" "M0 0 L10 5 L0 10 Z"
//	out "atlas"
//
// Later settings override earlier ones. Glyph strings are NFC-normalized,
// so a decomposed "e" plus combining acute bakes one precomposed glyph.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalid is wrapped by every semantic manifest error.
var ErrInvalid = errors.New("manifest: invalid")

var (
	manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(manifestLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the root AST node of a manifest.
type File struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry is one manifest statement.
type Entry struct {
	Pos lexer.Position

	Font    *FontEntry   `parser:"  'font' @@"`
	Size    *float64     `parser:"| 'size' @Number"`
	Range   *float64     `parser:"| 'range' @Number"`
	Padding *float64     `parser:"| 'padding' @Number"`
	Glyphs  *StringEntry `parser:"| 'glyphs' @@"`
	Shape   *ShapeEntry  `parser:"| 'shape' @@"`
	Out     *StringEntry `parser:"| 'out' @@"`
}

// FontEntry selects a font file or the built-in default.
type FontEntry struct {
	Default bool          `parser:"  @'default'"`
	Path    StringLiteral `parser:"| @String"`
}

// StringEntry holds a single quoted argument.
type StringEntry struct {
	Value StringLiteral `parser:"@String"`
}

// ShapeEntry names an SVG path to bake.
type ShapeEntry struct {
	Name StringLiteral `parser:"@String"`
	Path StringLiteral `parser:"@String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Shape is a named vector path to bake.
type Shape struct {
	Name string
	Path string
}

// Manifest is a resolved bake manifest.
type Manifest struct {
	// Font is the font file path. Empty selects the built-in Go Regular.
	Font string

	// Size is the bitmap edge length in pixels.
	Size int

	// Range is the distance range in output pixels.
	Range float64

	// Padding is the empty margin in output pixels.
	Padding float64

	// Glyphs are the runes to bake, deduplicated in first-seen order.
	Glyphs []rune

	Shapes []Shape

	// Out is the output directory.
	Out string
}

// Default returns the settings used when a manifest does not override them.
func Default() Manifest {
	return Manifest{
		Size:    48,
		Range:   4,
		Padding: 2,
		Out:     ".",
	}
}

// Parse reads a manifest. name is used in error positions.
func Parse(name string, r io.Reader) (*Manifest, error) {
	f, err := fileParser.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return f.Resolve()
}

// ParseString parses manifest content from a string.
func ParseString(name, input string) (*Manifest, error) {
	f, err := fileParser.ParseString(name, input)
	if err != nil {
		return nil, err
	}
	return f.Resolve()
}

// Load parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(path, fh)
}

// Resolve applies the entries in order on top of Default.
func (f *File) Resolve() (*Manifest, error) {
	m := Default()
	seenRune := make(map[rune]bool)
	seenShape := make(map[string]bool)

	for _, e := range f.Entries {
		switch {
		case e.Font != nil:
			m.Font = string(e.Font.Path)
		case e.Size != nil:
			v := *e.Size
			if v < 1 || v > 16384 || v != math.Trunc(v) {
				return nil, invalid(e.Pos, "size must be a whole number in [1, 16384], got %v", v)
			}
			m.Size = int(v)
		case e.Range != nil:
			if !(*e.Range > 0) {
				return nil, invalid(e.Pos, "range must be positive, got %v", *e.Range)
			}
			m.Range = *e.Range
		case e.Padding != nil:
			if *e.Padding < 0 {
				return nil, invalid(e.Pos, "padding must not be negative, got %v", *e.Padding)
			}
			m.Padding = *e.Padding
		case e.Glyphs != nil:
			for _, r := range norm.NFC.String(string(e.Glyphs.Value)) {
				if !seenRune[r] {
					seenRune[r] = true
					m.Glyphs = append(m.Glyphs, r)
				}
			}
		case e.Shape != nil:
			name := string(e.Shape.Name)
			if name == "" {
				return nil, invalid(e.Pos, "shape name must not be empty")
			}
			if seenShape[name] {
				return nil, invalid(e.Pos, "duplicate shape %q", name)
			}
			seenShape[name] = true
			m.Shapes = append(m.Shapes, Shape{Name: name, Path: string(e.Shape.Path)})
		case e.Out != nil:
			m.Out = string(e.Out.Value)
		}
	}
	return &m, nil
}

func invalid(pos lexer.Position, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, pos, fmt.Sprintf(format, args...))
}
