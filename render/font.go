package render

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Font is a banner glyph font: each glyph is a fixed-height block of rows
// where any non-space rune marks a filled cell. Only digits and ':' are
// needed for the score display.
type Font struct {
	Height int
	glyphs map[rune][]string
}

// builtinGlyphs is the default 5-row font used when no font file is
// configured.
var builtinGlyphs = map[rune][]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" #", " #", " #", " #", " #"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	':': {" ", "#", " ", "#", " "},
	' ': {" ", " ", " ", " ", " "},
}

// BuiltinFont returns the embedded default score font
func BuiltinFont() *Font {
	return &Font{Height: 5, glyphs: builtinGlyphs}
}

// LoadFont reads a banner font file. Format:
//
//	height <N>
//	glyph <rune>
//	<N rows of glyph art>
//	glyph <rune>
//	...
//
// Blank lines between glyph blocks are ignored. The error names the path so
// a missing or malformed font is diagnosable at startup.
func LoadFont(path string) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load score font %q", path)
	}
	defer f.Close()

	font := &Font{glyphs: make(map[rune][]string)}
	scanner := bufio.NewScanner(f)
	line := 0

	readLine := func() (string, bool) {
		for scanner.Scan() {
			line++
			text := scanner.Text()
			if strings.TrimSpace(text) != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := readLine()
	if !ok || !strings.HasPrefix(header, "height ") {
		return nil, errors.Errorf("score font %q: missing height header", path)
	}
	font.Height, err = strconv.Atoi(strings.TrimPrefix(header, "height "))
	if err != nil || font.Height <= 0 {
		return nil, errors.Errorf("score font %q: invalid height %q", path, header)
	}

	for {
		decl, ok := readLine()
		if !ok {
			break
		}
		name := strings.TrimPrefix(decl, "glyph ")
		if name == decl || len([]rune(name)) != 1 {
			return nil, errors.Errorf("score font %q line %d: expected \"glyph <rune>\", got %q", path, line, decl)
		}
		r := []rune(name)[0]

		rows := make([]string, 0, font.Height)
		for i := 0; i < font.Height; i++ {
			if !scanner.Scan() {
				return nil, errors.Errorf("score font %q: glyph %q truncated", path, r)
			}
			line++
			rows = append(rows, scanner.Text())
		}
		font.glyphs[r] = rows
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read score font %q", path)
	}

	for _, required := range "0123456789:" {
		if _, ok := font.glyphs[required]; !ok {
			return nil, errors.Errorf("score font %q: missing glyph %q", path, required)
		}
	}
	if _, ok := font.glyphs[' ']; !ok {
		font.glyphs[' '] = []string{" "}
	}
	return font, nil
}

// Render lays out text as font rows. Unknown runes render as spaces.
// Glyphs are separated by a single blank column.
func (f *Font) Render(text string) []string {
	rows := make([]string, f.Height)
	for i, r := range text {
		glyph, ok := f.glyphs[r]
		if !ok {
			glyph = f.glyphs[' ']
		}
		width := 0
		for _, row := range glyph {
			if len(row) > width {
				width = len(row)
			}
		}
		for y := 0; y < f.Height; y++ {
			var row string
			if y < len(glyph) {
				row = glyph[y]
			}
			rows[y] += row + strings.Repeat(" ", width-len(row))
			if i < len(text)-1 {
				rows[y] += " "
			}
		}
	}
	return rows
}
