package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

// Get returns the face for the legacy text package used by the HUD.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the face wrapped for text/v2 and ebitenui widgets.
func (f FontName) Face() text.Face {
	face, ok := wrapped[f]
	if !ok {
		face = text.NewGoXFace(getFont(f))
		wrapped[f] = face
	}
	return face
}

var (
	fonts   = map[FontName]font.Face{}
	wrapped = map[FontName]text.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(wrapped, name)
	return nil
}

// LoadAll loads every face at the given sizes. With an empty path the
// bundled Go fonts are used; they carry no CJK glyphs, so a TTF covering
// Chinese (e.g. Noto Sans SC) should be passed for real play.
func LoadAll(path string, body, title, small float64) error {
	regular, bold := goregular.TTF, gobold.TTF
	if path != "" {
		ttf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		regular, bold = ttf, ttf
	}
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Body, regular, body},
		{Bold, bold, body},
		{Title, bold, title},
		{Small, regular, small},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
