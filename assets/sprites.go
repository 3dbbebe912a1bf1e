package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/herbclinic/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette colors one procedurally drawn character.
type Palette struct {
	Robe color.RGBA
	Skin color.RGBA
	Hat  color.RGBA
}

var (
	PlayerPalette = Palette{Robe: config.Jade, Skin: color.RGBA{R: 240, G: 205, B: 170, A: 255}, Hat: config.Ink}
	NPCPalette    = Palette{Robe: config.Cinnabar, Skin: color.RGBA{R: 230, G: 195, B: 160, A: 255}, Hat: config.Gold}
)

type AnimationLoader struct {
	sheets     map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		sheets:     make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

var animationLoader = NewAnimationLoader()

// GetSheet returns the sprite sheet for a character state, painting it on
// first use. Frames are laid out left to right, w by h each.
func GetSheet(key string, state config.StateID, pal Palette, w, h int) *ebiten.Image {
	return animationLoader.sheet(key, state, pal, w, h)
}

// GetFrame returns a cached sub-image for one animation frame.
func GetFrame(key string, state config.StateID, pal Palette, frame, w, h int) *ebiten.Image {
	return animationLoader.frame(key, state, pal, frame, w, h)
}

func (l *AnimationLoader) sheet(key string, state config.StateID, pal Palette, w, h int) *ebiten.Image {
	id := fmt.Sprintf("%s/%s", key, state)
	if img, ok := l.sheets[id]; ok {
		return img
	}
	def := config.CharacterAnimations[key][state]
	frames := def.Last + 1
	if frames < 1 {
		frames = 1
	}
	sheet := ebiten.NewImage(w*frames, h)
	for i := 0; i < frames; i++ {
		paintCharacter(sheet, i*w, w, h, state, i, pal)
	}
	l.sheets[id] = sheet
	return sheet
}

func (l *AnimationLoader) frame(key string, state config.StateID, pal Palette, frame, w, h int) *ebiten.Image {
	id := fmt.Sprintf("%s/%s/%d", key, state, frame)
	if img, ok := l.frameCache[id]; ok {
		return img
	}
	sheet := l.sheet(key, state, pal, w, h)
	sx := frame * w
	img := sheet.SubImage(image.Rect(sx, 0, sx+w, h)).(*ebiten.Image)
	l.frameCache[id] = img
	return img
}

// paintCharacter draws a robed figure. Walk frames alternate the feet and
// bob the body by a pixel; idle frames only breathe.
func paintCharacter(dst *ebiten.Image, x0, w, h int, state config.StateID, frame int, pal Palette) {
	fx, fw, fh := float32(x0), float32(w), float32(h)
	bob := float32(0)
	if frame%2 == 1 {
		bob = 1
	}

	// Feet
	footW := fw / 4
	leftLift, rightLift := float32(0), float32(0)
	if state == config.Walk {
		switch frame % 4 {
		case 1:
			leftLift = 3
		case 3:
			rightLift = 3
		}
	}
	vector.DrawFilledRect(dst, fx+fw/4-footW/2, fh-5-leftLift, footW, 5, config.Ink, false)
	vector.DrawFilledRect(dst, fx+3*fw/4-footW/2, fh-5-rightLift, footW, 5, config.Ink, false)

	// Robe
	vector.DrawFilledRect(dst, fx+2, fh*0.35+bob, fw-4, fh*0.6-bob, pal.Robe, false)
	vector.StrokeRect(dst, fx+2, fh*0.35+bob, fw-4, fh*0.6-bob, 1, config.Ink, false)

	// Head and hat
	vector.DrawFilledCircle(dst, fx+fw/2, fh*0.22+bob, fw*0.3, pal.Skin, true)
	vector.DrawFilledRect(dst, fx+fw*0.2, bob, fw*0.6, fh*0.1, pal.Hat, false)
}
