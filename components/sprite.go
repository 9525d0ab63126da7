package components

import (
	"image"

	"github.com/automoto/soliman/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteStripData binds a horizontal sprite strip to its frame animator.
// OffsetU is the published texture offset in [0,1); the drawn frame starts
// at OffsetU * sheet width.
type SpriteStripData struct {
	Strip   *animations.Strip
	Image   *ebiten.Image
	OffsetU float64

	frames map[int]*ebiten.Image
}

// Frame returns the sub-image selected by OffsetU, cached per frame index.
func (s *SpriteStripData) Frame() *ebiten.Image {
	if s.Image == nil || s.Strip == nil {
		return nil
	}
	count := s.Strip.FrameCount
	index := int(s.OffsetU*float64(count) + 0.5)
	if index >= count {
		index = 0
	}
	if img, ok := s.frames[index]; ok {
		return img
	}

	b := s.Image.Bounds()
	fw := b.Dx() / count
	x := b.Min.X + index*fw
	frame := s.Image.SubImage(image.Rect(x, b.Min.Y, x+fw, b.Max.Y)).(*ebiten.Image)

	if s.frames == nil {
		s.frames = make(map[int]*ebiten.Image)
	}
	s.frames[index] = frame
	return frame
}

var SpriteStrip = donburi.NewComponentType[SpriteStripData]()
