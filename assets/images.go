package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"math"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"
	"golang.org/x/sync/errgroup"
)

// Shape selects the placeholder silhouette drawn when a sprite file is missing.
type Shape int

const (
	ShapeBackdrop Shape = iota
	ShapeTree
	ShapePalm
	ShapePlant
	ShapeFace
	ShapeFigure
	ShapeBody
	ShapeBones
	ShapeBird
)

// ShapeFor picks a placeholder silhouette for a plane family or variant id.
func ShapeFor(key string) Shape {
	switch key {
	case "decor1":
		return ShapeBackdrop
	case "decor2":
		return ShapeFace
	case "tree":
		return ShapeTree
	case "palm", "palm2":
		return ShapePalm
	case "plante", "plante3":
		return ShapePlant
	case "body":
		return ShapeBody
	case "bones":
		return ShapeBones
	case "bird":
		return ShapeBird
	default:
		return ShapeFigure
	}
}

// ImageRequest names one sprite strip to load.
type ImageRequest struct {
	Key    string
	Path   string // relative to the asset file system
	Frames int
	Width  int // placeholder frame size
	Height int
	Tint   color.RGBA
	Shape  Shape
}

// DecodeStrips decodes every requested strip in parallel. A missing or
// unreadable file is replaced by a placeholder strip and logged. fsys may be
// nil, in which case every strip is a placeholder.
func DecodeStrips(ctx context.Context, fsys fs.FS, reqs []ImageRequest) (map[string]image.Image, error) {
	decoded := make([]image.Image, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(fsys, req.Path)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.Printf("Warning: %s: %v, using placeholder", req.Path, err)
				}
				img = Placeholder(req)
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to decode sprite strips: %w", err)
	}

	images := make(map[string]image.Image, len(reqs))
	for i, req := range reqs {
		images[req.Key] = decoded[i]
	}
	return images, nil
}

// LoadStrips decodes the requested strips and uploads them as ebiten images.
func LoadStrips(ctx context.Context, fsys fs.FS, reqs []ImageRequest) (map[string]*ebiten.Image, error) {
	decoded, err := DecodeStrips(ctx, fsys, reqs)
	if err != nil {
		return nil, err
	}
	images := make(map[string]*ebiten.Image, len(decoded))
	for key, img := range decoded {
		images[key] = ebiten.NewImageFromImage(img)
	}
	return images, nil
}

func decodeFile(fsys fs.FS, path string) (image.Image, error) {
	if fsys == nil || path == "" {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Placeholder draws a strip of req.Frames frames side by side. Animated
// shapes vary per frame so frame stepping stays visible.
func Placeholder(req ImageRequest) *image.RGBA {
	frames := max(req.Frames, 1)
	w, h := max(req.Width, 1), max(req.Height, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w*frames, h))

	for i := 0; i < frames; i++ {
		phase := float32(i) / float32(frames)
		r := image.Rect(i*w, 0, (i+1)*w, h)
		drawShape(dst, r, req.Shape, req.Tint, phase)
	}
	return dst
}

func drawShape(dst *image.RGBA, r image.Rectangle, shape Shape, tint color.RGBA, phase float32) {
	w, h := float32(r.Dx()), float32(r.Dy())
	dark := shade(tint, 0.6)
	bob := float32(math.Sin(2*math.Pi*float64(phase))) * h * 0.015

	fill := func(c color.RGBA, paths ...func(z *vector.Rasterizer)) {
		z := vector.NewRasterizer(r.Dx(), r.Dy())
		z.DrawOp = draw.Over
		for _, p := range paths {
			p(z)
		}
		z.Draw(dst, r, image.NewUniform(c), image.Point{})
	}

	switch shape {
	case ShapeBackdrop:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			t := float64(y-r.Min.Y) / float64(r.Dy())
			c := shade(tint, 0.5+0.5*t)
			for x := r.Min.X; x < r.Max.X; x++ {
				dst.SetRGBA(x, y, c)
			}
		}
		fill(dark, rect(0, h*0.78, w, h*0.22))
	case ShapeFace:
		fill(tint, ellipse(w*0.5, h*0.5, w*0.42, h*0.46))
		fill(dark,
			ellipse(w*0.36, h*0.42, w*0.05, h*0.03),
			ellipse(w*0.64, h*0.42, w*0.05, h*0.03),
			rect(w*0.4, h*0.68, w*0.2, h*0.02))
	case ShapeTree:
		fill(dark, rect(w*0.44, h*0.45, w*0.12, h*0.55))
		fill(tint, ellipse(w*0.5, h*0.32, w*0.46, h*0.3))
	case ShapePalm:
		fill(dark, polygon(w*0.46, h, w*0.56, h, w*0.54, h*0.2, w*0.5, h*0.2))
		fill(tint,
			polygon(w*0.52, h*0.2, 0, h*0.3, w*0.1, h*0.22),
			polygon(w*0.52, h*0.2, w, h*0.3, w*0.9, h*0.22),
			polygon(w*0.52, h*0.2, w*0.15, h*0.05, w*0.3, h*0.02),
			polygon(w*0.52, h*0.2, w*0.85, h*0.05, w*0.7, h*0.02))
	case ShapePlant:
		fill(tint,
			polygon(w*0.5, h, w*0.1, h*0.1, w*0.35, h),
			polygon(w*0.5, h, w*0.5, 0, w*0.6, h),
			polygon(w*0.5, h, w*0.9, h*0.15, w*0.65, h))
	case ShapeFigure:
		fill(tint, ellipse(w*0.5, h*0.12+bob, w*0.16, h*0.09))
		fill(tint, polygon(w*0.3, h*0.22+bob, w*0.7, h*0.22+bob, w*0.78, h*0.62, w*0.22, h*0.62))
		fill(dark, rect(w*0.3, h*0.62, w*0.16, h*0.38), rect(w*0.54, h*0.62, w*0.16, h*0.38))
	case ShapeBody:
		fill(tint, ellipse(w*0.46, h*0.6, w*0.38, h*0.25+bob))
		fill(tint, ellipse(w*0.88, h*0.55, w*0.09, h*0.22))
	case ShapeBones:
		fill(tint,
			ellipse(w*0.2, h*0.6, w*0.12, h*0.28),
			rect(w*0.3, h*0.5, w*0.5, h*0.14),
			ellipse(w*0.85, h*0.58, w*0.06, h*0.18))
	case ShapeBird:
		lift := float32(math.Cos(2*math.Pi*float64(phase))) * h * 0.35
		fill(tint, ellipse(w*0.5, h*0.55, w*0.22, h*0.16))
		fill(dark,
			polygon(w*0.45, h*0.5, w*0.05, h*0.5-lift, w*0.4, h*0.62),
			polygon(w*0.55, h*0.5, w*0.95, h*0.5-lift, w*0.6, h*0.62))
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func rect(x, y, w, h float32) func(z *vector.Rasterizer) {
	return polygon(x, y, x+w, y, x+w, y+h, x, y+h)
}

func polygon(pts ...float32) func(z *vector.Rasterizer) {
	return func(z *vector.Rasterizer) {
		if len(pts) < 6 {
			return
		}
		z.MoveTo(pts[0], pts[1])
		for i := 2; i+1 < len(pts); i += 2 {
			z.LineTo(pts[i], pts[i+1])
		}
		z.ClosePath()
	}
}

// ellipse approximates an ellipse with four cubic Béziers.
func ellipse(cx, cy, rx, ry float32) func(z *vector.Rasterizer) {
	const k = 0.5523
	return func(z *vector.Rasterizer) {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
		z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
		z.ClosePath()
	}
}
