package ui

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/laneracer/road"
	"github.com/hajimehoshi/ebiten/v2"
)

// Verge paints the grass strip beside the road. The texture tiles
// vertically so it can scroll forever.
type Verge struct {
	Width  int
	Height int
}

var grassColor = color.RGBA{30, 100, 30, 255}

// Generate builds a verge tile with scattered trees and bushes
func (g Verge) Generate(seed int64) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, grassColor)
		}
	}

	// Speckle the grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < g.Height; y += 12 {
		density := 0.35 + 0.25*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 8 + rng.Intn(16) {
			if rng.Float64() > density {
				continue
			}
			if rng.Float64() < 0.3 {
				g.tree(img, x, y, rng)
			} else {
				g.bush(img, x, y, rng)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}

// set writes one pixel, wrapping vertically so the tile stays seamless
func (g Verge) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width {
		return
	}
	y = ((y % g.Height) + g.Height) % g.Height
	img.SetRGBA(x, y, c)
}

// tree draws a pine seen from above: a dark round canopy with a lighter core
func (g Verge) tree(img *image.RGBA, x, y int, rng *rand.Rand) {
	r := 6 + rng.Intn(6)
	outer := color.RGBA{uint8(15 + rng.Intn(20)), uint8(70 + rng.Intn(40)), uint8(15 + rng.Intn(20)), 255}
	inner := color.RGBA{outer.R + 15, outer.G + 30, outer.B + 10, 255}
	g.disc(img, x, y, r, outer)
	g.disc(img, x, y, r/2, inner)
}

func (g Verge) bush(img *image.RGBA, x, y int, rng *rand.Rand) {
	c := color.RGBA{uint8(40 + rng.Intn(40)), uint8(100 + rng.Intn(50)), uint8(40 + rng.Intn(40)), 255}
	g.disc(img, x, y, 2+rng.Intn(4), c)
}

func (g Verge) disc(img *image.RGBA, x, y, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

// drawVerge tiles the verge texture down both sides of the road,
// scrolled with the camera
func drawVerge(screen, tile *ebiten.Image, layout road.Layout, cam Camera) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tileH := float64(tile.Bounds().Dy())
	tileW := float64(tile.Bounds().Dx())

	roadLeft := cam.ScreenX(screen, -layout.Width/2) - cam.Scale
	roadRight := cam.ScreenX(screen, layout.Width/2) + cam.Scale

	offset := math.Mod(cam.Forward*cam.Scale, tileH)
	if offset < 0 {
		offset += tileH
	}
	for y := offset - tileH; y < float64(h); y += tileH {
		// left verge, mirrored so trees face the road
		for x := roadLeft; x > 0; x -= tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(x, y)
			screen.DrawImage(tile, op)
		}
		for x := roadRight; x < float64(w); x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(tile, op)
		}
	}
}
