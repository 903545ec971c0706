package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/laneracer/car"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{136, 204, 255, 200}
	tyreColor       = color.RGBA{30, 30, 30, 255}
	headlightColor  = color.RGBA{255, 255, 204, 255}
	taillightColor  = color.RGBA{255, 0, 0, 255}
)

// spriteKey identifies a cached sprite
type spriteKey struct {
	body     color.RGBA
	w, h     int
	oncoming bool
}

var sprites = map[spriteKey]*ebiten.Image{}

// renderCar draws a top-down car centered on (x, y). tilt is in radians,
// scale is pixels per world unit. Oncoming cars face the bottom of the
// screen so their headlights point at the player.
func renderCar(screen *ebiten.Image, x, y, tilt, scale float64, body color.RGBA, oncoming bool) {
	carWidth := math.Max(4, car.BodyWidth*scale)
	carHeight := math.Max(6, car.BodyLength*scale)

	key := spriteKey{body: body, w: int(carWidth), h: int(carHeight), oncoming: oncoming}
	carImg, ok := sprites[key]
	if !ok {
		carImg = buildSprite(key)
		sprites[key] = carImg
	}

	op := &ebiten.DrawImageOptions{}
	// Center the car image for rotation
	op.GeoM.Translate(-float64(key.w)/2, -float64(key.h)/2)
	op.GeoM.Rotate(tilt)
	op.GeoM.Translate(x, y)
	screen.DrawImage(carImg, op)
}

func buildSprite(key spriteKey) *ebiten.Image {
	w, h := key.w, key.h
	img := ebiten.NewImage(w, h)

	// Body with a dark outline
	img.Fill(outlineColor)
	inner := ebiten.NewImage(max(1, w-2), max(1, h-2))
	inner.Fill(key.body)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(1, 1)
	img.DrawImage(inner, op)

	// Windshield sits at the front; the front is the top of the sprite
	// unless the car is oncoming
	front, rear := 0, h-max(1, h/12)
	if key.oncoming {
		front, rear = rear, front
	}
	windshieldH := max(1, h/5)
	windshieldY := h / 6
	if key.oncoming {
		windshieldY = h - h/6 - windshieldH
	}
	fillSprite(img, w/5, windshieldY, w*3/5, windshieldH, windshieldColor)

	// Wheels
	wheelW, wheelH := max(1, w/5), max(1, h/6)
	fillSprite(img, 0, h/8, wheelW, wheelH, tyreColor)
	fillSprite(img, w-wheelW, h/8, wheelW, wheelH, tyreColor)
	fillSprite(img, 0, h-h/8-wheelH, wheelW, wheelH, tyreColor)
	fillSprite(img, w-wheelW, h-h/8-wheelH, wheelW, wheelH, tyreColor)

	// Lights
	lightW, lightH := max(1, w/5), max(1, h/12)
	fillSprite(img, w/6, front, lightW, lightH, headlightColor)
	fillSprite(img, w-w/6-lightW, front, lightW, lightH, headlightColor)
	fillSprite(img, w/6, rear, lightW, lightH, taillightColor)
	fillSprite(img, w-w/6-lightW, rear, lightW, lightH, taillightColor)

	return img
}

func fillSprite(img *ebiten.Image, x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	part := ebiten.NewImage(w, h)
	part.Fill(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	img.DrawImage(part, op)
}

// parseHex converts "#rrggbb" to a color; malformed input yields grey
func parseHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{102, 102, 102, 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
