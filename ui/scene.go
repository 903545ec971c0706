package ui

import (
	"image/color"

	"github.com/golangdaddy/laneracer/car"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	pixelsPerUnit = 24.0
	anchor        = 0.8 // player position as a fraction of screen height
	coinRadius    = 0.5 // world units
)

var (
	playerColor  = color.RGBA{100, 150, 255, 255}
	coinColor    = color.RGBA{255, 210, 40, 255}
	coinRimColor = color.RGBA{180, 130, 0, 255}
)

func (v *View) camera() Camera {
	return Camera{
		X:       0,
		Forward: v.snap.Forward,
		AnchorY: ScreenHeight * anchor,
		Scale:   pixelsPerUnit,
	}
}

// drawScene draws the verge, road, coins, traffic and the player car
func (v *View) drawScene(screen *ebiten.Image) {
	screen.Fill(grassColor)
	cam := v.camera()
	layout := v.sim.Layout()

	if v.verge == nil {
		// Generated on first draw, once the graphics driver is up
		v.verge = Verge{Width: 160, Height: 256}.Generate(v.sim.Tuning().Seed)
	}
	drawVerge(screen, v.verge, layout, cam)
	drawRoad(screen, layout, v.snap.Segments, v.sim.Tuning().Road.SegmentLength, cam)

	h := float64(screen.Bounds().Dy())
	onScreen := func(y float64) bool {
		return y > -2*car.BodyLength*cam.Scale && y < h+2*car.BodyLength*cam.Scale
	}

	for _, c := range v.snap.Pickups {
		y := cam.ScreenY(c.Longitudinal)
		if !onScreen(y) {
			continue
		}
		x := float32(cam.ScreenX(screen, c.Lateral))
		r := float32(coinRadius * cam.Scale)
		vector.DrawFilledCircle(screen, x, float32(y), r, coinRimColor, true)
		vector.DrawFilledCircle(screen, x, float32(y), r*0.7, coinColor, true)
	}

	for _, c := range v.snap.Traffic {
		y := cam.ScreenY(c.Longitudinal)
		if !onScreen(y) {
			continue
		}
		renderCar(screen, cam.ScreenX(screen, c.Lateral), y, 0, cam.Scale, v.color(c.Color), c.Oncoming)
	}

	renderCar(screen, cam.ScreenX(screen, v.snap.Lateral), cam.ScreenY(v.snap.Forward),
		v.snap.Tilt, cam.Scale, playerColor, false)
}

// color caches parsed palette entries
func (v *View) color(hex string) color.RGBA {
	c, ok := v.palette[hex]
	if !ok {
		c = parseHex(hex)
		v.palette[hex] = c
	}
	return c
}
