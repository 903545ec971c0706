package ui

import (
	"image/color"

	"github.com/golangdaddy/laneracer/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Camera maps world coordinates onto the screen. Forward runs up the screen,
// positive lateral runs right.
type Camera struct {
	X       float64 // world lateral under the screen center
	Forward float64 // world forward coordinate drawn at AnchorY
	AnchorY float64 // screen Y of the camera's forward coordinate
	Scale   float64 // pixels per world unit
}

// ScreenX converts a world lateral position to screen X
func (c Camera) ScreenX(screen *ebiten.Image, x float64) float64 {
	return float64(screen.Bounds().Dx())/2 + (x-c.X)*c.Scale
}

// ScreenY converts a world forward position to screen Y
func (c Camera) ScreenY(forward float64) float64 {
	return c.AnchorY - (forward-c.Forward)*c.Scale
}

var (
	surfaceColor = color.RGBA{51, 51, 64, 255}
	edgeColor    = color.RGBA{255, 255, 255, 255}
	centerColor  = color.RGBA{255, 204, 0, 255}
	barrierColor = color.RGBA{136, 136, 136, 255}
)

const (
	dashLength = 3.0 // world units
	dashGap    = 4.0
)

// drawRoad renders every segment in the window
func drawRoad(screen *ebiten.Image, l road.Layout, window road.SegmentRange, segmentLength float64, cam Camera) {
	for index := window.First; index <= window.Last; index++ {
		drawSegment(screen, l, index, segmentLength, cam)
	}
}

func drawSegment(screen *ebiten.Image, l road.Layout, index int, segmentLength float64, cam Camera) {
	height := float64(screen.Bounds().Dy())

	start := road.SegmentStart(index, segmentLength)
	top := cam.ScreenY(start + segmentLength)
	bottom := cam.ScreenY(start)
	if bottom < 0 || top > height {
		return // off screen
	}

	half := l.Width / 2
	left := cam.ScreenX(screen, -half)
	right := cam.ScreenX(screen, half)

	// Surface and barriers
	fillRect(screen, left, top, right-left, bottom-top, surfaceColor)
	barrier := 0.3 * cam.Scale
	fillRect(screen, left-2*barrier, top, barrier, bottom-top, barrierColor)
	fillRect(screen, right+barrier, top, barrier, bottom-top, barrierColor)

	// Solid edges
	edge := 0.15 * cam.Scale
	fillRect(screen, left+0.1*cam.Scale-edge/2, top, edge, bottom-top, edgeColor)
	fillRect(screen, right-0.1*cam.Scale-edge/2, top, edge, bottom-top, edgeColor)

	// Double yellow center divider
	line := 0.08 * cam.Scale
	fillRect(screen, cam.ScreenX(screen, -0.12)-line/2, top, line, bottom-top, centerColor)
	fillRect(screen, cam.ScreenX(screen, 0.12)-line/2, top, line, bottom-top, centerColor)

	// Dashed dividers between neighbouring lanes on the same side
	for i := 1; i < len(l.Lanes); i++ {
		a, b := l.Lanes[i-1], l.Lanes[i]
		if (a < 0) != (b < 0) {
			continue // the center divider already separates these
		}
		x := cam.ScreenX(screen, (a+b)/2)
		for d := 0.0; d+dashLength <= segmentLength; d += dashLength + dashGap {
			dashTop := cam.ScreenY(start + d + dashLength)
			dashBottom := cam.ScreenY(start + d)
			fillRect(screen, x-0.05*cam.Scale, dashTop, 0.1*cam.Scale, dashBottom-dashTop, edgeColor)
		}
	}
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
