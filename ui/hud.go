package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/laneracer/game"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var face = text.NewGoXFace(bitmapfont.Face)

var (
	hudColor    = color.RGBA{255, 255, 255, 255}
	shadowColor = color.RGBA{0, 0, 0, 160}
	crashColor  = color.RGBA{255, 70, 50, 255}
	promptColor = color.RGBA{150, 200, 255, 255}
	dimColor    = color.RGBA{0, 0, 0, 150}
)

// drawHUD shows score, speed and distance, plus the pause and crash overlays
func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 12, 12, 2, hudColor)
	drawText(screen, fmt.Sprintf("SPEED %.1f", snap.Speed), 12, 40, 1, hudColor)
	drawText(screen, fmt.Sprintf("DIST  %.0fm", snap.Forward), 12, 56, 1, hudColor)

	switch snap.Phase {
	case game.NotStarted:
		drawCentered(screen, "GET READY", float64(width)/2, float64(height)/3, 4, hudColor)
	case game.Paused:
		dim(screen)
		drawCentered(screen, "PAUSED", float64(width)/2, float64(height)/3, 5, hudColor)
	case game.GameOver:
		dim(screen)
		centerX := float64(width) / 2
		drawCentered(screen, "CRASH!", centerX, float64(height)/3, 8, crashColor)
		drawCentered(screen, fmt.Sprintf("FINAL SCORE %d", snap.Score), centerX, float64(height)/2+20, 2, hudColor)
		// Blink every 0.5 seconds
		if time.Now().UnixMilli()/500%2 == 0 {
			drawCentered(screen, "Tap or press ENTER to restart", centerX, float64(height)-100, 1.5, promptColor)
		}
	}
}

func dim(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), dimColor, false)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	// drop shadow
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+scale, y+scale)
	op.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, s, face, op)

	op = &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawCentered(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	drawText(screen, s, centerX-w/2, y, scale, clr)
}

var (
	wheelColor    = color.RGBA{100, 100, 100, 255}
	wheelHubColor = color.RGBA{200, 200, 200, 255}
	steeringColor = color.RGBA{255, 50, 50, 255}
	centeredColor = color.RGBA{50, 255, 50, 255}
)

// drawSteeringIndicator shows the wheel position in the bottom-right corner,
// red when turned and green when centered
func drawSteeringIndicator(screen *ebiten.Image, steer float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float32(width - 80)
	centerY := float32(height - 80)
	const radius = 30

	vector.StrokeCircle(screen, centerX, centerY, radius, 4, wheelColor, true)
	vector.DrawFilledCircle(screen, centerX, centerY, 3, wheelHubColor, true)

	clr := centeredColor
	if math.Abs(steer) > 0.1 {
		clr = steeringColor
	}
	angle := steer * math.Pi / 2 // 90 degrees at full lock
	length := float64(radius - 5)
	endX := centerX + float32(length*math.Sin(angle))
	endY := centerY - float32(length*math.Cos(angle))
	vector.StrokeLine(screen, centerX, centerY, endX, endY, 4, clr, true)

	drawText(screen, fmt.Sprintf("Steering: %.1f", steer), float64(width-150), float64(height-25), 1, hudColor)
}
