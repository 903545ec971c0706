// Command laneracer-term plays the game in a terminal
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/laneracer/car"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/input"
	"github.com/golangdaddy/laneracer/sound"
)

const (
	colsPerUnit = 3.0
	unitsPerRow = 2.0
	swipeCols   = 3 // a drag across this many cells changes lane
	maxFrame    = 0.1
)

type term struct {
	screen tcell.Screen
	sim    *game.Simulation
	snap   game.Snapshot
	sound  *sound.Player
	mode   config.ControlMode

	width, height int
	hidden        bool
	pending       car.Signal
	swipe         *input.Swipe
	palette       map[string]tcell.Color
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	// The screen owns stdout and stderr while the game runs
	logPath := filepath.Join(os.TempDir(), "laneracer-term.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	sim, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.EnableFocus()
	s.HideCursor()

	t := &term{
		screen:  s,
		sim:     sim,
		snap:    sim.Snapshot(),
		sound:   sound.New(cfg.Sound),
		mode:    cfg.Control,
		swipe:   &input.Swipe{Threshold: swipeCols},
		palette: map[string]tcell.Color{},
	}
	t.width, t.height = s.Size()
	t.run()
}

func (t *term) run() {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- t.screen.PollEvent()
		}
	}()

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.width, t.height = t.screen.Size()
				t.screen.Sync()
			case *tcell.EventFocus:
				t.hidden = !e.Focused
			case *tcell.EventKey:
				if handleQuit(e) {
					return
				}
				t.handleKey(e)
			case *tcell.EventMouse:
				t.handleMouse(e)
			}
		case now := <-tick.C:
			dt := math.Min(now.Sub(last).Seconds(), maxFrame)
			last = now
			t.update(dt)
			t.render()
		}
	}
}

func handleQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	r := e.Rune()
	return r == 'q' || r == 'Q'
}

func (t *term) handleKey(e *tcell.EventKey) {
	if t.snap.Phase == game.GameOver {
		if e.Key() == tcell.KeyEnter || e.Rune() == ' ' || e.Rune() == 'r' {
			t.restart()
		}
		return
	}

	var keys input.Keys
	switch e.Key() {
	case tcell.KeyLeft:
		keys.Left = true
	case tcell.KeyRight:
		keys.Right = true
	case tcell.KeyRune:
		switch r := e.Rune(); {
		case r == 'a':
			keys.Left = true
		case r == 'd':
			keys.Right = true
		case r >= '1' && r <= '9':
			keys.Lane = int(r - '0')
		}
	}
	if sig := input.Signal(keys, 0); sig.Kind != car.SignalNone {
		t.pending = sig
	}
}

func (t *term) handleMouse(e *tcell.EventMouse) {
	x, _ := e.Position()
	held := e.Buttons()&tcell.Button1 != 0

	if t.snap.Phase == game.GameOver {
		if held {
			t.restart()
		}
		return
	}

	if t.mode == config.ControlSteer {
		if held {
			t.pending = car.SteerSignal(input.Steer(float64(x), float64(t.width)))
		}
		return
	}

	switch {
	case held && !t.swipe.Active():
		t.swipe.Press(float64(x))
	case !held && t.swipe.Active():
		if d := t.swipe.Release(float64(x)); d != 0 {
			t.pending = car.ShiftSignal(d)
		}
	}
}

func (t *term) restart() {
	t.swipe.Cancel()
	t.pending = car.Signal{}
	t.snap = t.sim.Restart()
	t.sound.Start()
}

func (t *term) update(dt float64) {
	if t.snap.Phase == game.GameOver {
		return
	}
	t.snap = t.sim.Tick(game.Input{Delta: dt, Hidden: t.hidden, Control: t.pending})
	if t.snap.Phase != game.Paused {
		t.pending = car.Signal{}
	}
	for _, e := range t.snap.Events {
		switch e.Kind {
		case game.EventStarted:
			t.sound.Start()
		case game.EventPickup:
			t.sound.Pickup()
		case game.EventCrash:
			t.sound.Crash()
		}
	}
}

// screen mapping: the player sits four rows from the bottom, centered
func (t *term) col(lateral float64) int {
	return t.width/2 + int(math.Round(lateral*colsPerUnit))
}

func (t *term) row(forward float64) int {
	return t.height - 4 - int(math.Round((forward-t.snap.Forward)/unitsPerRow))
}

var (
	grassStyle  = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	roadStyle   = tcell.StyleDefault.Background(tcell.ColorDimGray)
	lineStyle   = tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorWhite)
	centerStyle = tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorYellow)
	coinStyle   = tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorGold).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

func (t *term) render() {
	s := t.screen
	s.Clear()
	layout := t.sim.Layout()
	half := layout.Width / 2
	left, right := t.col(-half), t.col(half)
	center := t.col(0)

	for y := 1; y < t.height; y++ {
		// world forward coordinate of this row, for dashed markings
		forward := t.snap.Forward + float64(t.height-4-y)*unitsPerRow
		dash := int(math.Floor(forward/unitsPerRow))%3 != 0
		for x := 0; x < t.width; x++ {
			st := grassStyle
			ch := ' '
			switch {
			case x == left || x == right:
				st, ch = lineStyle, '│'
			case x == center:
				st, ch = centerStyle, '║'
			case x > left && x < right:
				st = roadStyle
			}
			s.SetContent(x, y, ch, nil, st)
		}
		for i := 1; i < len(layout.Lanes); i++ {
			a, b := layout.Lanes[i-1], layout.Lanes[i]
			if (a < 0) != (b < 0) || !dash {
				continue
			}
			s.SetContent(t.col((a+b)/2), y, '╎', nil, lineStyle)
		}
	}

	for _, c := range t.snap.Pickups {
		t.put(t.col(c.Lateral), t.row(c.Longitudinal), 'o', coinStyle)
	}
	for _, c := range t.snap.Traffic {
		glyph := '▲'
		if c.Oncoming {
			glyph = '▼'
		}
		t.drawCar(c.Lateral, c.Longitudinal, glyph, tcell.StyleDefault.Foreground(t.color(c.Color)).Background(tcell.ColorDimGray))
	}
	t.drawCar(t.snap.Lateral, t.snap.Forward, '█', tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Background(tcell.ColorDimGray))

	t.drawHUD()
	s.Show()
}

// drawCar fills the car footprint, about one lane wide and two rows long
func (t *term) drawCar(lateral, forward float64, glyph rune, st tcell.Style) {
	x, y := t.col(lateral), t.row(forward)
	w := int(math.Round(car.BodyWidth * colsPerUnit / 2))
	for dy := 0; dy < 2; dy++ {
		for dx := -w; dx <= w; dx++ {
			t.put(x+dx, y-dy, glyph, st)
		}
	}
}

func (t *term) put(x, y int, ch rune, st tcell.Style) {
	if x < 0 || x >= t.width || y < 1 || y >= t.height {
		return
	}
	t.screen.SetContent(x, y, ch, nil, st)
}

func (t *term) color(hex string) tcell.Color {
	c, ok := t.palette[hex]
	if !ok {
		c = tcell.GetColor(hex)
		t.palette[hex] = c
	}
	return c
}

func (t *term) drawHUD() {
	hud := fmt.Sprintf(" SCORE %d  SPEED %.1f  DIST %.0fm  [%s]  arrows/1-4 lanes, q quit",
		t.snap.Score, t.snap.Speed, t.snap.Forward, t.snap.Phase)
	drawText(t.screen, 0, 0, strings.Repeat(" ", max(0, t.width)), hudStyle)
	drawText(t.screen, 0, 0, hud, hudStyle)

	switch t.snap.Phase {
	case game.Paused:
		drawCentered(t.screen, t.width/2, t.height/2, " PAUSED ", hudStyle.Bold(true))
	case game.GameOver:
		st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
		drawCentered(t.screen, t.width/2, t.height/2-1, " CRASH! ", st)
		drawCentered(t.screen, t.width/2, t.height/2, fmt.Sprintf(" Final score %d ", t.snap.Score), st)
		drawCentered(t.screen, t.width/2, t.height/2+1, " Enter or click to restart ", st)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, cy, text, st)
}
