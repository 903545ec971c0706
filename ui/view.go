// Package ui is the ebiten front end: it feeds frames and player input to
// the simulation and draws each snapshot.
package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/laneracer/car"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/input"
	"github.com/golangdaddy/laneracer/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	steerStep = 0.04 // steering change per tick while an arrow key is held
)

// View implements ebiten.Game for one simulation
type View struct {
	sim   *game.Simulation
	snap  game.Snapshot
	sound *sound.Player
	mode  config.ControlMode

	swipe    *input.Swipe
	touch    input.Touch
	touchIDs []ebiten.TouchID
	liveIDs  []int

	steer   float64 // steering mode wheel position
	palette map[string]color.RGBA
	verge   *ebiten.Image
}

// NewView wraps a simulation. snd may be nil for silence.
func NewView(sim *game.Simulation, snd *sound.Player) *View {
	v := &View{
		sim:     sim,
		snap:    sim.Snapshot(),
		sound:   snd,
		mode:    sim.Tuning().Control,
		swipe:   input.NewSwipe(),
		palette: map[string]color.RGBA{},
	}
	v.steer = normalize(v.snap.Lateral, sim.Layout().MaxLateral())
	return v
}

// Update is called every tick (1/60 [s] by default)
func (v *View) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if v.snap.Phase == game.GameOver {
		if v.restartRequested() {
			v.swipe.Cancel()
			v.touch.Reset()
			v.snap = v.sim.Restart()
			v.steer = normalize(v.snap.Lateral, v.sim.Layout().MaxLateral())
			v.sound.Start()
		}
		return nil
	}

	v.snap = v.sim.Tick(game.Input{
		Delta:   1 / float64(ebiten.TPS()),
		Hidden:  !ebiten.IsFocused(),
		Control: v.control(),
	})
	v.playEvents()
	return nil
}

func (v *View) playEvents() {
	for _, e := range v.snap.Events {
		switch e.Kind {
		case game.EventStarted:
			v.sound.Start()
		case game.EventPickup:
			v.sound.Pickup()
		case game.EventCrash:
			v.sound.Crash()
		}
	}
}

// control reads keyboard, mouse and touch into one signal
func (v *View) control() car.Signal {
	keys := input.Keys{
		Left:  inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA),
		Right: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD),
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6} {
		if inpututil.IsKeyJustPressed(k) {
			keys.Lane = i + 1
		}
	}

	swipe := v.readSwipe()
	if v.mode == config.ControlSteer {
		return v.steerControl(keys)
	}
	return input.Signal(keys, swipe)
}

// steerControl drives steering mode: lane hotkeys jump, a held pointer
// steers directly and held arrow keys nudge the wheel
func (v *View) steerControl(keys input.Keys) car.Signal {
	layout := v.sim.Layout()
	switch {
	case keys.Lane > 0:
		v.steer = normalize(layout.LaneCenter(keys.Lane-1), layout.MaxLateral())
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, _ := ebiten.CursorPosition()
		v.steer = input.Steer(float64(x), ScreenWidth)
	case v.touch.Active():
		v.steer = input.Steer(v.touch.X(), ScreenWidth)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		v.steer = math.Max(-1, v.steer-steerStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		v.steer = math.Min(1, v.steer+steerStep)
	default:
		return car.Signal{}
	}
	return car.SteerSignal(v.steer)
}

func normalize(x, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, x/limit))
}

// readSwipe tracks a mouse or touch drag and returns a lane change once it ends
func (v *View) readSwipe() int {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		v.swipe.Press(float64(x))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		return v.swipe.Release(float64(x))
	}

	if !v.touch.Active() {
		v.touchIDs = inpututil.AppendJustPressedTouchIDs(v.touchIDs[:0])
		if len(v.touchIDs) > 0 {
			id := v.touchIDs[0]
			x, _ := ebiten.TouchPosition(id)
			v.touch.Begin(int(id), float64(x))
			v.swipe.Press(v.touch.X())
		}
		return 0
	}
	id := ebiten.TouchID(v.touch.ID())
	if inpututil.IsTouchJustReleased(id) {
		return v.swipe.Release(v.touch.End())
	}
	v.touchIDs = ebiten.AppendTouchIDs(v.touchIDs[:0])
	v.liveIDs = v.liveIDs[:0]
	for _, live := range v.touchIDs {
		v.liveIDs = append(v.liveIDs, int(live))
	}
	if v.touch.Sync(v.liveIDs) {
		v.swipe.Cancel()
		return 0
	}
	x, _ := ebiten.TouchPosition(id)
	v.touch.Move(float64(x))
	return 0
}

func (v *View) restartRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	v.touchIDs = inpututil.AppendJustPressedTouchIDs(v.touchIDs[:0])
	return len(v.touchIDs) > 0
}

// Draw renders the latest snapshot
func (v *View) Draw(screen *ebiten.Image) {
	v.drawScene(screen)
	drawHUD(screen, v.snap)
	if v.mode == config.ControlSteer {
		drawSteeringIndicator(screen, v.steer)
	}
}

// Layout returns the fixed logical screen size
func (v *View) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
