package main

import (
	"log"

	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/sound"
	"github.com/golangdaddy/laneracer/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	sim, err := game.New(cfg, game.WithHooks(game.Hooks{
		OnGameOver: func(r game.Result) {
			log.Printf("Final score %d after %.0fm", r.Score, r.Distance)
		},
	}))
	if err != nil {
		log.Fatal(err)
	}

	view := ui.NewView(sim, sound.New(cfg.Sound))

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Lane Racer")
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal(err)
	}
}
