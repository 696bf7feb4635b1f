package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Wicked-Maze/internal/config"
	"github.com/Garsondee/Wicked-Maze/internal/screen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	g, err := screen.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Wicked Maze")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
