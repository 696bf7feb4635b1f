package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Wicked-Maze/internal/config"
	"github.com/Garsondee/Wicked-Maze/internal/term"
)

func main() {
	var drag bool
	var envFile string
	flag.BoolVar(&drag, "drag", false, "steer with mouse drag instead of the arrow keys")
	flag.StringVar(&envFile, "env", ".env", "dotenv file to load")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	h, err := term.New(screen, cfg, drag)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	h.Run()
	screen.Fini()
	fmt.Printf("resets: %d  won: %v\n", h.Session().Resets(), h.Session().Won())
}
