package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"parabolic/game"
)

func main() {
	config, err := game.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	levels := game.Campaign(rand.New(rand.NewSource(seed)))
	log.Printf("Campaign seed %d, %d levels", seed, len(levels))

	session := game.NewSession(levels, config, log.Default())
	session.SetLoadedStatus()
	g := newGame(session, config.ScreenWidth, config.ScreenHeight)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Parabolic")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
