// Command next-porto opens the portfolio page backdrops in a window. Each
// page section has its own animated background; one section is shown at a
// time with the floating shapes overlay on top.
//
// The scene comes from the TOML file named by BACKDROP_SCENE, or the
// built-in page layout when unset. Press O to open another scene file.
package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/achmichael/next-porto/internal/config"
	"github.com/achmichael/next-porto/internal/game"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Portfolio Backdrops - Tab: section, 1-4: variant, Space: pause, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.FPS)

	g := game.New(conf)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
