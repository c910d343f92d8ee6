package main

import (
	"log"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/kjkrol/gokw/pkg/shell"
)

// Echoes every normalized input callback to stdout. Escape closes the run
// through the Termination sentinel, the window close button through the
// native path; both must behave identically.

type echoApp struct {
	shell.Handlers
	quit bool
}

func (a *echoApp) Initialize() error {
	if err := gl.Init(); err != nil {
		return err
	}
	gl.ClearColor(0, 0, 0, 1)
	return nil
}

func (a *echoApp) Update(_, _ float64) error {
	if a.quit {
		return shell.Termination
	}
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (a *echoApp) Shutdown() {}

func (a *echoApp) MouseDown(e shell.MouseEvent) {
	log.Printf("mouse down button=%d mods=%04b at %d,%d", e.Button, e.Mods, e.X, e.Y)
}

func (a *echoApp) MouseUp(e shell.MouseEvent) {
	log.Printf("mouse up   button=%d mods=%04b at %d,%d", e.Button, e.Mods, e.X, e.Y)
}

func (a *echoApp) MouseWheel(e shell.WheelEvent) {
	log.Printf("wheel %+.1f mods=%04b", e.Delta, e.Mods)
}

func (a *echoApp) KeyDown(e shell.KeyEvent) {
	log.Printf("key down %d mods=%04b", e.Code, e.Mods)
	if e.Code == shell.KeyEscape {
		a.quit = true
	}
}

func (a *echoApp) KeyUp(e shell.KeyEvent) {
	log.Printf("key up   %d mods=%04b", e.Code, e.Mods)
}

func (a *echoApp) Resize(width, height int) {
	log.Printf("resize %dx%d", width, height)
}

func main() {
	err := shell.Run(&echoApp{}, shell.WindowConfig{
		Width:  640,
		Height: 480,
		Title:  "gokw input echo",
	})
	if err != nil {
		log.Fatal(err)
	}
}
