package main

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokw/pkg/shell"
)

// Spinning triangle: the smallest application that exercises the whole
// shell contract (context, clock, resize, input, clean termination).

type triangleApp struct {
	shell.Handlers

	angle  float64
	width  int
	height int
	quit   bool
}

func (a *triangleApp) Initialize() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("load gl: %w", err)
	}
	gl.ClearColor(0.08, 0.08, 0.12, 1)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (a *triangleApp) Update(delta, _ float64) error {
	if a.quit {
		return shell.Termination
	}
	a.angle += delta * 90 // degrees per second

	gl.Viewport(0, 0, int32(a.width), int32(a.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	rotation := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(a.angle)))
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&rotation[0])

	gl.Begin(gl.TRIANGLES)
	gl.Color3f(1, 0, 0)
	gl.Vertex2f(0, 0.6)
	gl.Color3f(0, 1, 0)
	gl.Vertex2f(-0.6, -0.4)
	gl.Color3f(0, 0, 1)
	gl.Vertex2f(0.6, -0.4)
	gl.End()
	return nil
}

func (a *triangleApp) Shutdown() {}

func (a *triangleApp) Resize(width, height int) {
	a.width, a.height = width, height
}

func (a *triangleApp) KeyDown(e shell.KeyEvent) {
	if e.Code == shell.KeyEscape {
		a.quit = true
	}
}

func main() {
	conf := shell.WindowConfig{
		PositionX: 100,
		PositionY: 100,
		Width:     800,
		Height:    600,
		Title:     "gokw demo",
	}
	app := &triangleApp{width: conf.Width, height: conf.Height}
	if err := shell.Run(app, conf); err != nil {
		log.Fatal(err)
	}
}
