//go:build (linux || darwin || windows) && !sdl && !x11

package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ----------------------------------------------------------------------------

// NewPlatformWindow creates the native window through GLFW. The context is
// not created here; CreateContext performs that transition separately so a
// context failure can release the window cleanly.
func NewPlatformWindow(conf Config) (PlatformWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	spec := conf.Surface
	bits := spec.ColorBits / 4
	glfw.WindowHint(glfw.RedBits, bits)
	glfw.WindowHint(glfw.GreenBits, bits)
	glfw.WindowHint(glfw.BlueBits, bits)
	glfw.WindowHint(glfw.AlphaBits, bits)
	glfw.WindowHint(glfw.DepthBits, spec.DepthBits)
	if spec.DoubleBuffer {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	} else {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	}
	// Created hidden so the window can be positioned before it appears.
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	window.SetPos(conf.PositionX, conf.PositionY)

	w := &glfwWindow{
		window: window,
		spec:   spec,
		width:  conf.Width,
		height: conf.Height,
	}
	w.installCallbacks()
	return w, nil
}

// ----------------------------------------------------------------------------

type glfwWindow struct {
	window *glfw.Window
	spec   SurfaceSpec
	width  int
	height int

	queue []Event
	// GLFW reports no modifier state on cursor motion, so the last mask
	// seen on a key or button callback is reused for motion events.
	mods uint8
	// Button callbacks carry no cursor position either.
	cursorX int
	cursorY int
}

func (w *glfwWindow) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.mods = glfwMods(mods)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.queue = append(w.queue, KeyPress{Code: glfwKey(key), Mods: w.mods})
		case glfw.Release:
			w.queue = append(w.queue, KeyRelease{Code: glfwKey(key), Mods: w.mods})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.mods = glfwMods(mods)
		b := glfwButton(button)
		if b == 0 {
			w.queue = append(w.queue, UnexpectedEvent{})
			return
		}
		switch action {
		case glfw.Press:
			w.queue = append(w.queue, ButtonPress{Button: b, Mods: w.mods, X: w.cursorX, Y: w.cursorY})
		case glfw.Release:
			w.queue = append(w.queue, ButtonRelease{Button: b, Mods: w.mods, X: w.cursorX, Y: w.cursorY})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursorX, w.cursorY = int(x), int(y)
		w.queue = append(w.queue, MotionNotify{Mods: w.mods, X: w.cursorX, Y: w.cursorY})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.queue = append(w.queue, WheelNotify{Delta: yoff, Mods: w.mods})
	})
	w.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		w.queue = append(w.queue, ConfigureNotify{Width: width, Height: height})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.queue = append(w.queue, ClientMessage{})
	})
}

func (w *glfwWindow) CreateContext() error {
	w.window.MakeContextCurrent()
	if glfw.GetCurrentContext() != w.window {
		return fmt.Errorf("glfw: context could not be made current")
	}
	if w.spec.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return nil
}

func (w *glfwWindow) Show() {
	w.window.Show()
}

func (w *glfwWindow) DrainEvents() []Event {
	glfw.PollEvents()
	if len(w.queue) == 0 {
		return nil
	}
	out := w.queue
	w.queue = nil
	return out
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *glfwWindow) DestroyContext() {
	// GLFW ties the context to the window; detaching it is all that can
	// be done before Destroy releases both.
	glfw.DetachCurrentContext()
}

func (w *glfwWindow) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

// ----------------------------------------------------------------------------

func glfwMods(mods glfw.ModifierKey) uint8 {
	var m uint8
	if mods&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= ModSuper
	}
	return m
}

func glfwButton(button glfw.MouseButton) uint8 {
	switch button {
	case glfw.MouseButtonLeft:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	case glfw.MouseButtonRight:
		return 3
	default:
		return 0
	}
}

func glfwKey(key glfw.Key) uint32 {
	// GLFW printable keys already use ASCII uppercase values.
	if key >= glfw.Key0 && key <= glfw.Key9 || key >= glfw.KeyA && key <= glfw.KeyZ || key == glfw.KeySpace {
		return uint32(key)
	}
	switch key {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyEnter:
		return KeyEnter
	case glfw.KeyTab:
		return KeyTab
	case glfw.KeyBackspace:
		return KeyBackspace
	case glfw.KeyDelete:
		return KeyDelete
	case glfw.KeyLeft:
		return KeyLeft
	case glfw.KeyRight:
		return KeyRight
	case glfw.KeyUp:
		return KeyUp
	case glfw.KeyDown:
		return KeyDown
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return KeyShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return KeyControl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return KeyAlt
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return KeySuper
	default:
		return KeyUnknown
	}
}
