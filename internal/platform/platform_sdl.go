//go:build sdl

package platform

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// ----------------------------------------------------------------------------

func NewPlatformWindow(conf Config) (PlatformWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	spec := conf.Surface
	bits := spec.ColorBits / 4
	sdl.GLSetAttribute(sdl.GL_RED_SIZE, bits)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, bits)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, bits)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, bits)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, spec.DepthBits)
	double := 0
	if spec.DoubleBuffer {
		double = 1
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, double)

	window, err := sdl.CreateWindow(conf.Title,
		int32(conf.PositionX), int32(conf.PositionY),
		int32(conf.Width), int32(conf.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	return &sdlWindow{
		window: window,
		spec:   spec,
		width:  conf.Width,
		height: conf.Height,
	}, nil
}

// ----------------------------------------------------------------------------

type sdlWindow struct {
	window  *sdl.Window
	context sdl.GLContext
	spec    SurfaceSpec
	width   int
	height  int
	// SDL wheel and button events carry no modifier state; the keyboard
	// modifier mask is sampled on each drain instead.
	mods uint8
}

func (w *sdlWindow) CreateContext() error {
	context, err := w.window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("sdl create context: %w", err)
	}
	w.context = context
	if err := w.window.GLMakeCurrent(context); err != nil {
		sdl.GLDeleteContext(context)
		w.context = nil
		return fmt.Errorf("sdl make current: %w", err)
	}
	if w.spec.VSync {
		// Best effort: adaptive or plain vsync, whichever the driver has.
		if err := sdl.GLSetSwapInterval(-1); err != nil {
			sdl.GLSetSwapInterval(1)
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}
	return nil
}

func (w *sdlWindow) Show() {
	w.window.Show()
}

func (w *sdlWindow) DrainEvents() []Event {
	var out []Event
	w.mods = sdlMods(sdl.GetModState())
	for {
		event := sdl.PollEvent()
		if event == nil {
			return out
		}
		out = append(out, w.convert(event))
	}
}

func (w *sdlWindow) convert(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		w.mods = sdlMods(sdl.Keymod(e.Keysym.Mod))
		if e.Type == sdl.KEYDOWN {
			return KeyPress{Code: sdlKey(e.Keysym.Sym), Mods: w.mods}
		}
		return KeyRelease{Code: sdlKey(e.Keysym.Sym), Mods: w.mods}
	case *sdl.MouseButtonEvent:
		b := sdlButton(e.Button)
		if b == 0 {
			return UnexpectedEvent{}
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return ButtonPress{Button: b, Mods: w.mods, X: int(e.X), Y: int(e.Y)}
		}
		return ButtonRelease{Button: b, Mods: w.mods, X: int(e.X), Y: int(e.Y)}
	case *sdl.MouseMotionEvent:
		return MotionNotify{Mods: w.mods, X: int(e.X), Y: int(e.Y)}
	case *sdl.MouseWheelEvent:
		delta := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		return WheelNotify{Delta: delta, Mods: w.mods}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			w.width, w.height = int(e.Data1), int(e.Data2)
			return ConfigureNotify{Width: w.width, Height: w.height}
		case sdl.WINDOWEVENT_CLOSE:
			return ClientMessage{}
		default:
			return UnexpectedEvent{}
		}
	case *sdl.QuitEvent:
		return ClientMessage{}
	default:
		return UnexpectedEvent{}
	}
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *sdlWindow) DestroyContext() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
}

func (w *sdlWindow) Close() {
	w.window.Destroy()
	sdl.Quit()
}

// ----------------------------------------------------------------------------

func sdlMods(mod sdl.Keymod) uint8 {
	var m uint8
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= ModControl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= ModAlt
	}
	if mod&sdl.KMOD_GUI != 0 {
		m |= ModSuper
	}
	return m
}

func sdlButton(button uint8) uint8 {
	switch button {
	case sdl.BUTTON_LEFT:
		return 1
	case sdl.BUTTON_MIDDLE:
		return 2
	case sdl.BUTTON_RIGHT:
		return 3
	default:
		return 0
	}
}

func sdlKey(sym sdl.Keycode) uint32 {
	// SDL printable keys use ASCII lowercase; fold to the shared
	// uppercase space.
	if sym >= 'a' && sym <= 'z' {
		return uint32(sym) - 32
	}
	if sym >= '0' && sym <= '9' || sym == ' ' {
		return uint32(sym)
	}
	switch sym {
	case sdl.K_ESCAPE:
		return KeyEscape
	case sdl.K_RETURN:
		return KeyEnter
	case sdl.K_TAB:
		return KeyTab
	case sdl.K_BACKSPACE:
		return KeyBackspace
	case sdl.K_DELETE:
		return KeyDelete
	case sdl.K_LEFT:
		return KeyLeft
	case sdl.K_RIGHT:
		return KeyRight
	case sdl.K_UP:
		return KeyUp
	case sdl.K_DOWN:
		return KeyDown
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		return KeyShift
	case sdl.K_LCTRL, sdl.K_RCTRL:
		return KeyControl
	case sdl.K_LALT, sdl.K_RALT:
		return KeyAlt
	case sdl.K_LGUI, sdl.K_RGUI:
		return KeySuper
	default:
		return KeyUnknown
	}
}
