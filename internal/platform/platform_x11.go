//go:build linux && x11

package platform

/*
#cgo LDFLAGS: -lX11 -lGL
#include <stdlib.h>
#include <X11/Xlib.h>
#include <GL/glx.h>

static GLXContext createContext(Display *display, XVisualInfo *visual) {
    return glXCreateContext(display, visual, NULL, True);
}

// glXSwapIntervalEXT is an extension; resolve it at runtime and treat a
// missing symbol as "no vsync available".
static int trySwapInterval(Display *display, GLXDrawable drawable, int interval) {
    typedef void (*swapIntervalProc)(Display*, GLXDrawable, int);
    swapIntervalProc proc = (swapIntervalProc)glXGetProcAddressARB(
        (const GLubyte*)"glXSwapIntervalEXT");
    if (!proc) {
        return -1;
    }
    proc(display, drawable, interval);
    return 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ----------------------------------------------------------------------------

const (
	keyPressMask        = 1 << 0
	keyReleaseMask      = 1 << 1
	buttonPressMask     = 1 << 2
	buttonReleaseMask   = 1 << 3
	pointerMotionMask   = 1 << 6
	exposureMask        = 1 << 15
	structureNotifyMask = 1 << 17

	eventMask = keyPressMask | keyReleaseMask | buttonPressMask |
		buttonReleaseMask | pointerMotionMask | exposureMask |
		structureNotifyMask
)

// X modifier state bits (Xlib ShiftMask etc).
const (
	xShiftMask   = 1 << 0
	xControlMask = 1 << 2
	xMod1Mask    = 1 << 3
	xMod4Mask    = 1 << 6
)

// ----------------------------------------------------------------------------

func NewPlatformWindow(conf Config) (PlatformWindow, error) {
	display := C.XOpenDisplay(nil)
	if display == nil {
		return nil, fmt.Errorf("x11: unable to open display")
	}
	screen := C.XDefaultScreen(display)

	visual, err := chooseVisual(display, screen, conf.Surface)
	if err != nil {
		C.XCloseDisplay(display)
		return nil, err
	}

	root := C.XRootWindow(display, screen)
	colormap := C.XCreateColormap(display, root, visual.visual, C.AllocNone)

	var attrs C.XSetWindowAttributes
	attrs.colormap = colormap
	attrs.event_mask = eventMask

	window := C.XCreateWindow(
		display, root,
		C.int(conf.PositionX), C.int(conf.PositionY),
		C.uint(conf.Width), C.uint(conf.Height),
		0,
		visual.depth, C.InputOutput, visual.visual,
		C.CWColormap|C.CWEventMask, &attrs,
	)

	title := C.CString(conf.Title)
	C.XStoreName(display, window, title)

	w := &x11Window{
		display:  display,
		screen:   screen,
		window:   window,
		visual:   visual,
		colormap: colormap,
		title:    title,
		spec:     conf.Surface,
		width:    conf.Width,
		height:   conf.Height,
	}
	w.wmDeleteWindow = C.XInternAtom(display, wmDeleteName, 0)
	C.XSetWMProtocols(display, window, &w.wmDeleteWindow, 1)
	return w, nil
}

var wmDeleteName = C.CString("WM_DELETE_WINDOW")

func chooseVisual(display *C.Display, screen C.int, spec SurfaceSpec) (*C.XVisualInfo, error) {
	bits := C.int(spec.ColorBits / 4)
	attribs := []C.int{
		C.GLX_RGBA,
		C.GLX_RED_SIZE, bits,
		C.GLX_GREEN_SIZE, bits,
		C.GLX_BLUE_SIZE, bits,
		C.GLX_ALPHA_SIZE, bits,
		C.GLX_DEPTH_SIZE, C.int(spec.DepthBits),
	}
	if spec.DoubleBuffer {
		attribs = append(attribs, C.GLX_DOUBLEBUFFER)
	}
	attribs = append(attribs, C.None)

	visual := C.glXChooseVisual(display, screen, &attribs[0])
	if visual == nil {
		return nil, fmt.Errorf("x11: no visual matches the requested surface")
	}
	return visual, nil
}

// ----------------------------------------------------------------------------

type x11Window struct {
	display        *C.Display
	screen         C.int
	window         C.Window
	visual         *C.XVisualInfo
	colormap       C.Colormap
	context        C.GLXContext
	wmDeleteWindow C.Atom
	title          *C.char
	spec           SurfaceSpec
	width          int
	height         int
}

func (w *x11Window) CreateContext() error {
	context := C.createContext(w.display, w.visual)
	if context == nil {
		return fmt.Errorf("x11: glXCreateContext failed")
	}
	if C.glXMakeCurrent(w.display, C.GLXDrawable(w.window), context) == 0 {
		C.glXDestroyContext(w.display, context)
		return fmt.Errorf("x11: glXMakeCurrent failed")
	}
	w.context = context
	interval := C.int(0)
	if w.spec.VSync {
		interval = 1
	}
	// Best effort only; drivers without the extension run unsynchronized.
	C.trySwapInterval(w.display, C.GLXDrawable(w.window), interval)
	return nil
}

func (w *x11Window) Show() {
	C.XMapWindow(w.display, w.window)
	C.XFlush(w.display)
}

func (w *x11Window) DrainEvents() []Event {
	var out []Event
	for C.XPending(w.display) > 0 {
		var event C.XEvent
		C.XNextEvent(w.display, &event)
		out = append(out, w.convert(event))
	}
	return out
}

func (w *x11Window) SwapBuffers() {
	C.glXSwapBuffers(w.display, C.GLXDrawable(w.window))
}

func (w *x11Window) Size() (int, int) {
	return w.width, w.height
}

func (w *x11Window) DestroyContext() {
	if w.context != nil {
		C.glXMakeCurrent(w.display, C.None, nil)
		C.glXDestroyContext(w.display, w.context)
		w.context = nil
	}
}

func (w *x11Window) Close() {
	C.XDestroyWindow(w.display, w.window)
	C.XFreeColormap(w.display, w.colormap)
	C.XFree(unsafe.Pointer(w.visual))
	C.free(unsafe.Pointer(w.title))
	C.XCloseDisplay(w.display)
	w.display = nil
}

// ----------------------------------------------------------------------------

func (w *x11Window) convert(event C.XEvent) Event {
	switch eventType := (*C.XAnyEvent)(unsafe.Pointer(&event))._type; eventType {
	case 2: // KeyPress
		e := (*C.XKeyEvent)(unsafe.Pointer(&event))
		return KeyPress{Code: x11Key(uint32(C.XLookupKeysym(e, 0))), Mods: x11Mods(uint32(e.state))}
	case 3: // KeyRelease
		e := (*C.XKeyEvent)(unsafe.Pointer(&event))
		return KeyRelease{Code: x11Key(uint32(C.XLookupKeysym(e, 0))), Mods: x11Mods(uint32(e.state))}
	case 4: // ButtonPress
		e := (*C.XButtonEvent)(unsafe.Pointer(&event))
		// X maps the wheel to buttons 4 and 5.
		switch e.button {
		case 4:
			return WheelNotify{Delta: 1, Mods: x11Mods(uint32(e.state))}
		case 5:
			return WheelNotify{Delta: -1, Mods: x11Mods(uint32(e.state))}
		case 1, 2, 3:
			return ButtonPress{Button: uint8(e.button), Mods: x11Mods(uint32(e.state)), X: int(e.x), Y: int(e.y)}
		default:
			return UnexpectedEvent{}
		}
	case 5: // ButtonRelease
		e := (*C.XButtonEvent)(unsafe.Pointer(&event))
		switch e.button {
		case 1, 2, 3:
			return ButtonRelease{Button: uint8(e.button), Mods: x11Mods(uint32(e.state)), X: int(e.x), Y: int(e.y)}
		default:
			// Wheel releases duplicate the press; drop them.
			return UnexpectedEvent{}
		}
	case 6: // MotionNotify
		e := (*C.XMotionEvent)(unsafe.Pointer(&event))
		return MotionNotify{Mods: x11Mods(uint32(e.state)), X: int(e.x), Y: int(e.y)}
	case 22: // ConfigureNotify
		e := (*C.XConfigureEvent)(unsafe.Pointer(&event))
		width, height := int(e.width), int(e.height)
		if width == w.width && height == w.height {
			return UnexpectedEvent{}
		}
		w.width, w.height = width, height
		return ConfigureNotify{Width: width, Height: height}
	case 33: // ClientMessage
		e := (*C.XClientMessageEvent)(unsafe.Pointer(&event))
		if C.Atom(*(*C.long)(unsafe.Pointer(&e.data))) == w.wmDeleteWindow {
			return ClientMessage{}
		}
		return UnexpectedEvent{}
	default:
		return UnexpectedEvent{}
	}
}

func x11Mods(state uint32) uint8 {
	var m uint8
	if state&xShiftMask != 0 {
		m |= ModShift
	}
	if state&xControlMask != 0 {
		m |= ModControl
	}
	if state&xMod1Mask != 0 {
		m |= ModAlt
	}
	if state&xMod4Mask != 0 {
		m |= ModSuper
	}
	return m
}

func x11Key(sym uint32) uint32 {
	// Latin lowercase keysyms fold to the shared uppercase space.
	if sym >= 'a' && sym <= 'z' {
		return sym - 32
	}
	if sym >= '0' && sym <= '9' || sym == ' ' {
		return sym
	}
	switch sym {
	case 0xff1b:
		return KeyEscape
	case 0xff0d:
		return KeyEnter
	case 0xff09:
		return KeyTab
	case 0xff08:
		return KeyBackspace
	case 0xffff:
		return KeyDelete
	case 0xff51:
		return KeyLeft
	case 0xff52:
		return KeyUp
	case 0xff53:
		return KeyRight
	case 0xff54:
		return KeyDown
	case 0xffe1, 0xffe2:
		return KeyShift
	case 0xffe3, 0xffe4:
		return KeyControl
	case 0xffe9, 0xffea:
		return KeyAlt
	case 0xffeb, 0xffec:
		return KeySuper
	default:
		return KeyUnknown
	}
}
