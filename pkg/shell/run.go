package shell

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/kjkrol/gokw/internal/platform"
)

// Run creates the OS-appropriate window and rendering context, drives the
// application through its full lifecycle and returns once everything is
// torn down. It blocks until the window is closed, the application returns
// Termination from Update, or an error stops the run.
//
// Run is not safe for concurrent use within one process; sequential calls
// each start a fresh backend.
func Run(app Application, conf WindowConfig) error {
	// The rendering context and the native event queue both belong to
	// the thread that created them.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := platform.NewPlatformWindow(conf.convert())
	if err != nil {
		return &StartupError{Stage: "window", Err: err}
	}
	if err := win.CreateContext(); err != nil {
		win.Close()
		return &StartupError{Stage: "context", Err: err}
	}
	win.Show()
	return runLoop(win, app, time.Now)
}

// runLoop owns the Running and Terminating states: drain, dispatch, tick,
// update, present, until a close request or an error. Teardown runs on
// every exit path, in creation-reverse order.
func runLoop(win platform.PlatformWindow, app Application, now func() time.Time) error {
	width, height := win.Size()
	s := &session{win: win, app: app, width: width, height: height}

	if err := app.Initialize(); err != nil {
		s.teardown()
		return err
	}

	clock := newFrameClock(now)
	var runErr error

	running := true
	for running {
		for _, event := range win.DrainEvents() {
			if _, ok := event.(platform.ClientMessage); ok {
				// Close request: drop the rest of this drain and
				// skip the Update for this iteration.
				running = false
				break
			}
			s.dispatch(event)
		}
		if !running {
			break
		}

		delta, total := clock.tick()
		if err := app.Update(delta, total); err != nil {
			if !errors.Is(err, Termination) {
				runErr = err
			}
			break
		}

		win.SwapBuffers()
	}

	s.teardown()
	return runErr
}

// session tracks the surface size used for coordinate clamping while the
// loop runs.
type session struct {
	win    platform.PlatformWindow
	app    Application
	width  int
	height int
}

// dispatch translates one native event into at most one Application
// callback. Events outside the normalized set are dropped silently, as are
// mouse positions while the surface has no area (a minimized window
// reports a 0x0 size): no coordinate inside [0,w) exists to report.
func (s *session) dispatch(event platform.Event) {
	switch e := event.(type) {
	case platform.ButtonPress:
		if s.width <= 0 || s.height <= 0 {
			return
		}
		x, y := s.clamp(e.X, e.Y)
		s.app.MouseDown(MouseEvent{Button: Button(e.Button), Mods: Modifiers(e.Mods), X: x, Y: y})
	case platform.MotionNotify:
		if s.width <= 0 || s.height <= 0 {
			return
		}
		x, y := s.clamp(e.X, e.Y)
		s.app.MouseMove(MouseEvent{Button: ButtonNone, Mods: Modifiers(e.Mods), X: x, Y: y})
	case platform.ButtonRelease:
		if s.width <= 0 || s.height <= 0 {
			return
		}
		x, y := s.clamp(e.X, e.Y)
		s.app.MouseUp(MouseEvent{Button: Button(e.Button), Mods: Modifiers(e.Mods), X: x, Y: y})
	case platform.WheelNotify:
		s.app.MouseWheel(WheelEvent{Delta: e.Delta, Mods: Modifiers(e.Mods)})
	case platform.KeyPress:
		s.app.KeyDown(KeyEvent{Code: Key(e.Code), Mods: Modifiers(e.Mods)})
	case platform.KeyRelease:
		s.app.KeyUp(KeyEvent{Code: Key(e.Code), Mods: Modifiers(e.Mods)})
	case platform.ConfigureNotify:
		s.width, s.height = e.Width, e.Height
		s.app.Resize(e.Width, e.Height)
	}
}

// clamp keeps mouse coordinates inside [0,width) x [0,height) of the
// current surface.
func (s *session) clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= s.width {
		x = s.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.height {
		y = s.height - 1
	}
	return x, y
}

// teardown is the single exit path: Shutdown, destroy context, destroy
// window, in that order, no matter how the run ended.
func (s *session) teardown() {
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("shell: panic in Shutdown: %v", r)
			}
		}()
		s.app.Shutdown()
	}()
	s.win.DestroyContext()
	s.win.Close()
}
