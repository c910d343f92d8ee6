package shell

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kjkrol/gokw/internal/platform"
)

// trace is shared between the fake window and the recorder application so
// relative ordering across both can be asserted.
type trace struct {
	entries []string
}

func (t *trace) add(entry string) {
	t.entries = append(t.entries, entry)
}

func (t *trace) count(entry string) int {
	n := 0
	for _, e := range t.entries {
		if e == entry {
			n++
		}
	}
	return n
}

func (t *trace) index(entry string) int {
	for i, e := range t.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

func (t *trace) lastIndex(entry string) int {
	last := -1
	for i, e := range t.entries {
		if e == entry {
			last = i
		}
	}
	return last
}

// fakeWindow feeds one scripted event batch per loop iteration and closes
// the window once the script runs out.
type fakeWindow struct {
	trace   *trace
	batches [][]platform.Event
	iter    int
	width   int
	height  int
}

func newFakeWindow(tr *trace, batches ...[]platform.Event) *fakeWindow {
	return &fakeWindow{trace: tr, batches: batches, width: 640, height: 480}
}

func (w *fakeWindow) CreateContext() error { return nil }
func (w *fakeWindow) Show()                {}

func (w *fakeWindow) DrainEvents() []platform.Event {
	if w.iter >= len(w.batches) {
		return []platform.Event{platform.ClientMessage{}}
	}
	batch := w.batches[w.iter]
	w.iter++
	return batch
}

func (w *fakeWindow) SwapBuffers()     { w.trace.add("swap") }
func (w *fakeWindow) Size() (int, int) { return w.width, w.height }
func (w *fakeWindow) DestroyContext()  { w.trace.add("destroyContext") }
func (w *fakeWindow) Close()           { w.trace.add("closeWindow") }

type recorderApp struct {
	trace       *trace
	initErr     error
	updateErr   error
	updateErrAt int // 1-based update index that fails; 0 = never
	shutdownFn  func()

	updates int
	deltas  []float64
	totals  []float64
}

func (a *recorderApp) Initialize() error {
	a.trace.add("initialize")
	return a.initErr
}

func (a *recorderApp) Update(delta, total float64) error {
	a.updates++
	a.deltas = append(a.deltas, delta)
	a.totals = append(a.totals, total)
	a.trace.add("update")
	if a.updateErrAt != 0 && a.updates == a.updateErrAt {
		return a.updateErr
	}
	return nil
}

func (a *recorderApp) Shutdown() {
	a.trace.add("shutdown")
	if a.shutdownFn != nil {
		a.shutdownFn()
	}
}

func (a *recorderApp) MouseDown(e MouseEvent) {
	a.trace.add(fmt.Sprintf("mouseDown %d %d,%d", e.Button, e.X, e.Y))
}
func (a *recorderApp) MouseMove(e MouseEvent) {
	a.trace.add(fmt.Sprintf("mouseMove %d,%d", e.X, e.Y))
}
func (a *recorderApp) MouseUp(e MouseEvent) {
	a.trace.add(fmt.Sprintf("mouseUp %d %d,%d", e.Button, e.X, e.Y))
}
func (a *recorderApp) MouseWheel(e WheelEvent) {
	a.trace.add(fmt.Sprintf("mouseWheel %+.0f", e.Delta))
}
func (a *recorderApp) KeyDown(e KeyEvent) {
	a.trace.add(fmt.Sprintf("keyDown %d", e.Code))
}
func (a *recorderApp) KeyUp(e KeyEvent) {
	a.trace.add(fmt.Sprintf("keyUp %d", e.Code))
}
func (a *recorderApp) Resize(width, height int) {
	a.trace.add(fmt.Sprintf("resize %dx%d", width, height))
}

func fixedNow() func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(16 * time.Millisecond)
		return t
	}
}

// ----------------------------------------------------------------------------

func TestLifecycleOrderOnNormalClose(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{}, []platform.Event{})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}

	if got := tr.count("initialize"); got != 1 {
		t.Fatalf("initialize called %d times, want 1", got)
	}
	if got := tr.count("shutdown"); got != 1 {
		t.Fatalf("shutdown called %d times, want 1", got)
	}
	if app.updates != 2 {
		t.Fatalf("got %d updates, want 2 (one per scripted iteration)", app.updates)
	}
	if tr.index("initialize") > tr.index("update") {
		t.Errorf("initialize must precede the first update: %v", tr.entries)
	}
	if tr.lastIndex("update") > tr.index("shutdown") {
		t.Errorf("shutdown must follow the last update: %v", tr.entries)
	}
	assertTeardownOrder(t, tr)
}

func TestEmptyDrainStillUpdatesAndPresents(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	if app.updates != 1 {
		t.Fatalf("got %d updates, want 1", app.updates)
	}
	if got := tr.count("swap"); got != 1 {
		t.Fatalf("got %d swaps, want 1", got)
	}
	for _, e := range tr.entries {
		switch e {
		case "initialize", "update", "swap", "shutdown", "destroyContext", "closeWindow":
		default:
			t.Fatalf("unexpected input callback %q in an event-free run", e)
		}
	}
}

func TestEventOrderAndCountPreserved(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{
		platform.KeyPress{Code: platform.KeyEscape},
		platform.ButtonPress{Button: 1, X: 10, Y: 20},
		platform.UnexpectedEvent{},
		platform.MotionNotify{X: 11, Y: 21},
		platform.WheelNotify{Delta: -1},
		platform.ButtonRelease{Button: 1, X: 12, Y: 22},
		platform.KeyRelease{Code: platform.KeyEscape},
	})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}

	want := []string{
		fmt.Sprintf("keyDown %d", KeyEscape),
		"mouseDown 1 10,20",
		"mouseMove 11,21",
		"mouseWheel -1",
		"mouseUp 1 12,22",
		fmt.Sprintf("keyUp %d", KeyEscape),
	}
	var got []string
	for _, e := range tr.entries {
		switch e {
		case "initialize", "update", "swap", "shutdown", "destroyContext", "closeWindow":
		default:
			got = append(got, e)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d callbacks %v, want %d (unrecognized events must be dropped)", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("callback %d = %q, want %q", i, got[i], want[i])
		}
	}
	// All callbacks of the batch precede the iteration's update.
	if tr.index("update") < tr.lastIndex(want[len(want)-1]) {
		t.Errorf("callbacks must run before the following update: %v", tr.entries)
	}
}

func TestTerminateMidDrainSkipsRemainderAndUpdate(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{
		platform.KeyPress{Code: platform.KeySpace},
		platform.ClientMessage{},
		platform.KeyPress{Code: platform.KeyEscape},
	})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	if app.updates != 0 {
		t.Errorf("update ran %d times after a terminate, want 0", app.updates)
	}
	if got := tr.count(fmt.Sprintf("keyDown %d", KeySpace)); got != 1 {
		t.Errorf("event before the terminate must still be dispatched")
	}
	if got := tr.count(fmt.Sprintf("keyDown %d", KeyEscape)); got != 0 {
		t.Errorf("event after the terminate must be dropped")
	}
	if got := tr.count("swap"); got != 0 {
		t.Errorf("got %d swaps after a terminate, want 0", got)
	}
	assertTeardownOrder(t, tr)
}

func TestUpdateErrorPropagatesAfterTeardown(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{}, []platform.Event{})
	wantErr := errors.New("render device lost")
	app := &recorderApp{trace: tr, updateErr: wantErr, updateErrAt: 2}

	err := runLoop(win, app, fixedNow())
	if !errors.Is(err, wantErr) {
		t.Fatalf("runLoop returned %v, want %v", err, wantErr)
	}
	if app.updates != 2 {
		t.Errorf("got %d updates, want 2", app.updates)
	}
	assertTeardownOrder(t, tr)
}

func TestTerminationSentinelIsACleanExit(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{}, []platform.Event{})
	app := &recorderApp{trace: tr, updateErr: Termination, updateErrAt: 1}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil for Termination", err)
	}
	if app.updates != 1 {
		t.Errorf("got %d updates, want 1", app.updates)
	}
	assertTeardownOrder(t, tr)
}

func TestInitializeErrorStillTearsDown(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr)
	wantErr := errors.New("shader compile failed")
	app := &recorderApp{trace: tr, initErr: wantErr}

	err := runLoop(win, app, fixedNow())
	if !errors.Is(err, wantErr) {
		t.Fatalf("runLoop returned %v, want %v", err, wantErr)
	}
	if app.updates != 0 {
		t.Errorf("update ran %d times after a failed initialize, want 0", app.updates)
	}
	assertTeardownOrder(t, tr)
}

func TestShutdownPanicDoesNotStopTeardown(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr)
	app := &recorderApp{trace: tr, shutdownFn: func() { panic("double free") }}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	assertTeardownOrder(t, tr)
}

func TestResizeUpdatesCoordinateClamping(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{
		platform.MotionNotify{X: 5000, Y: 5000},
		platform.ConfigureNotify{Width: 800, Height: 600},
		platform.MotionNotify{X: 5000, Y: 5000},
		platform.MotionNotify{X: -3, Y: -7},
	})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	// Initial surface is 640x480; after Resize(800,600) the bottom-right
	// clamp must follow the new size.
	for _, want := range []string{"mouseMove 639,479", "resize 800x600", "mouseMove 799,599", "mouseMove 0,0"} {
		if tr.count(want) != 1 {
			t.Errorf("missing callback %q in %v", want, tr.entries)
		}
	}
}

func TestZeroSizedSurfaceSuppressesMousePositions(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{
		platform.ConfigureNotify{Width: 0, Height: 0},
		platform.MotionNotify{X: 10, Y: 10},
		platform.ButtonPress{Button: 1, X: 10, Y: 10},
		platform.KeyPress{Code: platform.KeySpace},
		platform.ConfigureNotify{Width: 800, Height: 600},
		platform.MotionNotify{X: 10, Y: 10},
	})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	// While minimized there is no coordinate inside [0,w): positional
	// events are dropped, coordinate-free ones still arrive.
	for _, e := range tr.entries {
		if e == "mouseMove -1,-1" || e == "mouseDown 1 -1,-1" {
			t.Fatalf("negative coordinates reached the application: %v", tr.entries)
		}
	}
	if got := tr.count("mouseDown 1 10,10"); got != 0 {
		t.Errorf("mouse press on a zero-sized surface must be dropped")
	}
	if got := tr.count(fmt.Sprintf("keyDown %d", KeySpace)); got != 1 {
		t.Errorf("key events must survive a zero-sized surface")
	}
	if got := tr.count("mouseMove 10,10"); got != 1 {
		t.Errorf("mouse positions must resume after the surface regains area: %v", tr.entries)
	}
}

func TestTimingReportedToUpdateIsMonotonic(t *testing.T) {
	tr := &trace{}
	win := newFakeWindow(tr, []platform.Event{}, []platform.Event{}, []platform.Event{})
	app := &recorderApp{trace: tr}

	if err := runLoop(win, app, fixedNow()); err != nil {
		t.Fatalf("runLoop returned %v, want nil", err)
	}
	if len(app.totals) != 3 {
		t.Fatalf("got %d update samples, want 3", len(app.totals))
	}
	prev := 0.0
	for i, total := range app.totals {
		if app.deltas[i] < 0 {
			t.Errorf("delta %d = %g, want >= 0", i, app.deltas[i])
		}
		if total < prev {
			t.Errorf("total %d = %g decreased from %g", i, total, prev)
		}
		prev = total
	}
}

func assertTeardownOrder(t *testing.T, tr *trace) {
	t.Helper()
	shutdown := tr.index("shutdown")
	destroy := tr.index("destroyContext")
	close := tr.index("closeWindow")
	if shutdown == -1 || destroy == -1 || close == -1 {
		t.Fatalf("incomplete teardown: %v", tr.entries)
	}
	if !(shutdown < destroy && destroy < close) {
		t.Fatalf("teardown order shutdown->destroyContext->closeWindow violated: %v", tr.entries)
	}
}
