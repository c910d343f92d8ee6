package shell

// Application is the OS-independent side of the shell contract. The three
// lifecycle methods are required; the input callbacks are optional and get
// no-op bodies by embedding Handlers.
//
// All methods run on the loop goroutine, sequentially: callbacks for a
// native event fire strictly before the Update call that follows it, and
// nothing runs concurrently with Update.
type Application interface {
	// Initialize allocates graphics resources. It runs exactly once,
	// after the window and rendering context exist and with the context
	// current. A non-nil error aborts the run.
	Initialize() error

	// Update runs once per loop iteration and must render a complete
	// frame into the current back buffer. It should not block for long:
	// it directly throttles the event latency of the whole process.
	// Returning Termination requests a clean stop; any other non-nil
	// error stops the run and propagates from Run after teardown.
	Update(delta, total float64) error

	// Shutdown releases everything Initialize acquired. It runs exactly
	// once before teardown, on every termination path. Panics are
	// recovered and logged so teardown always completes.
	Shutdown()

	MouseDown(e MouseEvent)
	MouseMove(e MouseEvent)
	MouseUp(e MouseEvent)
	MouseWheel(e WheelEvent)
	KeyDown(e KeyEvent)
	KeyUp(e KeyEvent)
	Resize(width, height int)
}

// Handlers provides no-op input callbacks. Embed it so an Application only
// has to implement the lifecycle methods and the callbacks it cares about.
type Handlers struct{}

func (Handlers) MouseDown(MouseEvent)  {}
func (Handlers) MouseMove(MouseEvent)  {}
func (Handlers) MouseUp(MouseEvent)    {}
func (Handlers) MouseWheel(WheelEvent) {}
func (Handlers) KeyDown(KeyEvent)      {}
func (Handlers) KeyUp(KeyEvent)        {}
func (Handlers) Resize(int, int)       {}
