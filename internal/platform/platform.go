package platform

// Config describes the native window requested from a backend.
type Config struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
	Surface   SurfaceSpec
}

// SurfaceSpec describes the rendering surface a backend must create its
// context with. Once a context exists the spec cannot change without
// destroying and recreating the context.
type SurfaceSpec struct {
	ColorBits    int
	DepthBits    int
	DoubleBuffer bool
	VSync        bool
}

// PlatformWindow is the contract every OS backend implements: one native
// window, one rendering context, a non-blocking event drain and a buffer
// swap. The native handle is owned exclusively by the backend instance.
type PlatformWindow interface {
	// CreateContext creates a rendering context matching the SurfaceSpec
	// and makes it current on the calling thread. On failure the window
	// stays open; the caller decides whether to Close it.
	CreateContext() error
	Show()
	// DrainEvents returns all currently queued native events in the order
	// the OS delivered them. Never blocks.
	DrainEvents() []Event
	// SwapBuffers presents the back buffer. With vsync enabled it may
	// block until the next vertical blank; that is the loop's pacing,
	// not a stall.
	SwapBuffers()
	Size() (int, int)
	DestroyContext()
	Close()
}
