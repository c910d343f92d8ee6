package platform

type Event interface{}

// Modifier bits shared by all backends. Each backend converts its native
// modifier state into this mask before queueing an event.
const (
	ModShift   = 1 << 0
	ModControl = 1 << 1
	ModAlt     = 1 << 2
	ModSuper   = 1 << 3
)

type KeyPress struct {
	Code uint32
	Mods uint8
}
type KeyRelease struct {
	Code uint32
	Mods uint8
}
type ButtonPress struct {
	Button uint8
	Mods   uint8
	X, Y   int
}
type ButtonRelease struct {
	Button uint8
	Mods   uint8
	X, Y   int
}
type MotionNotify struct {
	Mods uint8
	X, Y int
}
type WheelNotify struct {
	Delta float64
	Mods  uint8
}
type ConfigureNotify struct {
	Width  int
	Height int
}

// ClientMessage is a window-close request from the window manager.
type ClientMessage struct{}

// UnexpectedEvent marks a native event the shell does not recognize.
// The translation layer drops it silently.
type UnexpectedEvent struct{}
