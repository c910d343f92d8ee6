package shell

import "github.com/kjkrol/gokw/internal/platform"

// Button identifies a mouse button, X11 numbering.
type Button uint8

const (
	ButtonNone   Button = 0
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Modifiers is the set of modifier keys held when an event fired.
type Modifiers uint8

const (
	ModShift   Modifiers = platform.ModShift
	ModControl Modifiers = platform.ModControl
	ModAlt     Modifiers = platform.ModAlt
	ModSuper   Modifiers = platform.ModSuper
)

// Key is a normalized key code. Latin letters and digits carry their ASCII
// uppercase value; named keys use the constants below. Keys the shell does
// not map arrive as KeyUnknown.
type Key uint32

const (
	KeyUnknown Key = Key(platform.KeyUnknown)
	KeySpace   Key = Key(platform.KeySpace)

	KeyEscape    Key = Key(platform.KeyEscape)
	KeyEnter     Key = Key(platform.KeyEnter)
	KeyTab       Key = Key(platform.KeyTab)
	KeyBackspace Key = Key(platform.KeyBackspace)
	KeyDelete    Key = Key(platform.KeyDelete)
	KeyLeft      Key = Key(platform.KeyLeft)
	KeyRight     Key = Key(platform.KeyRight)
	KeyUp        Key = Key(platform.KeyUp)
	KeyDown      Key = Key(platform.KeyDown)
	KeyShift     Key = Key(platform.KeyShift)
	KeyControl   Key = Key(platform.KeyControl)
	KeyAlt       Key = Key(platform.KeyAlt)
	KeySuper     Key = Key(platform.KeySuper)
)

// MouseEvent carries a button transition or a cursor move. Coordinates are
// surface-local logical pixels, origin top-left, clamped to the current
// surface size. Moves carry ButtonNone.
type MouseEvent struct {
	Button Button
	Mods   Modifiers
	X, Y   int
}

// WheelEvent carries one scroll step; positive Delta scrolls away from the
// user.
type WheelEvent struct {
	Delta float64
	Mods  Modifiers
}

// KeyEvent carries a physical key transition. Code is layout-independent;
// keys with no portable code arrive as KeyUnknown.
type KeyEvent struct {
	Code Key
	Mods Modifiers
}
