package platform

// Normalized key codes shared by all backends. Printable latin letters and
// digits use their ASCII uppercase value; named keys sit above the ASCII
// range. Native keys without a mapping become KeyUnknown, the event is
// still delivered.
const (
	KeyUnknown uint32 = 0
	KeySpace   uint32 = 32
)

const (
	KeyEscape uint32 = 0x100 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShift
	KeyControl
	KeyAlt
	KeySuper
)
