package app

// Key binding constants used in handleKey.
const (
	KeyQuit          = "q"
	KeyCtrlC         = "ctrl+c"
	KeyTab           = "tab"
	KeyShiftTab      = "shift+tab"
	KeyEnter         = "enter"
	KeyEsc           = "esc"
	KeyUp            = "up"
	KeyDown          = "down"
	KeyLeft          = "left"
	KeyRight         = "right"
	KeyPgUp          = "pgup"
	KeyPgDown        = "pgdown"
	KeyJ             = "j"
	KeyK             = "k"
	KeyH             = "h"
	KeyL             = "l"
	KeyToggleSidebar = "ctrl+b"
	KeyToggleAccord  = "ctrl+t"
	KeyCompleteCall  = "ctrl+e"
	KeyCodeRed       = "ctrl+r"
	KeyFinalize      = "ctrl+f"
	KeyOpenCase      = "1"
	KeyOpenActivity  = "2"
	KeyOpenCodeRed   = "3"
	KeyOpenNotes     = "4"
)
