package session

// Command is the closed set of abstract inputs the session understands.
// Translating raw key presses into commands is the front end's job; the
// session never sees platform key codes.
type Command int

const (
	// CmdNone is the zero command; applying it in Running advances one
	// generation, everywhere else it is ignored.
	CmdNone Command = iota
	// CmdAdvance is the explicit next-frame command and the implicit result
	// of a tick elapsing with no input while Running.
	CmdAdvance
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdSelect
	CmdCancel
	CmdPause
	CmdEdit
	CmdPatternMenu
	CmdRestart
	CmdToggleTorus
	CmdRotate
	CmdFlip
	CmdSearch
	CmdEnter
	CmdBackspace
	CmdDelete
	// CmdChar carries a literal printable character; only meaningful while
	// the pattern search is active.
	CmdChar
)

// Input pairs a command with its optional character payload.
type Input struct {
	Cmd  Command
	Char rune
}

// Key returns an Input for a plain command.
func Key(cmd Command) Input { return Input{Cmd: cmd} }

// Char returns an Input carrying a literal character.
func Char(r rune) Input { return Input{Cmd: CmdChar, Char: r} }
