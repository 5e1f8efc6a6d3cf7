package flappy

// CommandKind identifies a discrete player intent.
type CommandKind int

const (
	CmdNone        CommandKind = iota
	CmdImpulse                 // Space, Up - flap while playing, resume in menu, restart after game over
	CmdPauseToggle             // Esc, P - playing <-> menu
	CmdSelectSkin              // Pick a skin in the menu and start a fresh run
	CmdResume                  // Return to the saved run from the menu
	CmdRestart                 // Start over after game over
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdImpulse:
		return "Impulse"
	case CmdPauseToggle:
		return "PauseToggle"
	case CmdSelectSkin:
		return "SelectSkin"
	case CmdResume:
		return "Resume"
	case CmdRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Command is an input event for Session.Apply.
type Command struct {
	Kind CommandKind
	Skin int // Catalog index, only for CmdSelectSkin
}

// Impulse returns the discrete trigger command.
func Impulse() Command { return Command{Kind: CmdImpulse} }

// PauseToggle returns the pause command.
func PauseToggle() Command { return Command{Kind: CmdPauseToggle} }

// SelectSkin returns a command choosing the skin at catalog index i.
func SelectSkin(i int) Command { return Command{Kind: CmdSelectSkin, Skin: i} }

// Resume returns the resume command.
func Resume() Command { return Command{Kind: CmdResume} }

// Restart returns the restart command.
func Restart() Command { return Command{Kind: CmdRestart} }
