// Package media maps media commands to Spotify's WM_APPCOMMAND codes and
// delivers them to the player window.
package media

import "fmt"

// Command is a media action understood by the target player.
type Command uint32

// The numeric values are the APPCOMMAND_* identifiers already shifted into
// the high word of lParam, which is what WM_APPCOMMAND expects.
const (
	Mute       Command = 0x80000
	VolumeDown Command = 0x90000
	VolumeUp   Command = 0xA0000
	Next       Command = 0xB0000
	Previous   Command = 0xC0000
	Stop       Command = 0xD0000
	PlayPause  Command = 0xE0000
)

// WM_APPCOMMAND is the window message carrying a Command.
const WM_APPCOMMAND = 0x0319

var commandNames = map[Command]string{
	Mute:       "Mute",
	VolumeDown: "VolumeDown",
	VolumeUp:   "VolumeUp",
	Next:       "Next",
	Previous:   "Previous",
	Stop:       "Stop",
	PlayPause:  "PlayPause",
}

// Code returns the lParam value sent with WM_APPCOMMAND.
func (c Command) Code() uint32 {
	return uint32(c)
}

// Valid reports whether c is one of the seven known commands.
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(0x%X)", uint32(c))
}

// Sender delivers commands to the player. Implementations are called from
// low-level hook callbacks and must return promptly.
type Sender interface {
	Send(cmd Command)
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(cmd Command)

// Send calls f(cmd).
func (f SenderFunc) Send(cmd Command) {
	f(cmd)
}
