package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for names it does not recognize.
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a discrete game command, abstracted from physical key presses.
// Hosts translate keys, buttons or script tokens into commands; the engine never
// sees raw input.
type Command int

const (
	CommandNone        Command = iota
	CommandTick                // Clock tick - gravity step
	CommandMoveLeft            // Left arrow, H, A
	CommandMoveRight           // Right arrow, L, D
	CommandSoftDrop            // Down arrow, J, S - descend one row
	CommandHardDrop            // Space - drop to rest and commit
	CommandTogglePause         // P - pause/unpause
	CommandRestart             // R - fresh game
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandTick:
		return "Tick"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandHardDrop:
		return "HardDrop"
	case CommandTogglePause:
		return "TogglePause"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a command the engine accepts.
func (c Command) Valid() bool {
	return c > CommandNone && c <= CommandRestart
}

// commandNames maps script tokens to commands. Several aliases per command so
// replay scripts can use either the long or the key-like form.
var commandNames = map[string]Command{
	"tick":        CommandTick,
	"left":        CommandMoveLeft,
	"moveleft":    CommandMoveLeft,
	"right":       CommandMoveRight,
	"moveright":   CommandMoveRight,
	"down":        CommandSoftDrop,
	"softdrop":    CommandSoftDrop,
	"drop":        CommandHardDrop,
	"harddrop":    CommandHardDrop,
	"pause":       CommandTogglePause,
	"togglepause": CommandTogglePause,
	"restart":     CommandRestart,
}

// ParseCommand converts a name such as "left" or "hardDrop" to a Command.
// Matching is case-insensitive and ignores '-' and '_'.
func ParseCommand(name string) (Command, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if c, ok := commandNames[key]; ok {
		return c, nil
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
