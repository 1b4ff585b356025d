package gameplay

import (
	"log"

	"scanmaze/pkg/engine/command"
	engineinput "scanmaze/pkg/engine/input"
	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/devtools"
	"scanmaze/pkg/game/state"
)

// CommandBus accepts command frames, as the peripheral bus receiver does
type CommandBus interface {
	Receive(frame []byte) command.Ack
}

// Controls links the loop to the display side of the program
type Controls struct {
	Bus       CommandBus
	Display   interface{ Enabled() bool }
	Indicator interface{ Lit() bool }
	Frame     func() matrix.Image
	Quit      func()
	DumpDir   string
}

func (c Controls) displayEnabled() bool {
	return c.Display != nil && c.Display.Enabled()
}

func (c Controls) indicatorLit() bool {
	return c.Indicator != nil && c.Indicator.Lit()
}

func (c Controls) frame() matrix.Image {
	if c.Frame == nil {
		return matrix.Image{}
	}
	return c.Frame()
}

// ProcessIntent handles a high-level input intent from the tiered input
// system and reports whether the view must be redrawn.
func ProcessIntent(g *state.Game, intent engineinput.Intent, c Controls) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		log.Printf("[INPUT] [INFO] quit requested")
		if c.Quit != nil {
			c.Quit()
		}
		return false

	case engineinput.ActionToggleDisplay:
		if c.Bus == nil {
			return false
		}
		on := !c.displayEnabled()
		arg := byte(0)
		if on {
			arg = 1
		}
		c.Bus.Receive([]byte{command.CmdDisplay, arg})
		if on {
			logMessage(g, "DISPLAY_ON")
		} else {
			logMessage(g, "DISPLAY_OFF")
		}
		return false

	case engineinput.ActionSendCommand:
		if c.Bus == nil {
			return false
		}
		ack := c.Bus.Receive([]byte{intent.Value, 0})
		if ack.Recognized {
			logMessage(g, "COMMAND_ACK", ack.Command)
		} else {
			logMessage(g, "COMMAND_UNKNOWN", ack.Command)
		}
		return false

	case engineinput.ActionRegenerate:
		g.Regenerate()
		g.Timers = state.Timers{}
		logMessage(g, "MAZE_NUMBER", g.MazesGenerated)
		return true

	case engineinput.ActionDumpMaze:
		path, err := devtools.DumpMazeToFile(g, c.DumpDir)
		if err != nil {
			log.Printf("[INPUT] [ERROR] %v", err)
			logMessage(g, "DUMP_FAILED")
			return false
		}
		logMessage(g, "MAZE_DUMPED", path)
		return false

	case engineinput.ActionScreenshot:
		path, err := devtools.SavePanelHTML(c.frame(), g, c.DumpDir)
		if err != nil {
			log.Printf("[INPUT] [ERROR] %v", err)
			logMessage(g, "DUMP_FAILED")
			return false
		}
		logMessage(g, "SCREENSHOT_SAVED", path)
		return false
	}

	logMessage(g, "UNKNOWN_COMMAND")
	return false
}
