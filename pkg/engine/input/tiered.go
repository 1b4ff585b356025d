package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceBus
)

// Action represents a high-level operator request.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionToggleDisplay
	ActionDumpMaze
	ActionRegenerate
	ActionScreenshot
	ActionSendCommand // Value carries the command byte
)

// Intent is the 4th-layer, high-level description of what the operator wants.
type Intent struct {
	Action Action
	Value  byte
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "q", "arrow_up", "KeyR").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code that arrive within Window.
// Terminals deliver key repeat as a burst of identical bytes.
type Debouncer struct {
	Window time.Duration

	last     string
	lastTime time.Time
}

// Accept converts a raw event to a debounced event, reporting false for a repeat
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if raw.Code == d.last && raw.Timestamp.Sub(d.lastTime) < d.Window {
		return DebouncedInput{}, false
	}
	d.last = raw.Code
	d.lastTime = raw.Timestamp
	return DebouncedInput{Device: raw.Device, Code: raw.Code}, true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"space": ActionToggleDisplay,
	"t":     ActionToggleDisplay,

	"m":    ActionDumpMaze,
	"dump": ActionDumpMaze,

	"r":     ActionRegenerate,
	"enter": ActionRegenerate,

	"p":          ActionScreenshot,
	"screenshot": ActionScreenshot,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent. Digits send that command value.
func MapToIntent(ev DebouncedInput) Intent {
	if len(ev.Code) == 1 && ev.Code[0] >= '0' && ev.Code[0] <= '9' {
		return Intent{Action: ActionSendCommand, Value: ev.Code[0] - '0'}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionToggleDisplay:
		return "Toggle Display"
	case ActionDumpMaze:
		return "Dump Maze"
	case ActionRegenerate:
		return "Regenerate"
	case ActionScreenshot:
		return "Screenshot"
	case ActionSendCommand:
		return "Send Command"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help lines don't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
