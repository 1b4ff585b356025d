package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "scanmaze/pkg/engine/input"
)

// keyCodes maps window keys onto the key names used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyQ:      "q",
	ebiten.KeyEscape: "escape",
	ebiten.KeySpace:  "space",
	ebiten.KeyT:      "t",
	ebiten.KeyM:      "m",
	ebiten.KeyR:      "r",
	ebiten.KeyEnter:  "enter",
	ebiten.KeyP:      "p",
	ebiten.KeyDigit0: "0",
	ebiten.KeyDigit1: "1",
	ebiten.KeyDigit2: "2",
	ebiten.KeyDigit3: "3",
	ebiten.KeyDigit4: "4",
	ebiten.KeyDigit5: "5",
	ebiten.KeyDigit6: "6",
	ebiten.KeyDigit7: "7",
	ebiten.KeyDigit8: "8",
	ebiten.KeyDigit9: "9",
}

// Update handles input and refreshes the snapshot (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[EBITEN] [INFO] panel window opened (%dx%d)", w, h)
	}

	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.src.Dispatch(intent)
		if intent.Action == engineinput.ActionQuit {
			e.cancel()
			return ebiten.Termination
		}
	}

	e.captureSnapshot()
	return nil
}

// checkInput checks for keyboard input and returns the corresponding Intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		ev, ok := e.debouncer.Accept(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		})
		if !ok {
			continue
		}
		return engineinput.MapToIntent(ev)
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}
