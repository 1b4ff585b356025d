package input

import (
	"bufio"
	"io"
	"strings"
)

// KeyReader decodes a raw-mode terminal byte stream into key codes
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r, normally os.Stdin after term.MakeRaw
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key is decoded. Unknown escape sequences and
// control bytes are returned as an empty code.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b > 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

// readEscape handles the bytes after ESC. A lone ESC arrives with nothing
// buffered behind it.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
