package errors

import "strings"

// cellSymbols are the symbols a board cell may legally hold: a letter, or a
// compound code '0'-'6' standing for a fixed two-letter sequence.
const cellSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456"

// ValidateBoardCells validates a flat board string against its dimensions.
// Every cell must be an upper-case letter or a compound code.
func ValidateBoardCells(cells string, width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidBoard, "board dimensions %dx%d must be positive", width, height)
	}
	if len(cells) != width*height {
		return New(ErrCodeInvalidBoard, "board has %d cells, want %d for %dx%d", len(cells), width*height, width, height)
	}
	for i := 0; i < len(cells); i++ {
		if !strings.ContainsRune(cellSymbols, rune(cells[i])) {
			return New(ErrCodeInvalidBoard, "cell %d holds %q, want A-Z or compound code 0-6", i, cells[i])
		}
	}
	return nil
}

// ValidateDiceSetName validates a dice-set name for lookup safety.
func ValidateDiceSetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDice, "dice set name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidDice, "dice set name too long (max 64 characters)")
	}
	for _, r := range name {
		ok := r == '-' || r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			return New(ErrCodeInvalidDice, "dice set name contains invalid character %q", r)
		}
	}
	return nil
}
