package savefile

import "errors"

// Magic prefixes every save file.
var Magic = [4]byte{'P', 'D', 'A', 'T'}

const (
	// FormatVersion is the version written by Encode.
	FormatVersion byte = 1

	headerSize = len(Magic) + 1
)

var (
	ErrInvalidFormat      = errors.New("invalid save file format")
	ErrUnsupportedVersion = errors.New("unsupported save file version")
)
