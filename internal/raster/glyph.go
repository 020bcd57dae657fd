package raster

import "fmt"

// Blank is the glyph of an empty cell.
const Blank = ' '

// CharacterType selects the glyph a primitive is drawn with.
type CharacterType uint8

const (
	Flat CharacterType = iota
	LightlyShaded
)

// Glyph returns the display symbol for c.
func (c CharacterType) Glyph() rune {
	switch c {
	case LightlyShaded:
		return '@'
	default:
		return '#'
	}
}

func (c CharacterType) String() string {
	switch c {
	case Flat:
		return "flat"
	case LightlyShaded:
		return "shaded"
	}
	return fmt.Sprintf("CharacterType(%d)", uint8(c))
}

// ParseCharacterType maps a config name ("flat", "shaded") to a CharacterType.
func ParseCharacterType(s string) (CharacterType, error) {
	switch s {
	case "", "flat":
		return Flat, nil
	case "shaded", "lightly_shaded":
		return LightlyShaded, nil
	}
	return Flat, fmt.Errorf("raster: unknown glyph %q", s)
}
