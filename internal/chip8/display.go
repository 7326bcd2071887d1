package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome display buffer, indexed by row then column.
type Display [DisplayHeight][DisplayWidth]bool

// Width returns the display width in pixels.
func (d *Display) Width() int {
	return DisplayWidth
}

// Height returns the display height in pixels.
func (d *Display) Height() int {
	return DisplayHeight
}

// Pixel returns whether the pixel at the given position is set.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)]
}

// Clear unsets all pixels.
func (d *Display) Clear() {
	*d = Display{}
}

// String renders the display as text, one line per row, using '#' for set
// and '.' for unset pixels.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range d {
		for _, set := range d[y] {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// drawSprite XORs the sprite rows into the display with the top left corner
// at (x, y). Pixels that leave the display wrap around to the opposite edge.
// It returns whether any set pixel was unset.
func (d *Display) drawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	for row, data := range sprite {
		py := wrap(int(y)+row, DisplayHeight)
		for bit := 0; bit < 8; bit++ {
			if data&(0x80>>bit) == 0 {
				continue
			}
			px := wrap(int(x)+bit, DisplayWidth)
			if d[py][px] {
				collision = true
			}
			d[py][px] = !d[py][px]
		}
	}
	return collision
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
