package graphics

import "fmt"

// HexRGB formats the color channels of a packed 0xRRGGBBAA value as
// #rrggbb, ignoring alpha.
func HexRGB(c uint32) string {
	return fmt.Sprintf("#%06x", c>>8)
}
