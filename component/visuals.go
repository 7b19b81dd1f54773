package component

// RGB is a presentation color carried by simulation records
// Renderers resolve it to terminal colors
type RGB struct {
	R, G, B uint8
}

// Hex returns a #rrggbb string
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

// Palette used by the simulation for messages and feedback
var (
	RGBHealth     = RGB{0x00, 0xff, 0x00}
	RGBDamage     = RGB{0xff, 0x88, 0x00}
	RGBSpeed      = RGB{0x00, 0xff, 0xff}
	RGBFireRate   = RGB{0xff, 0x00, 0xff}
	RGBInvuln     = RGB{0xff, 0xff, 0xff}
	RGBExplosive  = RGB{0xff, 0x33, 0x00}
	RGBDoubleShot = RGB{0x99, 0x00, 0xff}
)
