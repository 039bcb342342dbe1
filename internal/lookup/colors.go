package lookup

// namedColors maps CSS color names to 0xAARRGGBB.
var namedColors = map[string]uint32{
	"transparent":    0x00000000,
	"black":          0xff000000,
	"white":          0xffffffff,
	"red":            0xffff0000,
	"green":          0xff008000,
	"lime":           0xff00ff00,
	"blue":           0xff0000ff,
	"navy":           0xff000080,
	"yellow":         0xffffff00,
	"cyan":           0xff00ffff,
	"aqua":           0xff00ffff,
	"magenta":        0xffff00ff,
	"fuchsia":        0xffff00ff,
	"gray":           0xff808080,
	"grey":           0xff808080,
	"silver":         0xffc0c0c0,
	"lightgray":      0xffd3d3d3,
	"lightgrey":      0xffd3d3d3,
	"darkgray":       0xffa9a9a9,
	"darkgrey":       0xffa9a9a9,
	"dimgray":        0xff696969,
	"maroon":         0xff800000,
	"olive":          0xff808000,
	"teal":           0xff008080,
	"purple":         0xff800080,
	"orange":         0xffffa500,
	"pink":           0xffffc0cb,
	"brown":          0xffa52a2a,
	"gold":           0xffffd700,
	"beige":          0xfff5f5dc,
	"coral":          0xffff7f50,
	"crimson":        0xffdc143c,
	"indigo":         0xff4b0082,
	"ivory":          0xfffffff0,
	"khaki":          0xfff0e68c,
	"lavender":       0xffe6e6fa,
	"salmon":         0xfffa8072,
	"skyblue":        0xff87ceeb,
	"steelblue":      0xff4682b4,
	"tomato":         0xffff6347,
	"turquoise":      0xff40e0d0,
	"violet":         0xffee82ee,
	"wheat":          0xfff5deb3,
	"whitesmoke":     0xfff5f5f5,
	"darkblue":       0xff00008b,
	"darkgreen":      0xff006400,
	"darkred":        0xff8b0000,
	"lightblue":      0xffadd8e6,
	"lightgreen":     0xff90ee90,
	"cornflowerblue": 0xff6495ed,
}

// ColorByName returns the ARGB value of a CSS color name.
func ColorByName(name string) (uint32, bool) {
	v, ok := namedColors[name]
	return v, ok
}
