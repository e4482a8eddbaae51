package synth

// Style carries the numeric adjustment factors associated with a named
// visual style.
type Style struct {
	Saturation float64
	Contrast   float64
}

var stylePresets = map[string]Style{
	"realistic":  {Saturation: 1.0, Contrast: 1.2},
	"cartoon":    {Saturation: 1.5, Contrast: 0.8},
	"pixel":      {Saturation: 1.3, Contrast: 1.0},
	"minimalist": {Saturation: 0.7, Contrast: 1.1},
}

// StyleFor resolves a style name to its adjustment factors. Unknown names
// fall back to the realistic preset.
func StyleFor(name string) Style {
	if style, ok := stylePresets[name]; ok {
		return style
	}
	return stylePresets["realistic"]
}

// StyleNames lists the supported style presets.
func StyleNames() []string {
	return []string{"realistic", "cartoon", "pixel", "minimalist"}
}
