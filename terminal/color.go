package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode selects how tcell negotiates color depth
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// ParseColorMode accepts the -color flag values
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorModeAuto, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorModeAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "auto"
	}
}

// apply sets the tcell environment knobs, must run before the screen is created
func (m ColorMode) apply() {
	switch m {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}
