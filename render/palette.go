package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the style of each entity kind
type Palette struct {
	Ball   tcell.Style
	Paddle tcell.Style
	Block  tcell.Style
}

// DefaultPalette draws everything in the terminal foreground
func DefaultPalette() Palette {
	return Palette{
		Ball:   tcell.StyleDefault,
		Paddle: tcell.StyleDefault,
		Block:  tcell.StyleDefault,
	}
}

// ParsePalette builds a palette from color names or #rrggbb values
func ParsePalette(ball, paddle, block string) (Palette, error) {
	var p Palette
	var err error
	if p.Ball, err = parseStyle(ball); err != nil {
		return Palette{}, fmt.Errorf("ball color: %w", err)
	}
	if p.Paddle, err = parseStyle(paddle); err != nil {
		return Palette{}, fmt.Errorf("paddle color: %w", err)
	}
	if p.Block, err = parseStyle(block); err != nil {
		return Palette{}, fmt.Errorf("block color: %w", err)
	}
	return p, nil
}

func parseStyle(name string) (tcell.Style, error) {
	if name == "" || name == "default" {
		return tcell.StyleDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return tcell.StyleDefault, fmt.Errorf("unknown color %q", name)
	}
	return tcell.StyleDefault.Foreground(color), nil
}
