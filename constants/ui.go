package constants

// Terminal glyphs
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BlockChar  = '█'
)

// Default palette, parsed with tcell.GetColor. "default" keeps the terminal foreground.
const (
	DefaultBallColor   = "default"
	DefaultPaddleColor = "default"
	DefaultBlockColor  = "default"
)

// Logging
const (
	LogDirName  = "logs"
	LogFileName = "vi-breakout.log"
	MaxLogSize  = 10 * 1024 * 1024
)
