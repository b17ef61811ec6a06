package input

// IntentType represents the semantic action of an event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentPointerMove
	IntentResize
	IntentQuit
)

// Intent is a parsed terminal event
type Intent struct {
	Type IntentType
	X    float64 // arena x for IntentPointerMove
}
