package common

// Value is a score in the engine's internal units.
type Value int

const (
	ValueDraw Value = 0
	ValueMate Value = 32000
	ValueNone Value = 32002
)
