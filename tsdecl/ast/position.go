package ast

// Position represents a line/column position in source text.
// Lines are 1-based; Character and Offset are 0-based.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
	Offset    int `json:"offset"`
}

// Range represents a source span from start to end position
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsZero reports whether the position was never set (synthesized nodes)
func (p Position) IsZero() bool {
	return p.Line == 0
}
