package kinematic

// Vector is a 2D position or offset in world units.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Equals reports whether both components match exactly.
func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}
