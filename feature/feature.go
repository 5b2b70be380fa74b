package feature

// Feature is one independently written rule module.
//
// CheckMove returns false to veto a move; it may call MultiplyProbability on
// the move to contribute an energetic weight. ApplyMove performs the
// feature's share of the state mutation for an admitted move. Synchronize
// rebuilds the feature's derived state from the bonded graph and reports
// invariant violations.
//
// Features switch on the concrete move types they care about and treat
// every other move as neutral (CheckMove true, ApplyMove no-op).
type Feature interface {
	Name() string
	Requires() []string
	CheckMove(s *Session, m Move) bool
	ApplyMove(s *Session, m Move) error
	Synchronize(s *Session) error
}

// Base provides neutral defaults for every Feature method except Name.
// Embed it and override what the feature needs.
type Base struct{}

// Requires declares no predecessors.
func (Base) Requires() []string { return nil }

// CheckMove admits every move.
func (Base) CheckMove(*Session, Move) bool { return true }

// ApplyMove changes nothing.
func (Base) ApplyMove(*Session, Move) error { return nil }

// Synchronize has no derived state to rebuild.
func (Base) Synchronize(*Session) error { return nil }
