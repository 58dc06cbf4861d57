package session

// RequestReset opens the confirmation gate. Nothing changes until ConfirmReset.
func (s *Session) RequestReset() {
	s.resetPending = true
}

// ResetPending reports whether a reset is awaiting confirmation.
func (s *Session) ResetPending() bool {
	return s.resetPending
}

// ConfirmReset closes the gate. On yes, the studied set is cleared and both
// persisted keys are removed; the position is left where it was. On no,
// nothing changes. Without a pending request it does nothing.
func (s *Session) ConfirmReset(yes bool) bool {
	if !s.resetPending {
		return false
	}
	s.resetPending = false
	if !yes {
		return false
	}
	s.tracker.Reset()
	return true
}
