package detection

// Actor identifies the machine and user that started a session.
type Actor struct {
	// Hostname is the machine name of the actor.
	Hostname string
	// Username is the OS-level user name of the actor.
	Username string
}

// Clone returns an independent copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	clone := *a

	return &clone
}
