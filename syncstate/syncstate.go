// Package syncstate classifies the relationship between a local branch and
// its upstream counterpart and decides how the two should be reconciled
// before a push.
package syncstate

// Ref is an opaque commit identifier. Only equality is ever interpreted;
// the zero value means the ref could not be resolved.
type Ref string

// Resolved reports whether the ref carries a usable commit identifier.
func (r Ref) Resolved() bool { return r != "" }

// State describes how a local branch relates to its upstream.
type State int

const (
	// StateUnknown means classification was not possible, typically because
	// no upstream is configured or the refs could not be resolved.
	StateUnknown State = iota
	// StateUpToDate means local and upstream point at the same commit.
	StateUpToDate
	// StateLocalAhead means the upstream is an ancestor of the local branch;
	// a plain push fast-forwards the remote.
	StateLocalAhead
	// StateRemoteAhead means the local branch is an ancestor of the upstream;
	// integrating the remote changes fast-forwards the local branch.
	StateRemoteAhead
	// StateDiverged means both sides have commits the other lacks.
	StateDiverged
)

func (s State) String() string {
	switch s {
	case StateUpToDate:
		return "up-to-date"
	case StateLocalAhead:
		return "local-ahead"
	case StateRemoteAhead:
		return "remote-ahead"
	case StateDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Classify determines the sync state from the local head, the upstream head
// and their merge base. It is a pure function over the three equality
// relations:
//
//	local == remote                      -> UpToDate
//	local == base   && remote != base    -> RemoteAhead
//	remote == base  && local != base     -> LocalAhead
//	otherwise                            -> Diverged
//
// An unresolved input ref yields Unknown. Resolving the refs (and deciding
// what an unresolvable upstream means) is the caller's job.
func Classify(local, remote, base Ref) State {
	if !local.Resolved() || !remote.Resolved() || !base.Resolved() {
		return StateUnknown
	}
	switch {
	case local == remote:
		return StateUpToDate
	case local == base && remote != base:
		return StateRemoteAhead
	case remote == base && local != base:
		return StateLocalAhead
	default:
		return StateDiverged
	}
}
