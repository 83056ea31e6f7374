package hooks

// SlotKind tags the variant stored at a hook position.
type SlotKind uint8

const (
	SlotNone SlotKind = iota
	SlotState
	SlotMemo
	SlotEffect
	SlotRef
)

func (k SlotKind) String() string {
	switch k {
	case SlotState:
		return "state"
	case SlotMemo:
		return "memo"
	case SlotEffect:
		return "effect"
	case SlotRef:
		return "ref"
	default:
		return "none"
	}
}

type slot interface {
	kind() SlotKind
}

type effectFlags uint8

const (
	// fPending marks an effect staged during render that must run after the
	// next commit.
	fPending effectFlags = 1 << iota
	// fRan marks an effect whose body ran at least once, so its deps are
	// meaningful.
	fRan
)

// Target identifies where the reconciler places an instance's output.
type Target string

// SlotInfo is a read-only view of one hook slot, for inspection and tests.
type SlotInfo struct {
	Index int
	Kind  SlotKind
	// SetterID is the identity of a state slot's setter, 0 for other kinds.
	SetterID uint64
	// Deps is a copy of the dependency tuple last used by a memo or effect.
	// Nil for an effect that runs after every commit.
	Deps       []any
	HasCleanup bool
}
