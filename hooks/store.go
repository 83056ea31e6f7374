package hooks

import "github.com/cespare/xxhash/v2"

// slotStore is the ordered arena of hook slots for one instance. Slots are
// addressed only by the position of the hook call that owns them.
type slotStore struct {
	slots  []slot
	cursor int

	// completed is set once a render ran to the end. From then on the number
	// and kinds of hooks are fixed.
	completed bool
	// committed is the slot count of the last completed render; an aborted
	// render truncates back to it.
	committed int
	sig       uint64
}

func (st *slotStore) reset() {
	st.cursor = 0
}

// next returns the slot at the cursor and advances it. create is called only
// on the first visit of a position.
func (st *slotStore) next(kind SlotKind, create func() slot) (slot, error) {
	pos := st.cursor
	st.cursor++

	if pos < len(st.slots) {
		existing := st.slots[pos]
		if existing.kind() != kind {
			return nil, &HookOrderError{
				Position: pos,
				Want:     existing.kind(),
				Got:      kind,
				Reason:   "hook kind changed between renders",
			}
		}
		return existing, nil
	}

	if st.completed {
		return nil, &HookOrderError{
			Position: pos,
			Want:     SlotNone,
			Got:      kind,
			Reason:   "rendered more hooks than the previous render",
		}
	}

	sl := create()
	st.slots = append(st.slots, sl)
	return sl, nil
}

// finish closes a render. It fails if a render that follows a completed one
// stopped before visiting every slot.
func (st *slotStore) finish() error {
	if st.completed && st.cursor < len(st.slots) {
		return &HookOrderError{
			Position: st.cursor,
			Want:     st.slots[st.cursor].kind(),
			Got:      SlotNone,
			Reason:   "rendered fewer hooks than the previous render",
		}
	}
	st.completed = true
	st.committed = len(st.slots)
	st.sig = st.signature()
	return nil
}

// rollback undoes what an aborted render staged: slots it created are
// dropped, and no effect it scheduled will run.
func (st *slotStore) rollback() {
	for i := st.committed; i < len(st.slots); i++ {
		st.slots[i] = nil
	}
	st.slots = st.slots[:st.committed]
	st.dropStaged()
}

func (st *slotStore) dropStaged() {
	for _, sl := range st.slots {
		if e, ok := sl.(*effectSlot); ok {
			e.unstage()
		}
	}
}

// signature digests the kind sequence. Two renders with equal signatures
// asked for the same hooks in the same order.
func (st *slotStore) signature() uint64 {
	buf := make([]byte, len(st.slots))
	for i, sl := range st.slots {
		buf[i] = byte(sl.kind())
	}
	return xxhash.Sum64(buf)
}

func (st *slotStore) info() []SlotInfo {
	infos := make([]SlotInfo, len(st.slots))
	for i, sl := range st.slots {
		info := SlotInfo{Index: i, Kind: sl.kind()}
		if d, ok := sl.(slotDescriber); ok {
			d.describe(&info)
		}
		infos[i] = info
	}
	return infos
}

type slotDescriber interface {
	describe(info *SlotInfo)
}

func (st *slotStore) discard() {
	clear(st.slots)
	st.slots = nil
	st.cursor = 0
	st.committed = 0
	st.completed = false
	st.sig = 0
}
