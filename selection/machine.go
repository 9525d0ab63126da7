package selection

// State is the hover/lock pair. The displayed variant is always Resolve().
type State struct {
	Hovered Variant
	Locked  Variant
}

// Resolve returns the locked variant if any, else the hovered one, else None.
func (s State) Resolve() Variant {
	if s.Locked != None {
		return s.Locked
	}
	return s.Hovered
}

// Machine owns the selection state. Each transition mutates the state and
// returns the commands that bring the scene in line with it.
type Machine struct {
	state State
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Resolve returns the variant that should be visible.
func (m *Machine) Resolve() Variant {
	return m.state.Resolve()
}

// HoverEnter previews v unless a variant is locked.
func (m *Machine) HoverEnter(v Variant) []Command {
	if !v.Valid() || m.state.Locked != None {
		return nil
	}
	m.state.Hovered = v
	return showCommands(v)
}

// HoverLeave ends the preview unless a variant is locked.
func (m *Machine) HoverLeave(v Variant) []Command {
	if !v.Valid() || m.state.Locked != None {
		return nil
	}
	m.state.Hovered = None
	return hideCommands()
}

// Click locks v, or unlocks it when v is already locked. The previous lock's
// affordance is cleared before the new one is set.
func (m *Machine) Click(v Variant) []Command {
	if !v.Valid() {
		return nil
	}

	// A click settles the display on the lock, so any preview is dropped.
	m.state.Hovered = None

	if m.state.Locked == v {
		m.state.Locked = None
		cmds := []Command{{Kind: ClearAffordance, Variant: v}}
		return append(cmds, hideCommands()...)
	}

	var cmds []Command
	if prev := m.state.Locked; prev != None {
		cmds = append(cmds, Command{Kind: ClearAffordance, Variant: prev})
	}
	m.state.Locked = v
	cmds = append(cmds, Command{Kind: SetAffordance, Variant: v})
	return append(cmds, showCommands(v)...)
}

// Reset clears both hover and lock.
func (m *Machine) Reset() []Command {
	var cmds []Command
	if m.state.Locked != None {
		cmds = append(cmds, Command{Kind: ClearAffordance, Variant: m.state.Locked})
	}
	m.state = State{}
	return append(cmds, hideCommands()...)
}

// Sync returns the commands that display the current resolution from scratch.
func (m *Machine) Sync() []Command {
	if v := m.state.Resolve(); v != None {
		return showCommands(v)
	}
	return hideCommands()
}

func showCommands(v Variant) []Command {
	if v == Remains {
		return []Command{{Kind: HideAll}, {Kind: StartSecondary}}
	}
	return []Command{{Kind: StopSecondary}, {Kind: HideAll}, {Kind: Show, Variant: v}}
}

func hideCommands() []Command {
	return []Command{{Kind: HideAll}, {Kind: StopSecondary}}
}
