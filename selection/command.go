package selection

// CommandKind is a side effect produced by a transition.
type CommandKind int

const (
	ClearAffordance CommandKind = iota
	SetAffordance
	StopSecondary
	HideAll
	Show
	StartSecondary
)

func (k CommandKind) String() string {
	switch k {
	case ClearAffordance:
		return "clear-affordance"
	case SetAffordance:
		return "set-affordance"
	case StopSecondary:
		return "stop-secondary"
	case HideAll:
		return "hide-all"
	case Show:
		return "show"
	case StartSecondary:
		return "start-secondary"
	}
	return "unknown"
}

// Command is a single side effect. Variant is set for Show and the affordance
// kinds.
type Command struct {
	Kind    CommandKind
	Variant Variant
}

// Registry shows and hides variant visuals in the scene.
type Registry interface {
	Show(v Variant)
	HideAll()
	StartSecondaryAnimation()
	StopSecondaryAnimation()
}

// Affordances marks panel controls as active (locked) or not.
type Affordances interface {
	SetActive(v Variant, active bool)
}

// Apply executes cmds in order. Either collaborator may be nil, in which case
// its commands are dropped.
func Apply(cmds []Command, reg Registry, aff Affordances) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case ClearAffordance, SetAffordance:
			if aff != nil {
				aff.SetActive(cmd.Variant, cmd.Kind == SetAffordance)
			}
		case StopSecondary:
			if reg != nil {
				reg.StopSecondaryAnimation()
			}
		case HideAll:
			if reg != nil {
				reg.HideAll()
			}
		case Show:
			if reg != nil {
				reg.Show(cmd.Variant)
			}
		case StartSecondary:
			if reg != nil {
				reg.StartSecondaryAnimation()
			}
		}
	}
}
