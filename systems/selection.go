package systems

import (
	"github.com/automoto/soliman/components"
	"github.com/automoto/soliman/selection"
	"github.com/automoto/soliman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VariantRegistry shows and hides the character entities and runs the
// remains-and-bird scene.
type VariantRegistry struct {
	world donburi.World
}

func NewVariantRegistry(w donburi.World) *VariantRegistry {
	return &VariantRegistry{world: w}
}

// Show makes the character for v visible. Variants without an entity are
// ignored.
func (r *VariantRegistry) Show(v selection.Variant) {
	components.Character.Each(r.world, func(entry *donburi.Entry) {
		if components.Character.Get(entry).Variant == v {
			components.Placement.Get(entry).Visible = true
		}
	})
}

// HideAll hides every character variant.
func (r *VariantRegistry) HideAll() {
	components.Character.Each(r.world, func(entry *donburi.Entry) {
		components.Placement.Get(entry).Visible = false
	})
}

// StartSecondaryAnimation shows the remains and sets the bird flying from
// the start of its path.
func (r *VariantRegistry) StartSecondaryAnimation() {
	tags.Remains.Each(r.world, func(entry *donburi.Entry) {
		components.Placement.Get(entry).Visible = true
	})
	tags.Bird.Each(r.world, func(entry *donburi.Entry) {
		bird := components.BonesBird.Get(entry)
		if !bird.Running {
			bird.Running = true
			bird.Param = 0
			if bird.Flight != nil {
				bird.Flight.Reset()
			}
		}
		placement := components.Placement.Get(entry)
		placement.Visible = true
		components.SpriteStrip.Get(entry).Strip.Restart()
	})
}

// StopSecondaryAnimation hides the remains and grounds the bird.
func (r *VariantRegistry) StopSecondaryAnimation() {
	tags.Remains.Each(r.world, func(entry *donburi.Entry) {
		components.Placement.Get(entry).Visible = false
	})
	tags.Bird.Each(r.world, func(entry *donburi.Entry) {
		components.BonesBird.Get(entry).Running = false
		components.Placement.Get(entry).Visible = false
	})
}

// HoverVariant previews v unless a variant is locked.
func HoverVariant(e *ecs.ECS, v selection.Variant, aff selection.Affordances) {
	applySelection(e, aff, func(m *selection.Machine) []selection.Command {
		return m.HoverEnter(v)
	})
}

// UnhoverVariant ends the preview of v.
func UnhoverVariant(e *ecs.ECS, v selection.Variant, aff selection.Affordances) {
	applySelection(e, aff, func(m *selection.Machine) []selection.Command {
		return m.HoverLeave(v)
	})
}

// ClickVariant locks v, or unlocks it when already locked.
func ClickVariant(e *ecs.ECS, v selection.Variant, aff selection.Affordances) {
	applySelection(e, aff, func(m *selection.Machine) []selection.Command {
		return m.Click(v)
	})
}

// ResolvedVariant returns the variant currently displayed.
func ResolvedVariant(e *ecs.ECS) selection.Variant {
	entry, ok := presentation(e)
	if !ok {
		return selection.None
	}
	return components.Selection.Get(entry).Machine.Resolve()
}

func applySelection(e *ecs.ECS, aff selection.Affordances, transition func(m *selection.Machine) []selection.Command) {
	entry, ok := presentation(e)
	if !ok {
		return
	}
	cmds := transition(&components.Selection.Get(entry).Machine)
	selection.Apply(cmds, NewVariantRegistry(e.World), aff)
}
