package selection

import (
	"math/rand"
	"reflect"
	"testing"
)

// fakeScene records what the registry and panel would display.
type fakeScene struct {
	visible   map[Variant]bool
	secondary bool
	active    map[Variant]bool
}

func newFakeScene() *fakeScene {
	return &fakeScene{visible: map[Variant]bool{}, active: map[Variant]bool{}}
}

func (f *fakeScene) Show(v Variant) { f.visible[v] = true }
func (f *fakeScene) HideAll() { f.visible = map[Variant]bool{} }
func (f *fakeScene) StartSecondaryAnimation() { f.secondary = true }
func (f *fakeScene) StopSecondaryAnimation() { f.secondary = false }
func (f *fakeScene) SetActive(v Variant, on bool) {
	if on {
		f.active[v] = true
	} else {
		delete(f.active, v)
	}
}

// displayed derives the variant on screen from the fake's state.
func (f *fakeScene) displayed(t *testing.T) Variant {
	t.Helper()
	shown := None
	for v, on := range f.visible {
		if !on {
			continue
		}
		if shown != None {
			t.Fatalf("two characters visible: %v and %v", shown, v)
		}
		shown = v
	}
	if f.secondary {
		if shown != None {
			t.Fatalf("secondary animation running while %v is visible", shown)
		}
		return Remains
	}
	return shown
}

func run(f *fakeScene, cmds []Command) {
	Apply(cmds, f, f)
}

func TestClickTwiceUnlocks(t *testing.T) {
	var m Machine
	f := newFakeScene()

	run(f, m.Click(Assassin))
	if got := m.Resolve(); got != Assassin {
		t.Fatalf("Resolve = %v, want assassin", got)
	}
	run(f, m.Click(Assassin))
	if got := m.Resolve(); got != None {
		t.Errorf("Resolve = %v, want none", got)
	}
	if got := f.displayed(t); got != None {
		t.Errorf("displayed = %v, want none", got)
	}
	if len(f.active) != 0 {
		t.Errorf("affordances still active: %v", f.active)
	}
}

func TestClickOtherMovesLock(t *testing.T) {
	var m Machine
	f := newFakeScene()

	run(f, m.Click(Student))
	cmds := m.Click(Martyr)

	want := []Command{
		{Kind: ClearAffordance, Variant: Student},
		{Kind: SetAffordance, Variant: Martyr},
		{Kind: StopSecondary},
		{Kind: HideAll},
		{Kind: Show, Variant: Martyr},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("commands = %v, want %v", cmds, want)
	}

	run(f, cmds)
	if got := m.Resolve(); got != Martyr {
		t.Errorf("Resolve = %v, want martyr", got)
	}
	if f.active[Student] || !f.active[Martyr] || len(f.active) != 1 {
		t.Errorf("affordances = %v, want only martyr", f.active)
	}
}

func TestHoverWhileLockedIsIgnored(t *testing.T) {
	var m Machine
	f := newFakeScene()

	run(f, m.Click(Hero))
	if cmds := m.HoverEnter(Student); cmds != nil {
		t.Errorf("HoverEnter while locked produced %v", cmds)
	}
	if got := m.Resolve(); got != Hero {
		t.Errorf("Resolve after hover = %v, want hero", got)
	}
	if cmds := m.HoverLeave(Student); cmds != nil {
		t.Errorf("HoverLeave while locked produced %v", cmds)
	}
	if got := m.Resolve(); got != Hero {
		t.Errorf("Resolve after leave = %v, want hero", got)
	}
	if got := f.displayed(t); got != Hero {
		t.Errorf("displayed = %v, want hero", got)
	}
}

func TestHoverPreview(t *testing.T) {
	var m Machine
	f := newFakeScene()

	run(f, m.HoverEnter(Body))
	if got := f.displayed(t); got != Body {
		t.Errorf("displayed = %v, want body", got)
	}
	run(f, m.HoverLeave(Body))
	if got := f.displayed(t); got != None {
		t.Errorf("displayed = %v, want none", got)
	}
}

func TestRemainsRunsSecondaryAnimation(t *testing.T) {
	var m Machine
	f := newFakeScene()

	run(f, m.HoverEnter(Student))
	run(f, m.HoverEnter(Remains))
	if !f.secondary {
		t.Fatal("secondary animation not started")
	}
	if got := f.displayed(t); got != Remains {
		t.Errorf("displayed = %v, want remains", got)
	}

	run(f, m.Click(Assassin))
	if f.secondary {
		t.Error("secondary animation still running after selecting a character")
	}
}

func TestUnknownVariantIgnored(t *testing.T) {
	var m Machine
	for _, v := range []Variant{None, Variant(42), Variant(-1)} {
		if cmds := m.Click(v); cmds != nil {
			t.Errorf("Click(%d) produced %v", v, cmds)
		}
		if cmds := m.HoverEnter(v); cmds != nil {
			t.Errorf("HoverEnter(%d) produced %v", v, cmds)
		}
	}
	if m.State() != (State{}) {
		t.Errorf("state changed: %+v", m.State())
	}
}

func TestReset(t *testing.T) {
	var m Machine
	f := newFakeScene()
	run(f, m.Click(Remains))
	run(f, m.Reset())
	if m.Resolve() != None || f.displayed(t) != None || len(f.active) != 0 {
		t.Errorf("reset left resolve=%v active=%v", m.Resolve(), f.active)
	}
}

func TestDisplayAlwaysMatchesResolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var m Machine
	f := newFakeScene()

	for i := 0; i < 2000; i++ {
		v := Variants[rng.Intn(len(Variants))]
		switch rng.Intn(3) {
		case 0:
			run(f, m.HoverEnter(v))
		case 1:
			run(f, m.HoverLeave(v))
		case 2:
			run(f, m.Click(v))
		}

		if got, want := f.displayed(t), m.Resolve(); got != want {
			t.Fatalf("step %d: displayed %v, resolved %v (state %+v)", i, got, want, m.State())
		}
		locked := m.State().Locked
		if locked == None && len(f.active) != 0 {
			t.Fatalf("step %d: affordances %v with no lock", i, f.active)
		}
		if locked != None && (len(f.active) != 1 || !f.active[locked]) {
			t.Fatalf("step %d: affordances %v, lock %v", i, f.active, locked)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"student", Student, true},
		{" Hero ", Hero, true},
		{"bones", Remains, true},
		{"remains", Remains, true},
		{"none", None, false},
		{"wizard", None, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
