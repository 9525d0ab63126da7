package config

import "testing"

func TestEmbeddedPlanesMatchFamilies(t *testing.T) {
	tests := []struct {
		name    string
		wantKey string
		ok      bool
	}{
		{"tree1", "tree", true},
		{"Tree12", "tree", true},
		{"plante1", "plante", true},
		{"plante3", "plante3", true},
		{"palm1", "palm", true},
		{"palm2", "palm2", true},
		{"decor1", "decor1", true},
		{"decor2", "decor2", true},
		{"decor3", "", false},
		{"rock", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, key, ok := Planes.Match(tt.name)
			if ok != tt.ok || key != tt.wantKey {
				t.Fatalf("Match(%q) = %q, %v; want %q, %v", tt.name, key, ok, tt.wantKey, tt.ok)
			}
			if ok && p.Frames < 1 {
				t.Errorf("Match(%q) frames = %d", tt.name, p.Frames)
			}
		})
	}
}

func TestSpecialPlanesUseBlurredSprites(t *testing.T) {
	p, _, _ := Planes.Match("palm2")
	if p.Sprite != "images/blurpalm.png" {
		t.Errorf("palm2 sprite = %q", p.Sprite)
	}
	p, _, _ = Planes.Match("plante3")
	if p.Sprite != "images/blurplante.png" {
		t.Errorf("plante3 sprite = %q", p.Sprite)
	}
}

func TestParsePlanesRejectsInvalidStrips(t *testing.T) {
	tests := map[string]string{
		"zero frames": `
families:
  tree: {sprite: t.png, frames: 0, fps: 0}
prefixes: [tree]
`,
		"negative fps": `
families:
  tree: {sprite: t.png, frames: 2, fps: -1}
prefixes: [tree]
bones: {frames: 1}
bird: {frames: 1}
`,
		"missing family": `
families: {}
prefixes: [palm]
bones: {frames: 1}
bird: {frames: 1}
`,
		"not yaml": "families: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParsePlanes([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	savedP, savedC, savedS := Progression, Camera, Scenery
	t.Cleanup(func() {
		Progression, Camera, Scenery = savedP, savedC, savedS
	})

	err := ApplyOverrides([]byte(`
progression:
  zoomDurationMs: 2500
  easing: outCubic
camera:
  target:
    zoom: 3
`))
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if Progression.ZoomDurationMs != 2500 || Progression.Easing != "outCubic" {
		t.Errorf("Progression = %+v", Progression)
	}
	if Camera.Target.Zoom != 3 {
		t.Errorf("Camera.Target.Zoom = %v, want 3", Camera.Target.Zoom)
	}
	if Camera.Idle != savedC.Idle || Camera.ParallaxX != savedC.ParallaxX {
		t.Errorf("untouched camera fields changed: %+v", Camera)
	}
	if Scenery.SwayX != savedS.SwayX {
		t.Errorf("Scenery.SwayX = %v, want %v", Scenery.SwayX, savedS.SwayX)
	}
}

func TestApplyOverridesRejectsBadTuning(t *testing.T) {
	savedP := Progression
	t.Cleanup(func() { Progression = savedP })

	for _, doc := range []string{
		"progression: {easing: wobble}",
		"progression: {zoomDurationMs: -1}",
		"camera: {idle: {zoom: 0}}",
	} {
		if err := ApplyOverrides([]byte(doc)); err == nil {
			t.Errorf("ApplyOverrides(%q) succeeded", doc)
		}
		if Progression != savedP {
			t.Errorf("ApplyOverrides(%q) changed Progression on error", doc)
		}
	}
}

func TestEasingFuncLookup(t *testing.T) {
	if _, ok := EasingFunc("InOutCubic"); !ok {
		t.Error("InOutCubic not found")
	}
	if _, ok := EasingFunc("bounce"); ok {
		t.Error("bounce should not be offered")
	}
}
