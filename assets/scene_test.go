package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/soliman/selection"
)

func TestDefaultScene(t *testing.T) {
	scene := MustLoadDefaultScene()

	if scene.Width != 1280 || scene.Height != 720 {
		t.Fatalf("size = %dx%d, want 1280x720", scene.Width, scene.Height)
	}
	if len(scene.Planes) == 0 {
		t.Fatal("no scenery planes")
	}
	for i := 1; i < len(scene.Planes); i++ {
		if scene.Planes[i].Depth < scene.Planes[i-1].Depth {
			t.Fatalf("planes not sorted by depth at %d", i)
		}
	}
	for _, v := range []selection.Variant{
		selection.Student, selection.Assassin, selection.Martyr, selection.Hero, selection.Body,
	} {
		if _, ok := scene.Stand(v); !ok {
			t.Errorf("missing stand for %v", v)
		}
	}
	if len(scene.BirdPath) < 2 {
		t.Errorf("bird path has %d points", len(scene.BirdPath))
	}
	if scene.Idle == nil || scene.Target == nil {
		t.Fatal("camera poses missing")
	}
	if scene.Target.Zoom <= scene.Idle.Zoom {
		t.Errorf("target zoom %v should exceed idle zoom %v", scene.Target.Zoom, scene.Idle.Zoom)
	}
}

func TestLoadSceneSkipsUnknownStands(t *testing.T) {
	fsys := fstest.MapFS{
		"s.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0">
 <objectgroup id="1" name="Scenery">
  <object id="1" name="decor1" x="0" y="0" width="80" height="80"/>
 </objectgroup>
 <objectgroup id="2" name="Characters">
  <object id="2" name="hero" x="10" y="10" width="5" height="5"/>
  <object id="3" name="ghost" x="10" y="10" width="5" height="5"/>
 </objectgroup>
</map>`)},
	}

	scene, err := LoadScene(fsys, "s.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if len(scene.Characters) != 1 || scene.Characters[0].Variant != selection.Hero {
		t.Fatalf("characters = %+v, want only hero", scene.Characters)
	}
	if scene.Idle != nil {
		t.Errorf("idle pose should be nil without a Camera group")
	}
}

func TestLoadSceneErrors(t *testing.T) {
	if _, err := LoadScene(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Error("expected error for missing file")
	}

	empty := fstest.MapFS{
		"e.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="8" tileheight="8" infinite="0"/>`)},
	}
	if _, err := LoadScene(empty, "e.tmx"); err == nil {
		t.Error("expected error for scene without planes")
	}
}
