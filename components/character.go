package components

import (
	"github.com/automoto/soliman/selection"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Variant selection.Variant
}

var Character = donburi.NewComponentType[CharacterData]()
