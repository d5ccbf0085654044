package systems

import (
	"testing"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

func TestRenderSystem_SortedSprites(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewRenderSystem(em)

	add := func(z int, visible bool) ecs.EntityID {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{})
		em.AddComponent(id, &components.SpriteComponent{Z: z, Visible: visible})
		return id
	}

	coin := add(20, true)
	p1 := add(10, true)
	hidden := add(10, false)
	p2 := add(10, true)
	bg := add(-100, true)

	got := s.SortedSprites()
	want := []ecs.EntityID{bg, p1, p2, coin}

	if len(got) != len(want) {
		t.Fatalf("SortedSprites() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %d, want %d", i, got[i], want[i])
		}
	}
	for _, id := range got {
		if id == hidden {
			t.Error("hidden sprites must not be drawn")
		}
	}
}
