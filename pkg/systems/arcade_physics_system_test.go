package systems

import (
	"math"
	"testing"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

func newBody(em *ecs.EntityManager, x, y float64, body *components.ArcadeBodyComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, body)
	return id
}

func TestArcadePhysics_Integration(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 100, 100, &components.ArcadeBodyComponent{
		Enabled:   true,
		VelocityX: 60,
		GravityY:  100,
	})

	ps.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	body, _ := ecs.GetComponent[*components.ArcadeBodyComponent](em, id)
	if body.VelocityY != 50 {
		t.Errorf("VelocityY = %v, want 50", body.VelocityY)
	}
	if math.Abs(pos.X-130) > 1e-9 || math.Abs(pos.Y-125) > 1e-9 {
		t.Errorf("position = (%.2f, %.2f), want (130, 125)", pos.X, pos.Y)
	}
}

func TestArcadePhysics_DisabledBodySkipped(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 100, 100, &components.ArcadeBodyComponent{VelocityX: 60, GravityY: 100})
	ps.Update(1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("disabled body moved to (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestArcadePhysics_CollideWorldBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 640, 715, &components.ArcadeBodyComponent{
		Enabled:            true,
		VelocityY:          100,
		CollideWorldBounds: true,
		Bounce:             0.5,
	})

	ps.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	body, _ := ecs.GetComponent[*components.ArcadeBodyComponent](em, id)
	if pos.Y != 720 {
		t.Errorf("Y = %.1f, want clamped to 720", pos.Y)
	}
	if body.VelocityY != -50 {
		t.Errorf("VelocityY = %.1f, want -50", body.VelocityY)
	}
}

func TestArcadePhysics_OutOfBoundsFiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 640, 700, &components.ArcadeBodyComponent{
		Enabled:          true,
		VelocityY:        1000,
		CheckWorldBounds: true,
		InWorld:          true,
	})

	fired := 0
	ps.OnOutOfBounds(id, func(got ecs.EntityID) {
		if got != id {
			t.Errorf("handler got entity %d, want %d", got, id)
		}
		fired++
	})

	ps.Update(0.01) // y = 710, 仍在世界内
	if fired != 0 {
		t.Fatalf("fired while still inside the world")
	}

	ps.Update(0.1)
	ps.Update(0.1)
	ps.Update(0.1)

	if fired != 1 {
		t.Errorf("out of bounds fired %d times, want 1", fired)
	}

	// 回到世界内后再次离开会再次触发
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.Y = 360
	ps.Update(0)
	pos.Y = 2000
	ps.Update(0)
	if fired != 2 {
		t.Errorf("re-entering and leaving should fire again, fired = %d", fired)
	}
}

func TestArcadePhysics_RemoveOutOfBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 640, 700, &components.ArcadeBodyComponent{
		Enabled:          true,
		VelocityY:        1000,
		CheckWorldBounds: true,
		InWorld:          true,
	})
	fired := false
	ps.OnOutOfBounds(id, func(ecs.EntityID) { fired = true })
	ps.RemoveOutOfBounds(id)

	ps.Update(1)

	if fired {
		t.Error("removed handler should not fire")
	}
}

func TestArcadePhysics_HandlerDroppedWithEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewArcadePhysicsSystem(em, testBounds())

	id := newBody(em, 640, 360, &components.ArcadeBodyComponent{Enabled: true})
	ps.OnOutOfBounds(id, func(ecs.EntityID) {})

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	ps.Update(0.1)

	if _, ok := ps.outOfBounds[id]; ok {
		t.Error("handler for a removed entity should be dropped")
	}
}
