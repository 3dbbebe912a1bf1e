package systems

import (
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for key events to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	// Movement keys are tracked as events so the stack keeps press order.
	// Presses are applied first so a tap inside one frame leaves nothing held.
	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, key := range pressedKeys {
		input.Keys.OnKeyDown(key)
	}
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, key := range releasedKeys {
		input.Keys.OnKeyUp(key)
	}
}

// ResetMovementKeys forgets every held movement key, e.g. when a panel takes
// focus and key-up events go to the UI instead.
func ResetMovementKeys(ecs *ecs.ECS) {
	getOrCreateInput(ecs).Keys.Reset()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Keys: motion.NewKeyStack(cfg.Input.Movement),
		})
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
