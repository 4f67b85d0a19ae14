package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/freefall/ecs/component"
)

const stickDeadZone = 0.3

// Input reads keyboard and the first gamepad into a per-frame command.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll returns this frame's movement direction and whether jump was just
// pressed. Jump is edge-triggered so holding it does not spend the mid-air
// jump.
func (i *Input) Poll() component.Input {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX = -1
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX = 1
	}

	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadZone {
			moveX = -1
		} else if leftX > stickDeadZone {
			moveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			moveX = -1
		} else if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			moveX = 1
		}
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	return component.Input{MoveX: moveX, JumpPressed: jump}
}
