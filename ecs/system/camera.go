package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// CameraSystem eases the camera offset toward the player's position.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, _, pb, ok := playerEntity(w)
	if !ok {
		return
	}
	y := pb.Body.Position().Y
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		UpdateCamera(cam, y)
	})
}

// UpdateCamera moves the offset a fixed fraction of the remaining distance
// to the target, so it never overshoots.
func UpdateCamera(cam *component.Camera, targetY float64) {
	if cam == nil {
		return
	}
	cam.TargetOffsetY = targetY - cam.LookAhead
	cam.OffsetY += (cam.TargetOffsetY - cam.OffsetY) * cam.Smoothness
}

// ToScreen converts a world position to screen space. Scrolling is vertical
// only.
func ToScreen(cam *component.Camera, x, y float64) (float64, float64) {
	if cam == nil {
		return x, y
	}
	return x, y - cam.OffsetY
}
