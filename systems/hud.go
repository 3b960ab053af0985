package systems

import (
	"fmt"

	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/fonts"
	"github.com/automoto/orthocam/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces come from freetype
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the camera readout in the bottom-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	cameraEntry, camera, ok := mainCamera(e)
	if !ok {
		return
	}
	ctrl := components.CameraController.Get(cameraEntry)

	lines := hudLines(camera, ctrl)
	face := fonts.HUD.Get()
	x := cfg.UI.HUDMargin
	y := screen.Bounds().Dy() - cfg.UI.HUDMargin - (len(lines)-1)*cfg.UI.HUDLineHeight
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*cfg.UI.HUDLineHeight, cfg.UI.HUDTextColor)
	}
}

func hudLines(camera *components.CameraData, ctrl *components.CameraControllerData) []string {
	return []string{
		fmt.Sprintf("pos %.2f, %.2f  size %.2f [%.0f-%.0f]",
			camera.Position.X, camera.Position.Y, camera.OrthographicSize, ctrl.MinZoom, ctrl.MaxZoom),
		fmt.Sprintf("mouse: %s  touch: %s",
			ctrl.Gestures[input.ChannelPointer].State, ctrl.Gestures[input.ChannelTouch].State),
	}
}
