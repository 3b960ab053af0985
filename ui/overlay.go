package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/orthocam/components"
	cfg "github.com/automoto/orthocam/config"
	"github.com/automoto/orthocam/input"
	"github.com/automoto/orthocam/systems"
	"github.com/automoto/orthocam/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay is the on-screen camera panel: zoom readout, zoom buttons and Home.
// It also answers the camera controller's UI-over queries.
type Overlay struct {
	UI *ebitenui.UI

	ecs       *ecs.ECS
	panel     *widget.Container
	zoomLabel *widget.Label
	face      text.Face
}

// NewOverlay builds the panel. Button handlers act on the main camera in e.
func NewOverlay(e *ecs.ECS) *Overlay {
	o := &Overlay{ecs: e}
	o.loadFonts()
	o.buildUI()
	return o
}

func (o *Overlay) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	o.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
}

func (o *Overlay) buildUI() {
	// Root container fills the screen but has no background, so it never counts as hovered
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.HUDMargin)),
		)),
	)

	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.PanelPadding)),
			widget.RowLayoutOpts.Spacing(cfg.UI.PanelSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	o.zoomLabel = widget.NewLabel(
		widget.LabelOpts.Text(zoomText(cfg.Camera.DefaultOrthographicSize), &o.face, &widget.LabelColor{
			Idle: cfg.UI.LabelColor,
		}),
	)
	o.panel.AddChild(o.zoomLabel)

	step := cfg.Camera.ButtonZoomStep
	o.panel.AddChild(o.button("-", func() { systems.ZoomBy(o.ecs, -step) }))
	o.panel.AddChild(o.button("+", func() { systems.ZoomBy(o.ecs, step) }))
	o.panel.AddChild(o.button("Home", func() { systems.StartCameraHome(o.ecs) }))

	root.AddChild(o.panel)
	o.UI = &ebitenui.UI{
		Container: root,
	}
}

func (o *Overlay) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonMinWidth, cfg.UI.ButtonMinHeight),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdleColor),
			Hover:   image.NewNineSliceColor(cfg.UI.ButtonHoverColor),
			Pressed: image.NewNineSliceColor(cfg.UI.ButtonPressColor),
		}),
		widget.ButtonOpts.Text(label, &o.face, &widget.ButtonTextColor{
			Idle:    cfg.UI.ButtonTextColor,
			Hover:   cfg.Yellow,
			Pressed: cfg.UI.ButtonTextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Update refreshes the zoom readout and lets ebitenui process input.
// Must run BEFORE UpdateCameraController so hover state is current.
func (o *Overlay) Update(e *ecs.ECS) {
	if cameraEntry, ok := tags.MainCamera.First(e.World); ok {
		o.zoomLabel.Label = zoomText(components.Camera.Get(cameraEntry).OrthographicSize)
	}
	o.UI.Update()
}

// Draw renders the panel.
func (o *Overlay) Draw(e *ecs.ECS, screen *ebiten.Image) {
	o.UI.Draw(screen)
}

// PointerOverUI implements systems.UIGuard.
func (o *Overlay) PointerOverUI(device input.DeviceID, pos dmath.Vec2) bool {
	if device == input.MouseDevice && ebuiinput.UIHovered {
		return true
	}
	return hitTest(pos, o.panel.GetWidget().Rect)
}

func zoomText(size float64) string {
	return fmt.Sprintf("Zoom %.1f", size)
}
