package ui

import (
	"bytes"
	"fmt"
	stdimage "image"
	"image/color"

	cfg "github.com/automoto/sdfzoom/config"
	"github.com/automoto/sdfzoom/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ZoomUI is the overlay window holding the zoom slider
type ZoomUI struct {
	UI *ebitenui.UI

	// Called with the clamped zoom factor when the slider's change event
	// fires, which ebitenui does while drawing. settled is true once the
	// user lets go of the handle.
	OnZoomChanged func(zoomFactor float64, settled bool)

	slider     *widget.Slider
	valueLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewZoomUI creates the slider overlay starting at zoomFactor
func NewZoomUI(zoomFactor float64, onZoomChanged func(zoomFactor float64, settled bool)) *ZoomUI {
	zui := &ZoomUI{
		OnZoomChanged: onZoomChanged,
	}

	zui.loadFonts()
	zui.buildUI(zoomFactor)

	return zui
}

func (zui *ZoomUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	zui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	zui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (zui *ZoomUI) buildUI(zoomFactor float64) {
	// Transparent root so the scene stays visible under the window
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	zui.UI = &ebitenui.UI{
		Container: rootContainer,
	}

	window := widget.NewWindow(
		widget.WindowOpts.Contents(zui.buildContents(zoomFactor)),
		widget.WindowOpts.TitleBar(zui.buildTitleBar(), 22),
		widget.WindowOpts.Draggable(),
		widget.WindowOpts.MinSize(cfg.Overlay.Width, cfg.Overlay.Height),
		widget.WindowOpts.Location(stdimage.Rect(
			cfg.Overlay.X,
			cfg.Overlay.Y,
			cfg.Overlay.X+cfg.Overlay.Width,
			cfg.Overlay.Y+cfg.Overlay.Height,
		)),
	)
	zui.UI.AddWindow(window)
}

func (zui *ZoomUI) buildTitleBar() *widget.Container {
	titleBar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(4)),
		)),
	)

	titleBar.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.Title, &zui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			})),
		),
	))

	return titleBar
}

func (zui *ZoomUI) buildContents(zoomFactor float64) *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	contents := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	lo, hi := systems.SliderRange()
	zui.slider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(lo, hi),
		widget.SliderOpts.InitialCurrent(systems.ZoomFactorToSlider(zoomFactor)),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 8),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(zui.trackImage(), zui.handleImage()),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			f := systems.SliderToZoomFactor(args.Current)
			zui.valueLabel.Label = formatZoom(f)
			if zui.OnZoomChanged != nil {
				zui.OnZoomChanged(f, !args.Dragging)
			}
		}),
	)
	contents.AddChild(zui.slider)

	zui.valueLabel = widget.NewLabel(
		widget.LabelOpts.Text(formatZoom(zoomFactor), &zui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contents.AddChild(zui.valueLabel)

	return contents
}

func formatZoom(f float64) string {
	return fmt.Sprintf("%s %.1f", cfg.Overlay.SliderLabel, f)
}

func (zui *ZoomUI) trackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover: image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
	}
}

func (zui *ZoomUI) handleImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{200, 200, 220, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{255, 255, 255, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{160, 160, 180, 255}),
	}
}

// ZoomFactor returns the clamped zoom factor at the slider's current position
func (zui *ZoomUI) ZoomFactor() float64 {
	return systems.SliderToZoomFactor(zui.slider.Current)
}

// Update calls the UI's Update method
func (zui *ZoomUI) Update() {
	zui.UI.Update()
}
