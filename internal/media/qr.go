package media

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

// qrMargin keeps the code off the canvas edge.
const qrMargin = 16

// QROverlay builds an image element carrying a QR code for content,
// anchored to the bottom-right corner and visible for the whole
// timeline. Used for link/watermark overlays on exported clips.
func QROverlay(canvas *stage.Canvas, cfg *config.Config, content string, size int) (element.Element, error) {
	if size <= 0 {
		size = 128
	}

	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return element.Element{}, fmt.Errorf("qr: %v", err)
	}
	// Растрируем сразу, чтобы ошибка кодирования всплыла на ингесте
	img := code.Image(size)
	bounds := img.Bounds()

	id := element.NewID()
	return element.Element{
		ID:   id,
		Name: fmt.Sprintf("Media(qr) %s", content),
		Kind: element.KindImage,
		Src:  "qr:" + content,
		Placement: element.Placement{
			X:      float64(cfg.Width - bounds.Dx() - qrMargin),
			Y:      float64(cfg.Height - bounds.Dy() - qrMargin),
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
			ScaleX: 1,
			ScaleY: 1,
		},
		TimeFrame: element.TimeFrame{Start: 0, End: cfg.MaxTimeMs},
		Drawable:  canvas.Add(id),
	}, nil
}
