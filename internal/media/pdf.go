package media

import (
	"fmt"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

// IngestPDF imports every page of the PDF at path as an image element,
// one slide per page. The pages split the timeline evenly, so importing
// a deck yields an immediately playable slideshow.
func IngestPDF(canvas *stage.Canvas, cfg *config.Config, path string) ([]element.Element, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%s: документ не содержит страниц", filepath.Base(path))
	}

	slideDur := cfg.MaxTimeMs / float64(pageCount)

	elements := make([]element.Element, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		srcW, srcH := 0, 0
		if bound, err := doc.Bound(i); err == nil {
			srcW, srcH = bound.Dx(), bound.Dy()
		}

		id := element.NewID()
		elements = append(elements, element.Element{
			ID:        id,
			Name:      fmt.Sprintf("Media(image) %s p.%d", filepath.Base(path), i+1),
			Kind:      element.KindImage,
			Src:       fmt.Sprintf("%s#page=%d", path, i+1),
			Placement: fitPlacement(cfg, srcW, srcH),
			TimeFrame: element.TimeFrame{
				Start: float64(i) * slideDur,
				End:   float64(i+1) * slideDur,
			},
			Drawable: canvas.Add(id),
		})
	}
	return elements, nil
}
