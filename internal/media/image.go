package media

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

// IngestImage decodes the image header at path and returns an image
// element scaled to fit the canvas at the source aspect ratio. The
// element spans the whole timeline until the user trims its window.
func IngestImage(canvas *stage.Canvas, cfg *config.Config, path string) (element.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return element.Element{}, err
	}
	defer f.Close()

	imgCfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return element.Element{}, fmt.Errorf("%s: %v", filepath.Base(path), err)
	}

	id := element.NewID()
	return element.Element{
		ID:        id,
		Name:      fmt.Sprintf("Media(image) %s", filepath.Base(path)),
		Kind:      element.KindImage,
		Src:       path,
		Placement: fitPlacement(cfg, imgCfg.Width, imgCfg.Height),
		TimeFrame: element.TimeFrame{Start: 0, End: cfg.MaxTimeMs},
		Drawable:  canvas.Add(id),
	}, nil
}

// Thumbnail renders a small preview of src for the timeline strip. The
// long edge ends up at maxEdge pixels. CatmullRom keeps text in slide
// previews readable at small sizes.
func Thumbnail(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || maxEdge <= 0 {
		return src
	}

	scale := float64(maxEdge) / float64(w)
	if h > w {
		scale = float64(maxEdge) / float64(h)
	}
	if scale >= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// ThumbnailFile decodes path and renders its preview.
func ThumbnailFile(path string, maxEdge int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filepath.Base(path), err)
	}
	return Thumbnail(img, maxEdge), nil
}
