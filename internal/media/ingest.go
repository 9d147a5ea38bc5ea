package media

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

var (
	imageExts = []string{".png", ".jpg", ".jpeg"}
	videoExts = []string{".mp4", ".mov", ".webm", ".mkv", ".avi"}
)

func hasExt(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Ingest turns one asset file into editor elements: images become a
// single image element, PDFs become one image element per page laid out
// sequentially, video files become a video element with its own media
// clock. Anything else is an invalid media source and yields no
// elements.
func Ingest(canvas *stage.Canvas, cfg *config.Config, path string) ([]element.Element, error) {
	switch {
	case hasExt(path, imageExts):
		el, err := IngestImage(canvas, cfg, path)
		if err != nil {
			return nil, err
		}
		return []element.Element{el}, nil
	case strings.HasSuffix(strings.ToLower(path), ".pdf"):
		return IngestPDF(canvas, cfg, path)
	case hasExt(path, videoExts):
		el, err := IngestVideo(canvas, cfg, path)
		if err != nil {
			return nil, err
		}
		return []element.Element{el}, nil
	}
	return nil, fmt.Errorf("%s: not a supported media source", filepath.Base(path))
}

// IngestAll ingests several asset paths in parallel, keeping the input
// order in the result. A path that fails is logged and skipped; the
// remaining assets still load.
func IngestAll(canvas *stage.Canvas, cfg *config.Config, paths []string) []element.Element {
	results := make([][]element.Element, len(paths))

	var g errgroup.Group
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			els, err := Ingest(canvas, cfg, path)
			if err != nil {
				log.Printf("[!] Пропуск %s: %v", path, err)
				return nil
			}
			results[i] = els
			return nil
		})
	}
	g.Wait()

	var out []element.Element
	for _, els := range results {
		out = append(out, els...)
	}
	return out
}

// fitPlacement centers a source of srcW x srcH on the canvas at its
// native aspect ratio.
func fitPlacement(cfg *config.Config, srcW, srcH int) element.Placement {
	w, h := float64(cfg.Width), float64(cfg.Height)
	if srcW <= 0 || srcH <= 0 {
		return element.Placement{Width: w, Height: h, ScaleX: 1, ScaleY: 1}
	}

	ar := float64(srcW) / float64(srcH)
	fitW, fitH := w, w/ar
	if fitH > h {
		fitH = h
		fitW = h * ar
	}
	return element.Placement{
		X:      (w - fitW) / 2,
		Y:      (h - fitH) / 2,
		Width:  fitW,
		Height: fitH,
		ScaleX: 1,
		ScaleY: 1,
	}
}
