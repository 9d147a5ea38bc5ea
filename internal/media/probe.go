package media

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
)

// ProbeDuration asks ffprobe for the media duration in seconds.
func ProbeDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, err
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration)
	if err != nil {
		return 0, err
	}

	return duration, nil
}

// ProbeDimensions asks ffprobe for the pixel size of the first video
// stream.
func ProbeDimensions(path string) (width, height int, err error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0", "-show_entries", "stream=width,height", "-of", "csv=s=x:p=0", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, err
	}

	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%dx%d", &width, &height)
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

// IngestVideo probes the video at path and returns a video element
// whose window length matches the media duration (capped at the
// timeline end) and whose media clock starts paused at zero. A file
// ffprobe cannot read is an invalid media source: no element is
// created.
func IngestVideo(canvas *stage.Canvas, cfg *config.Config, path string) (element.Element, error) {
	durationSec, err := ProbeDuration(path)
	if err != nil {
		return element.Element{}, fmt.Errorf("%s: %v", filepath.Base(path), err)
	}

	// Размеры не критичны: при ошибке просто растягиваем на весь холст
	srcW, srcH, err := ProbeDimensions(path)
	if err != nil {
		srcW, srcH = 0, 0
	}

	end := durationSec * 1000
	if end > cfg.MaxTimeMs {
		end = cfg.MaxTimeMs
	}

	id := element.NewID()
	return element.Element{
		ID:        id,
		Name:      fmt.Sprintf("Media(video) %s", filepath.Base(path)),
		Kind:      element.KindVideo,
		Src:       path,
		Placement: fitPlacement(cfg, srcW, srcH),
		TimeFrame: element.TimeFrame{Start: 0, End: end},
		Drawable:  canvas.Add(id),
		Media:     stage.NewOfflineMediaClock(durationSec, srcW, srcH),
	}, nil
}
