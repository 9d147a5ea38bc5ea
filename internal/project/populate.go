package project

import (
	"fmt"
	"log"

	"github.com/luckyshark1012/fabric-video-editor/internal/animation"
	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/editor"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
	"github.com/luckyshark1012/fabric-video-editor/internal/timeline"
)

// Populate materializes doc into the store: every element gets a
// drawable mounted on canvas, video elements get an offline media clock
// sized to their window, and every animation segment is added through
// the store (each add triggers a timeline rebuild, which is the normal
// edit path).
//
// Populate never touches the filesystem: placements and windows come
// from the document itself, so headless runs and tests need no assets
// on disk.
func Populate(doc *Document, store *editor.Store, canvas *stage.Canvas, cfg *config.Config) error {
	for _, de := range doc.Elements {
		kind := element.Kind(de.Kind)
		switch kind {
		case element.KindVideo, element.KindImage, element.KindText:
		default:
			return fmt.Errorf("element %q: unknown kind %q", de.Name, de.Kind)
		}

		id := de.ID
		if id == "" {
			id = element.NewID()
		}

		el := element.Element{
			ID:        id,
			Name:      de.Name,
			Kind:      kind,
			Src:       de.Src,
			Text:      de.Text,
			Placement: element.Placement{Width: float64(cfg.Width), Height: float64(cfg.Height), ScaleX: 1, ScaleY: 1},
			TimeFrame: element.TimeFrame{Start: 0, End: cfg.MaxTimeMs},
			Drawable:  canvas.Add(id),
		}

		if de.Placement != nil {
			el.Placement = element.Placement{
				X:        de.Placement.X,
				Y:        de.Placement.Y,
				Width:    de.Placement.Width,
				Height:   de.Placement.Height,
				Rotation: de.Placement.Rotation,
				ScaleX:   de.Placement.ScaleX,
				ScaleY:   de.Placement.ScaleY,
			}
		}
		if de.TimeFrame != nil {
			el.TimeFrame = element.TimeFrame{Start: de.TimeFrame.Start, End: de.TimeFrame.End}
		}
		if kind == element.KindVideo {
			windowSec := (el.TimeFrame.End - el.TimeFrame.Start) / 1000
			el.Media = stage.NewOfflineMediaClock(windowSec, int(el.Placement.Width), int(el.Placement.Height))
		}

		store.AddElement(el)
	}

	for _, da := range doc.Animations {
		seg := animation.Segment{
			ID:             da.ID,
			TargetID:       da.TargetID,
			EndTimeMs:      da.EndTimeMs,
			Easing:         timeline.Easing(da.Easing),
			TargetProperty: stage.Property(da.Property),
			TargetValue:    da.Value,
			DelayMs:        da.DelayMs,
		}
		if seg.ID == "" {
			seg.ID = element.NewID()
		}
		if err := store.AddAnimation(seg); err != nil {
			log.Printf("[!] Пропуск анимации %s: %v", seg.ID, err)
		}
	}

	return nil
}

// Snapshot captures the store's current state as a document, suitable
// for Write. The inverse of Populate up to generated ids.
func Snapshot(store *editor.Store) *Document {
	cfg := store.Config()
	doc := &Document{
		Version:   "1.0",
		MaxTimeMs: cfg.MaxTimeMs,
		FPS:       cfg.FPS,
	}

	for _, el := range store.Elements() {
		doc.Elements = append(doc.Elements, Element{
			ID:   el.ID,
			Name: el.Name,
			Kind: string(el.Kind),
			Src:  el.Src,
			Text: el.Text,
			Placement: &Placement{
				X:        el.Placement.X,
				Y:        el.Placement.Y,
				Width:    el.Placement.Width,
				Height:   el.Placement.Height,
				Rotation: el.Placement.Rotation,
				ScaleX:   el.Placement.ScaleX,
				ScaleY:   el.Placement.ScaleY,
			},
			TimeFrame: &TimeFrame{Start: el.TimeFrame.Start, End: el.TimeFrame.End},
		})
	}

	for _, seg := range store.Segments() {
		doc.Animations = append(doc.Animations, Animation{
			ID:        seg.ID,
			TargetID:  seg.TargetID,
			EndTimeMs: seg.EndTimeMs,
			Property:  string(seg.TargetProperty),
			Value:     seg.TargetValue,
			Easing:    string(seg.Easing),
			DelayMs:   seg.DelayMs,
		})
	}

	return doc
}
