package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/luckyshark1012/fabric-video-editor/internal/config"
	"github.com/luckyshark1012/fabric-video-editor/internal/editor"
	"github.com/luckyshark1012/fabric-video-editor/internal/element"
	"github.com/luckyshark1012/fabric-video-editor/internal/media"
	"github.com/luckyshark1012/fabric-video-editor/internal/playback"
	"github.com/luckyshark1012/fabric-video-editor/internal/project"
	"github.com/luckyshark1012/fabric-video-editor/internal/stage"
	"github.com/luckyshark1012/fabric-video-editor/internal/system"
	"github.com/luckyshark1012/fabric-video-editor/internal/watcher"
)

func main() {
	projectPtr := flag.String("project", "", "Путь к YAML-файлу проекта")
	assetsPtr := flag.String("assets", "", "Медиа-файлы через запятую (изображения, видео, PDF)")
	seekPtr := flag.Float64("seek", -1, "Позиция таймлайна в мс: применить и вывести состояние")
	playPtr := flag.Bool("play", false, "Проиграть таймлайн в реальном времени до конца")
	watchPtr := flag.Bool("watch", false, "Следить за файлом проекта и перезагружать при изменении")
	statsPtr := flag.Bool("stats", false, "Показать сведения о системе")
	qrPtr := flag.String("qr", "", "Добавить QR-оверлей с указанным содержимым")
	qrSizePtr := flag.Int("qr-size", 128, "Размер QR-оверлея в пикселях")
	savePtr := flag.String("save", "", "Сохранить итоговый проект в YAML")
	maxTimePtr := flag.Float64("max-time", config.DefaultMaxTimeMs, "Длительность таймлайна (мс)")
	fpsPtr := flag.Int("fps", config.DefaultFPS, "FPS (шаг квантования позиции)")
	widthPtr := flag.Int("width", config.DefaultWidth, "Ширина холста")
	heightPtr := flag.Int("height", config.DefaultHeight, "Высота холста")
	workersPtr := flag.Int("workers", system.SuggestWorkers(), "Потоки ингеста медиа")

	flag.Parse()

	if *statsPtr {
		fmt.Printf("[*] %s\n", system.Collect())
	}

	cfg := &config.Config{
		MaxTimeMs: *maxTimePtr,
		FPS:       *fpsPtr,
		Width:     *widthPtr,
		Height:    *heightPtr,
		Workers:   *workersPtr,
	}

	scheduler := playback.NewStepScheduler()

	// Собираем проект: YAML + ингест медиа + оверлеи
	build := func() (*editor.Store, error) {
		canvas := stage.NewCanvas()
		store := editor.NewStore(cfg, scheduler)

		if *projectPtr != "" {
			doc, err := project.Read(*projectPtr)
			if err != nil {
				return nil, fmt.Errorf("ошибка чтения проекта: %v", err)
			}
			if doc.MaxTimeMs > 0 {
				cfg.MaxTimeMs = doc.MaxTimeMs
				store.Clock().SetMaxTimeMs(doc.MaxTimeMs)
			}
			if err := project.Populate(doc, store, canvas, cfg); err != nil {
				return nil, fmt.Errorf("ошибка проекта: %v", err)
			}
			fmt.Printf("[*] Проект: %s | Элементов: %d | Анимаций: %d\n",
				*projectPtr, len(store.Elements()), len(store.Segments()))
		}

		if *assetsPtr != "" {
			paths := strings.Split(*assetsPtr, ",")
			for _, el := range media.IngestAll(canvas, cfg, paths) {
				store.AddElement(el)
				fmt.Printf("[*] Ингест: %s [%.0f..%.0fмс]\n", el.Name, el.TimeFrame.Start, el.TimeFrame.End)
			}
		}

		if *qrPtr != "" {
			el, err := media.QROverlay(canvas, cfg, *qrPtr, *qrSizePtr)
			if err != nil {
				log.Printf("[!] QR-оверлей пропущен: %v", err)
			} else {
				store.AddElement(el)
			}
		}

		return store, nil
	}

	store, err := build()
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	if len(store.Elements()) == 0 {
		log.Fatalf("[-] Пустой проект: укажите -project и/или -assets")
	}

	if *savePtr != "" {
		if err := project.Write(project.Snapshot(store), *savePtr); err != nil {
			log.Fatalf("[-] Ошибка сохранения: %v", err)
		}
		fmt.Printf("[+++] Проект сохранен: %s\n", *savePtr)
	}

	if *seekPtr >= 0 {
		store.Seek(*seekPtr)
		printState(store)
	}

	if *playPtr {
		runPlayback(store, scheduler, cfg)
		printState(store)
	}

	if *watchPtr {
		if *projectPtr == "" {
			log.Fatalf("[-] -watch требует -project")
		}
		w, err := watcher.New(*projectPtr, 300*time.Millisecond, func() {
			fmt.Printf("[*] Проект изменен, перезагрузка...\n")
			reloaded, err := build()
			if err != nil {
				// Недописанный файл не должен ронять слежение
				log.Printf("[!] Перезагрузка не удалась: %v", err)
				return
			}
			store = reloaded
			if *seekPtr >= 0 {
				store.Seek(*seekPtr)
			}
			printState(store)
		})
		if err != nil {
			log.Fatalf("[-] Ошибка watcher: %v", err)
		}
		defer w.Close()

		fmt.Printf("[*] Слежение за %s (Ctrl+C для выхода)\n", *projectPtr)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	}
}

// runPlayback крутит кадровый цикл в реальном времени: один Step на
// кадр, пока у планировщика есть отложенный тик.
func runPlayback(store *editor.Store, scheduler *playback.StepScheduler, cfg *config.Config) {
	frame := time.Second / time.Duration(cfg.FPS)
	startTime := time.Now()

	fmt.Printf("[*] Проигрывание: %.0fмс @ %d FPS\n", cfg.MaxTimeMs, cfg.FPS)
	store.Play()
	for scheduler.Pending() {
		time.Sleep(frame)
		scheduler.Step()
	}
	fmt.Printf("[*] Завершено за %.2fs\n", time.Since(startTime).Seconds())
}

func printState(store *editor.Store) {
	fmt.Printf("[*] Позиция: %.1fмс | Элементов: %d\n", store.Clock().CurrentTimeMs(), len(store.Elements()))
	for _, el := range store.Elements() {
		opacity := 0.0
		if el.Drawable != nil {
			opacity = el.Drawable.GetProperty(stage.PropOpacity)
		}
		line := fmt.Sprintf("    %-6s %-32s окно [%6.0f..%6.0f] opacity=%.2f",
			el.Kind, el.Name, el.TimeFrame.Start, el.TimeFrame.End, opacity)
		if el.Kind == element.KindVideo && el.Media != nil {
			state := "pause"
			if el.Media.Playing() {
				state = "play"
			}
			line += fmt.Sprintf(" | клип %.2fs (%s)", el.Media.CurrentTime(), state)
		}
		fmt.Println(line)
	}
}
