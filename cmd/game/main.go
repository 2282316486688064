package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/game"
	"github.com/younwookim/wiretown/internal/application/replay"
	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/scene/catalog"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/application/ui"
	"github.com/younwookim/wiretown/internal/infrastructure/assets"
	"github.com/younwookim/wiretown/internal/infrastructure/audio"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
	"github.com/younwookim/wiretown/internal/infrastructure/logging"
)

func main() {
	// Parse command line flags
	settingsFlag := flag.String("settings", "config.ini", "Settings file, created with defaults when missing")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(settings, logger, *recordFlag, *replayFlag); err != nil {
		logger.Error("game stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(settings *config.Settings, logger *zap.Logger, recordFilename, replayFilename string) error {
	// Load definition data using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys)

	seed := settings.Game.Seed
	root := settings.Game.StartScene

	// Input comes from the keyboard, or from a recording
	var input game.InputSource = system.NewInputSystem()
	if replayFilename != "" {
		data, err := replay.LoadReplay(replayFilename)
		if err != nil {
			return err
		}
		r := replay.NewReplayer(*data)
		seed, root = r.Seed(), r.Scene()
		input = replay.NewSource(r)
		logger.Info("replaying",
			zap.String("file", replayFilename),
			zap.String("scene", root),
			zap.Int("frames", r.TotalFrames()))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sounds audio.Sounds = audio.Nop{}
	if settings.Audio.Enabled {
		p, err := audio.NewPlayer(ebaudio.NewContext(audio.ContextRate), settings.Audio.Volume, seed, logger)
		if err != nil {
			return fmt.Errorf("failed to prepare sounds: %w", err)
		}
		sounds = p
	}

	scenes := catalog.New(scene.Env{
		Loader:  loader,
		Images:  assets.NewStore(fsys, logger),
		Sounds:  sounds,
		Logger:  logger,
		Rand:    rand.New(rand.NewSource(seed)),
		ScreenW: settings.Display.Width,
		ScreenH: settings.Display.Height,
	})

	manager, err := game.NewManager(scenes, root,
		game.WithLogger(logger),
		game.WithSounds(sounds),
		game.WithFadeStep(settings.Game.FadeStep),
		game.WithOverlay(ui.NewOverlay()),
	)
	if err != nil {
		return err
	}

	g := game.New(manager, input, settings.Display.Width, settings.Display.Height)
	g.SetDT(1.0 / float64(settings.Display.TPS))

	// Initialize recorder if recording is enabled
	var recorder *replay.Recorder
	if recordFilename != "" {
		recordFilename = replay.ResolveFilename(recordFilename)
		recorder = replay.NewRecorder(seed, root)
		g.SetRecorder(recorder)
		logger.Info("recording enabled", zap.String("file", recordFilename), zap.Int64("seed", seed))
	}

	// Set up ebiten
	ebiten.SetWindowSize(
		int(float64(settings.Display.Width)*settings.Display.Scale),
		int(float64(settings.Display.Height)*settings.Display.Scale))
	ebiten.SetWindowTitle("Wiretown")
	ebiten.SetTPS(settings.Display.TPS)

	// Run game
	err = ebiten.RunGame(g)
	if recorder != nil {
		if serr := recorder.Save(recordFilename); serr != nil {
			logger.Warn("failed to save recording", zap.Error(serr))
		} else {
			logger.Info("recording saved", zap.String("file", recordFilename), zap.Int("frames", recorder.FrameCount()))
		}
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
