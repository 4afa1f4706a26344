package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swipey/internal/audio"
	"github.com/vovakirdan/swipey/internal/config"
	"github.com/vovakirdan/swipey/internal/core"
	"github.com/vovakirdan/swipey/internal/games/swipey"
	"github.com/vovakirdan/swipey/internal/platform/tui"
	"github.com/vovakirdan/swipey/internal/registry"
	"github.com/vovakirdan/swipey/internal/storage"
)

var (
	flagConfig   string
	flagDev      bool
	flagMode     string
	flagNoAudio  bool
	flagVolume   float64
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a Swipey run.

Controls:
  Mouse drag  - Swipe (gesture mode) or steer (thrust mode)
  Q/A         - Strength up/down
  W/S         - Focus up/down (gesture mode)
  E/D         - Smoothness up/down
  P/Space     - Pause
  R           - Restart with a new run
  H           - Round history
  Esc/Ctrl+C  - Quit

On the round-complete screen, click a button or press one of the
parameter keys to apply that adjustment and start the next round.

Examples:
  swipey play
  swipey play --dev
  swipey play --mode thrust --no-audio
  swipey play --config ./my-swipey.yaml --log-file swipey.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().BoolVar(&flagDev, "dev", false, "Short rounds for development")
	cmd.Flags().StringVar(&flagMode, "mode", "", "Control mode: gesture or thrust (default from config)")
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// validatePlayFlags rejects numeric flags the game cannot run with.
func validatePlayFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("invalid --volume %g: must be between 0 and 1", flagVolume)
	}
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := validatePlayFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Load once up front so a bad file fails before the terminal is taken over
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if !config.ApplyMode(&cfg, flagMode) {
		return fmt.Errorf("unknown mode %q (expected gesture or thrust)", flagMode)
	}

	preset := config.RoundStandard
	if flagDev {
		preset = config.RoundDev
	}
	swipey.SetConfigPath(flagConfig)
	swipey.SetRoundPreset(string(preset))
	swipey.SetControlMode(flagMode)

	game, err := registry.Create("swipey")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("round log unavailable", "error", err)
		store = nil
	}

	player := openAudio(logger)
	defer player.Close()

	logger.Info("starting",
		"mode", cfg.Input.Mode,
		"round_seconds", cfg.RoundDuration(preset),
		"fps", flagFPS,
	)

	runErr := tui.Run(game, rt, tui.Options{
		Store:          store,
		Audio:          player,
		Logger:         logger,
		MouseAllMotion: cfg.Input.Mode == string(config.ModeThrust),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// newLogger builds the session logger. The TUI owns the terminal, so logs
// only go to a file when one is given.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "swipey",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// openAudio returns the speaker, or a silent player when sound is off or unavailable.
func openAudio(logger *log.Logger) audio.Player {
	if flagNoAudio {
		return audio.Silent{}
	}
	sp, err := audio.OpenSpeaker(audio.DefaultSampleRate, flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}
	}
	return sp
}
