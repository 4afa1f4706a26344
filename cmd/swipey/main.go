// swipey is a terminal arcade game about tuning how swipes move a ship.
//
// Usage:
//
//	swipey                   - Play (same as "swipey play")
//	swipey play              - Play a run
//	swipey config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/swipey/internal/games/swipey"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swipey",
	Short: "Swipey - tune your swipes, dodge asteroids, collect targets",
	Long: `Swipey is a timed arcade game played with the mouse in your terminal.
Drag to swipe the ship toward glowing targets while avoiding asteroids.
Between rounds you pick one adjustment to how swipes are interpreted.

Available commands:
  play     - Play a run (default)
  config   - Print the default configuration YAML

Examples:
  swipey
  swipey play --dev
  swipey play --mode thrust
  swipey config > ~/.swipey/configs/swipey.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
