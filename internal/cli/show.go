package cli

import (
	"fmt"
	"os"

	"github.com/armin-ahmadii/kociemba/internal/cfen"
	"github.com/armin-ahmadii/kociemba/internal/facelet"
	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/armin-ahmadii/kociemba/internal/notation"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [net-file]",
	Short: "Print a cube's facelet net",
	Long: `Show prints the facelet net of a cube: from net-file if given,
from --scramble applied to the solved cube, from --cfen, or the solved
cube itself with no flags.

Examples:
  cube show
  cube show scramble.net
  cube show --scramble "R U R' U'"
  cube show --cfen "UUUUUUUUU/RRRRRRRRR/FFFFFFFFF/DDDDDDDDD/LLLLLLLLL/BBBBBBBBB"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble, _ := cmd.Flags().GetString("scramble")
		cfenStr, _ := cmd.Flags().GetString("cfen")

		var c kociemba.Cube
		switch {
		case len(args) == 1:
			var err error
			c, err = readNetFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "show: %v\n", err)
				os.Exit(1)
			}
		case cfenStr != "":
			var err error
			c, err = cfen.FromCFEN(cfenStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "show: %v\n", err)
				os.Exit(1)
			}
		default:
			c = kociemba.Solved()
		}

		if scramble != "" {
			moves, err := notation.Parse(scramble)
			if err != nil {
				fmt.Fprintf(os.Stderr, "show: %v\n", err)
				os.Exit(1)
			}
			kociemba.ApplyMoves(&c, moves)
		}

		fmt.Print(facelet.Print(c))
		return nil
	},
}

func init() {
	showCmd.Flags().String("scramble", "", "apply this Singmaster move sequence before printing")
	showCmd.Flags().String("cfen", "", "start from this CFEN string instead of the solved cube")
}
