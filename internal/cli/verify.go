package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/armin-ahmadii/kociemba/internal/notation"
	"github.com/spf13/cobra"
)

// parseSolution accepts either Singmaster notation ("R U R' U'") or the
// raw quarter-turn alphabet a solve run writes to its output file
// ("RURU"), telling them apart by whether the text contains whitespace
// or a modifier character.
func parseSolution(s string) ([]kociemba.Move, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, " '2") {
		return notation.Parse(s)
	}
	return notation.ParseRaw(s)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <input-file> <solution>",
	Short: "Check that a proposed solution solves a cube",
	Long: `Verify applies the quarter-turn solution (in Singmaster
notation, or the raw {U,D,L,R,F,B} character sequence a solve run
produces) to the cube in input-file and reports whether the result is
solved.

Examples:
  cube verify scramble.net "R U R' U' U R U' R'"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := readNetFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}

		moves, err := parseSolution(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}

		kociemba.ApplyMoves(&c, moves)
		if kociemba.IsSolved(c) {
			fmt.Println("PASS: solution reaches the solved state")
			return nil
		}
		fmt.Println("FAIL: solution does not reach the solved state")
		os.Exit(1)
		return nil
	},
}
