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

var parseCfenCmd = &cobra.Command{
	Use:   "parse-cfen <cfen-string>",
	Short: "Parse a CFEN string and print the cube's facelet net",
	Long: `Parse a CFEN string (six run-length-encoded U/R/F/D/L/B faces
separated by '/') and print the facelet net it describes.

Example:
  cube parse-cfen "U9/R9/F9/D9/L9/B9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfen.FromCFEN(args[0])
		if err != nil {
			return fmt.Errorf("parse-cfen: %w", err)
		}
		fmt.Print(facelet.Print(c))
		return nil
	},
}

var generateCfenCmd = &cobra.Command{
	Use:   "generate-cfen [scramble]",
	Short: "Apply a scramble and print the resulting CFEN string",
	Long: `Apply a Singmaster move sequence to the solved cube (or to
--start if given, a net file) and print the resulting CFEN string.

Example:
  cube generate-cfen "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")

		var c kociemba.Cube
		if start != "" {
			var err error
			c, err = readNetFile(start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "generate-cfen: %v\n", err)
				os.Exit(1)
			}
		} else {
			c = kociemba.Solved()
		}

		if len(args) == 1 && args[0] != "" {
			moves, err := notation.Parse(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "generate-cfen: %v\n", err)
				os.Exit(1)
			}
			kociemba.ApplyMoves(&c, moves)
		}

		fmt.Println(cfen.ToCFEN(c))
		return nil
	},
}

func init() {
	generateCfenCmd.Flags().String("start", "", "starting facelet-net file (default: solved)")
}
