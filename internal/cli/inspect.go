package cli

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mindconv/internal/outline"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print the heading outline of a DOCX file",
	Long: `Reads a DOCX file (typically one produced by mindconv) and prints its
heading outline, indented by level.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := outline.Read(normalizeSourcePath(args[0]))
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(dimStyle.Render("no headings found"))
			return nil
		}

		for _, e := range entries {
			indent := strings.Repeat("  ", e.Level-1)
			line := indent + e.Title
			if e.Level == 1 {
				line = headingStyle.Render(line)
			}
			fmt.Println(line)
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d headings", len(entries))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
