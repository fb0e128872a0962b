// Package cli implements the mindconv command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/dgallion1/mindconv/internal/convert"
	"github.com/dgallion1/mindconv/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagOutput   string
	flagImgWidth float64
	flagNoTOC    bool
	flagNoNotes  bool
)

var rootCmd = &cobra.Command{
	Use:   "mindconv SOURCE",
	Short: "Convert a mind-map file to DOCX",
	Long: `mindconv converts an XMind mind-map file into a DOCX document:
topic hierarchy becomes heading levels, leaf topics become bulleted text,
embedded images become inline pictures, and a table-of-contents field is
inserted for the word processor to evaluate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mindconv %s\n", version.String()))

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output DOCX path (default: source path with .docx extension)")
	rootCmd.Flags().Float64Var(&flagImgWidth, "img-width", 6.0, "Embedded image width in inches")
	rootCmd.Flags().BoolVar(&flagNoTOC, "no-toc", false, "Do not insert a table-of-contents field")
	rootCmd.Flags().BoolVar(&flagNoNotes, "no-notes", false, "Do not emit topic notes as body paragraphs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func runConvert(rawSource string) error {
	source := normalizeSourcePath(rawSource)
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("source file not found: %s", source)
	}

	output, err := resolveOutputPath(source, flagOutput)
	if err != nil {
		return err
	}

	opts := convert.DefaultOptions()
	opts.ImageWidth = flagImgWidth
	opts.TOC = !flagNoTOC
	opts.Notes = !flagNoNotes

	if err := convert.File(source, output, opts); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("Wrote DOCX: " + output))
	return nil
}
