package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pagegrid/internal/pdf"
)

var (
	extractPage     int
	extractMarkdown bool
)

func init() {
	extractCmd.Flags().IntVarP(&extractPage, "page", "p", 1, "page number (1-based)")
	extractCmd.Flags().BoolVarP(&extractMarkdown, "markdown", "m", false, "structured markdown, rendered for the terminal")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract one page's text to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if extractPage < 1 {
			return fmt.Errorf("page must be >= 1")
		}

		if extractMarkdown {
			md, err := pdf.Markdown(path, extractPage-1)
			if err != nil {
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		ext, err := pdf.NewTabulaExtractor(path)
		if err != nil {
			return err
		}
		rows, err := ext.ExtractPage(extractPage - 1)
		if err != nil {
			return err
		}
		for _, row := range rows {
			var b strings.Builder
			for _, c := range row {
				b.WriteRune(c.Ch)
			}
			fmt.Println(strings.TrimRight(b.String(), " "))
		}
		return nil
	},
}
