package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pagegrid/internal/config"
)

// Run launches an interactive form over the persisted settings and saves
// the result on submit.
func Run() error {
	cur, err := config.Load()
	if err != nil {
		return err
	}

	threshold := strconv.Itoa(cur.ClickThresholdCells)
	ratio := strconv.FormatFloat(cur.SplitRatio, 'f', 2, 64)
	cellW := strconv.Itoa(cur.CellPixelWidth)
	cellH := strconv.Itoa(cur.CellPixelHeight)
	modifier := cur.BlockModifier
	pdftoppm := cur.PdftoppmPath
	osClip := cur.OSClipboard

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(22).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(22).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("pagegrid settings").
				Description("Saved to settings.json in the user config directory"),
			huh.NewInput().
				Title("Click threshold (cells)").
				Value(&threshold).
				Validate(validInt(1, 10)),
			huh.NewSelect[string]().
				Title("Block select modifier").
				Options(
					huh.NewOption("alt", "alt"),
					huh.NewOption("ctrl", "ctrl"),
				).
				Value(&modifier),
			huh.NewInput().
				Title("Split ratio").
				Value(&ratio).
				Validate(validFloat(0.1, 0.9)),
			huh.NewInput().
				Title("Cell width (px)").
				Value(&cellW).
				Validate(validInt(1, 64)),
			huh.NewInput().
				Title("Cell height (px)").
				Value(&cellH).
				Validate(validInt(1, 128)),
			huh.NewInput().
				Title("pdftoppm binary").
				Value(&pdftoppm),
			huh.NewConfirm().
				Title("Mirror yanks to OS clipboard").
				Value(&osClip),
		),
	).WithTheme(theme).WithWidth(64)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	cur.ClickThresholdCells, _ = strconv.Atoi(threshold)
	cur.SplitRatio, _ = strconv.ParseFloat(ratio, 64)
	cur.CellPixelWidth, _ = strconv.Atoi(cellW)
	cur.CellPixelHeight, _ = strconv.Atoi(cellH)
	cur.BlockModifier = modifier
	cur.PdftoppmPath = pdftoppm
	cur.OSClipboard = osClip

	if err := config.Save(cur); err != nil {
		return err
	}
	path, _ := config.Path()
	fmt.Printf("\n✓ saved %s\n\n", path)
	return nil
}

func validInt(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be %d..%d", lo, hi)
		}
		return nil
	}
}

func validFloat(lo, hi float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if f < lo || f > hi {
			return fmt.Errorf("must be %.1f..%.1f", lo, hi)
		}
		return nil
	}
}
