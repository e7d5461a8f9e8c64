package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-thrust/internal/games/thrust"
	"github.com/vovakirdan/tui-thrust/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level set",
	Long: `Lists the levels a run would play, in order, and reports layout
problems such as unknown characters or a missing start marker.

Examples:
  thrust levels
  thrust levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in set)")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	issueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func runLevels(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	thrust.SetLogger(logger)
	thrust.SetLevelsDir(flagLevelsDir)

	lvls, err := thrust.LoadLevels()
	if err != nil {
		return err
	}

	summaries := tui.Summarize(lvls)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "Name", "Size", "Enemies", "Issues").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, s := range summaries {
		t.Row(
			fmt.Sprint(i+1),
			s.ID,
			s.Name,
			fmt.Sprintf("%dx%d", s.Cols, s.Rows),
			fmt.Sprint(s.Enemies),
			fmt.Sprint(s.Issues),
		)
	}
	fmt.Println(t.Render())

	for i := range lvls {
		issues := lvls[i].Issues()
		if len(issues) == 0 {
			continue
		}
		fmt.Println()
		fmt.Println(issueStyle.Render(lvls[i].ID + ":"))
		for _, is := range issues {
			fmt.Printf("  %s\n", is)
		}
	}
	return nil
}
