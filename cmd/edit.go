package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/sheetmusic/tui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	editCmd.Flags().String("output", "", "where 'Save to file' writes the render")
	cobra.CheckErr(viper.BindPFlag("render.output", editCmd.Flags().Lookup("output")))
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edits a document interactively",
	Long:  `Opens the menu driven editor on a document, or on an empty 4 bar staff.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		s := readStaffOrEmpty(path)
		opts, err := renderOptions()
		if err != nil {
			return err
		}

		m := tui.New(s, opts, cfg.Render.Output)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return errors.Wrap(err, "editor failed")
		}
		return nil
	},
}
