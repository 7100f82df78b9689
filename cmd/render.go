package cmd

import (
	"os"

	"github.com/jsphweid/sheetmusic/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var renderOut string

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draws a document",
	Long:  `Draws a document (or stdin) as an ASCII staff.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runRender(path, renderOut)
	},
}

func runRender(path, out string) error {
	s, err := readStaff(path)
	if err != nil {
		return err
	}
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	if out == "" {
		return render.Write(os.Stdout, s, opts)
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", out)
	}
	defer f.Close()
	if err := render.Write(f, s, opts); err != nil {
		return err
	}
	logger.Printf("sheet music written to %v", out)
	return nil
}
