package cmd

import (
	"bytes"
	"os"

	"github.com/jsphweid/sheetmusic/sheet"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var fmtWrite bool

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrites a document in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runFmt(path, fmtWrite)
	},
}

func runFmt(path string, write bool) error {
	s, err := readStaff(path)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := sheet.Encode(&b, s); err != nil {
		return err
	}
	if !write || path == "" || path == "-" {
		_, err := os.Stdout.Write(b.Bytes())
		return errors.Wrap(err, "could not write document")
	}
	return errors.Wrapf(os.WriteFile(path, b.Bytes(), 0o644), "could not write %v", path)
}
