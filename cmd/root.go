package cmd

import (
	"io"
	"log"
	"os"

	"github.com/jsphweid/sheetmusic/config"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/sheet"
	"github.com/jsphweid/sheetmusic/staff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg    *config.Config
	logger = log.New(os.Stderr, "sheetmusic: ", log.LstdFlags)
)

var rootCmd = &cobra.Command{
	Use:   "sheetmusic",
	Short: "Sheet music maker",
	Long:  `Reads #SHEETMUSIC documents, edits them and draws them as ASCII staves.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("clef", "", "file drawn to the left of the staff")
	flags.Bool("header", true, "print the song info above the staff")
	cobra.CheckErr(viper.BindPFlag("render.clef", flags.Lookup("clef")))
	cobra.CheckErr(viper.BindPFlag("render.header", flags.Lookup("header")))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func renderOptions() (render.Options, error) {
	clef, err := render.LoadClef(cfg.Render.Clef)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{Clef: clef, Header: cfg.Render.Header}, nil
}

// openInput is stdin for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	return f, errors.Wrapf(err, "could not open %v", path)
}

func readStaff(path string) (*staff.Staff, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return sheet.Decode(in)
}

// readStaffOrEmpty starts from an empty staff when the document is unusable.
func readStaffOrEmpty(path string) *staff.Staff {
	if path == "" {
		return staff.New()
	}
	s, err := readStaff(path)
	if err != nil {
		logger.Printf("%v; starting from an empty staff", err)
		return staff.New()
	}
	return s
}
