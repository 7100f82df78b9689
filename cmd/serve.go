package cmd

import (
	"net/http"

	"github.com/jsphweid/sheetmusic/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	serveCmd.Flags().String("addr", "", "listen address")
	cobra.CheckErr(viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves POST /render and POST /edit over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		return serve(server.New(opts, logger))
	},
}

func serve(s *server.Server) error {
	logger.Printf("listening on %v", cfg.Server.Addr)
	err := http.ListenAndServe(cfg.Server.Addr, s.Handler(cfg.Server.AllowedOrigins))
	return errors.Wrap(err, "server stopped")
}
