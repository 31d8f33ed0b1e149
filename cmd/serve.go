/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sudoDevesh/swagger2jmeter/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API exposing the conversion pipeline:

  GET  /api/endpoints?url=...  list the endpoints of a spec, grouped by tag
  POST /api/plan               generate a test plan from a config and selection
  GET  /health                 liveness check`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

		addr := serveAddr
		if !cmd.Flags().Changed("addr") && viper.IsSet("server.addr") {
			addr = viper.GetString("server.addr")
		}

		if err := server.New(addr).Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}
