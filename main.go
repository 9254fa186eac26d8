package main

import (
	"fmt"
	"os"

	"lostfound-market/internal/app"
	"lostfound-market/internal/config"
	"lostfound-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "lostfound-market",
	Short: "Campus lost-and-found marketplace with auctions for unclaimed items",
	Long: `Serves the lost-and-found marketplace over HTTP.

The store lives in memory and is seeded with demo users, items and auctions
on every start. Settings come from config.yaml, LOSTFOUND_* environment
variables and flags.`,
	SilenceUsage: true,
	RunE:         serve,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "path to a YAML config file (default ./config.yaml if present)")
	rootCmd.Flags().IntP("port", "p", 8080, "HTTP listen port")
	rootCmd.Flags().Bool("auto-approve", false, "publish new reports without admin review")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"server.port":        "port",
		"items.auto_approve": "auto-approve",
		"log.level":          "log-level",
	} {
		if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func serve(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	market, err := app.New(cfg)
	if err != nil {
		return err
	}

	utils.Info("starting lost-and-found server", map[string]any{
		"addr":         cfg.Server.Addr(),
		"auto_approve": cfg.Items.AutoApprove,
		"latency_min":  cfg.Latency.Min.String(),
		"latency_max":  cfg.Latency.Max.String(),
	})
	return market.Router.Run(cfg.Server.Addr())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
