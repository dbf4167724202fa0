package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bastianbuilt.com/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bastian",
	Short: "Bastian Built portfolio site",
	Long: `Serves the Bastian Built industrial design portfolio: the project
catalogue, project detail pages, the contact form and the sitemap.

Configuration is read from --config, then BASTIAN_CONFIG_FILE, then
.bastian.yml in the working directory. Environment variables such as
DATABASE_URL, RESEND_API_KEY and CONTACT_TO_EMAIL override the file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bastian.yml, can also use BASTIAN_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// loadConfig reads the config file and environment into a Config
func loadConfig() (*config.Config, error) {
	v := viper.GetViper()
	if err := config.ReadConfigFile(v, cfgFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
