package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "linger2ibex",
	Short: "Linger stimulus bank converter",
	Long:  "linger2ibex converts linger-format stimulus banks into ibex experiment configuration fragments for web-based self-paced reading studies.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("LINGER2IBEX")
	viper.AutomaticEnv()
}
