// Command paperflow recognizes scanned pages, reconstructs their layout,
// and exports the result as text, HTML, hOCR, JSON, or CSV.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "paperflow",
	Short: "Scanned-page layout reconstruction and export",
}

func main() {
	setupZap()
	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	viper.AddConfigPath(".")

	viper.SetConfigType("yaml")
	viper.SetConfigName(".paperflow.yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		zap.L().Debug("loaded config file", zap.String("file", viper.ConfigFileUsed()))
	}
}

func setupZap() {
	logger, _ := zap.NewDevelopment()
	zap.ReplaceGlobals(logger)
}

func init() {
	rootCmd.PersistentFlags().String("lang", "eng", "Recognition language (Tesseract code, e.g. eng or eng+fra)")
	viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))

	rootCmd.AddCommand(&analyzeCmd)
	rootCmd.AddCommand(&batchCmd)
}
