package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/danielsimonjr/paperflow"
	"github.com/danielsimonjr/paperflow/export"
)

var batchCmd = cobra.Command{
	Use:   "batch [manifest.yaml]",
	Short: "Recognize and export a batch of scanned pages from a manifest",
	Args:  cobra.ExactArgs(1),
	Run:   runBatch,
}

const flagContinueOnError = "continue-on-error"

func init() {
	batchCmd.Flags().Bool(flagContinueOnError, false, "Keep processing remaining jobs when one fails")
	viper.BindPFlag(flagContinueOnError, batchCmd.Flags().Lookup(flagContinueOnError))
}

// batchJob describes one image-to-export job in a manifest
type batchJob struct {
	Image  string `yaml:"image"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

// batchManifest is the YAML manifest schema for the batch command
type batchManifest struct {
	Jobs []batchJob `yaml:"jobs"`
}

func runBatch(cmd *cobra.Command, args []string) {
	f, err := os.ReadFile(args[0])
	if err != nil {
		zap.L().Fatal("error reading manifest", zap.Error(err))
	}

	manifest := batchManifest{}
	if err := yaml.Unmarshal(f, &manifest); err != nil {
		zap.L().Fatal("error unmarshalling manifest", zap.Error(err))
	}

	zap.L().Info("starting batch", zap.Int("jobs", len(manifest.Jobs)))

	for i, job := range manifest.Jobs {
		if err := processJob(job); err != nil {
			if viper.GetBool(flagContinueOnError) {
				zap.L().Error("job failed", zap.Int("job", i), zap.String("image", job.Image), zap.Error(err))
				continue
			}
			zap.L().Fatal("job failed", zap.Int("job", i), zap.String("image", job.Image), zap.Error(err))
		}

		zap.L().Info("job complete", zap.Int("job", i), zap.String("output", job.Output))
	}
}

// processJob recognizes one image and writes the requested export
func processJob(job batchJob) error {
	if job.Image == "" || job.Output == "" {
		return fmt.Errorf("job needs both image and output")
	}

	page, err := recognizeFile(job.Image)
	if err != nil {
		return err
	}

	format := export.DetectFormat(job.Output)
	if job.Format != "" {
		format = export.ParseFormat(job.Format)
	}

	doc := paperflow.NewDocument().AddPage(page)

	rendered, err := render(doc, format)
	if err != nil {
		return err
	}

	return os.WriteFile(job.Output, []byte(rendered), 0644)
}
