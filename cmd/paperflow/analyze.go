package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/danielsimonjr/paperflow"
	"github.com/danielsimonjr/paperflow/export"
	"github.com/danielsimonjr/paperflow/model"
	"github.com/danielsimonjr/paperflow/ocr"
)

var analyzeCmd = cobra.Command{
	Use:   "analyze [image file]",
	Short: "Recognize one scanned page and export its reconstructed layout",
	Args:  cobra.ExactArgs(1),
	Run:   runAnalyze,
}

const (
	flagOutput     = "output"
	flagFormat     = "format"
	flagConfidence = "confidence"
	flagBBoxes     = "bboxes"
)

func init() {
	analyzeCmd.Flags().String(flagOutput, "", "Output file; format is detected from its extension")
	viper.BindPFlag(flagOutput, analyzeCmd.Flags().Lookup(flagOutput))

	analyzeCmd.Flags().String(flagFormat, "text", "Export format: text, html, hocr, json, csv")
	viper.BindPFlag(flagFormat, analyzeCmd.Flags().Lookup(flagFormat))

	analyzeCmd.Flags().Bool(flagConfidence, false, "Include per-word confidence in the output")
	viper.BindPFlag(flagConfidence, analyzeCmd.Flags().Lookup(flagConfidence))

	analyzeCmd.Flags().Bool(flagBBoxes, false, "Include bounding boxes in JSON output")
	viper.BindPFlag(flagBBoxes, analyzeCmd.Flags().Lookup(flagBBoxes))
}

func runAnalyze(cmd *cobra.Command, args []string) {
	page, err := recognizeFile(args[0])
	if err != nil {
		zap.L().Fatal("recognition failed", zap.String("image", args[0]), zap.Error(err))
	}

	doc := paperflow.NewDocument().AddPage(page)
	if viper.GetBool(flagConfidence) {
		doc.IncludeConfidence()
	}
	if viper.GetBool(flagBBoxes) {
		doc.IncludeBoundingBoxes()
	}

	output := viper.GetString(flagOutput)
	format := export.ParseFormat(viper.GetString(flagFormat))
	if output != "" {
		if detected := export.DetectFormat(output); detected != export.Unknown {
			format = detected
		}
	}

	rendered, err := render(doc, format)
	if err != nil {
		zap.L().Fatal("export failed", zap.Stringer("format", format), zap.Error(err))
	}

	if output == "" {
		fmt.Print(rendered)
		return
	}

	if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
		zap.L().Fatal("writing output", zap.String("file", output), zap.Error(err))
	}

	zap.L().Info("page exported",
		zap.String("image", args[0]),
		zap.String("output", output),
		zap.Stringer("format", format),
		zap.Int("columns", doc.Analysis(page.Page).EstimatedColumns),
		zap.Int("tables", len(doc.Analysis(page.Page).Tables)))
}

// recognizeFile loads an image file and runs recognition on it
func recognizeFile(path string) (*model.PageResult, error) {
	data, width, height, err := loadImage(path)
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if lang := viper.GetString("lang"); lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			return nil, fmt.Errorf("setting language %q: %w", lang, err)
		}
	}

	page, err := client.Recognize(data)
	if err != nil {
		return nil, err
	}

	if page.ImageWidth == 0 || page.ImageHeight == 0 {
		page.ImageWidth = width
		page.ImageHeight = height
	}

	return page, nil
}

// render exports the document in the requested format
func render(doc *paperflow.Document, format export.Format) (string, error) {
	switch format {
	case export.HTML:
		return doc.HTML(), nil
	case export.HOCR:
		return doc.HOCR(), nil
	case export.JSON:
		return doc.JSON()
	case export.CSV:
		csvs := doc.TableCSVs()
		out := ""
		for i, csv := range csvs {
			if i > 0 {
				out += "\n\n"
			}
			out += csv
		}
		return out, nil
	case export.Text, export.Unknown:
		return doc.Text(), nil
	default:
		return doc.Text(), nil
	}
}
