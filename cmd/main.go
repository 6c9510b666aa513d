package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/randomtask2000/Kohya-prep/config"
	app "github.com/randomtask2000/Kohya-prep/internal/application"
	"github.com/randomtask2000/Kohya-prep/internal/container"
	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
	"github.com/randomtask2000/Kohya-prep/internal/infrastructure/exifmeta"
	"github.com/randomtask2000/Kohya-prep/internal/infrastructure/landmark"
	"github.com/randomtask2000/Kohya-prep/internal/infrastructure/storage"
	"github.com/randomtask2000/Kohya-prep/internal/infrastructure/vision"
)

var (
	cfg *config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "kohya-prep",
	Short: "Prepare selfie photos and video frames for LoRA training",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
}

var extractOpts struct {
	input  string
	output string
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract face and head crops from an image or video",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(extractOpts.input); err != nil {
			return fmt.Errorf("source not found: %w", err)
		}

		detector, err := vision.NewCascadeDetector(cfg.CascadeFile)
		if err != nil {
			return fmt.Errorf("face detector: %w", err)
		}
		defer detector.Close()

		var landmarks port.LandmarkDetector
		if cfg.PuplocCascade != "" {
			landmarks, err = landmark.NewPigoLandmarker(cfg.PuplocCascade, cfg.FlpCascadeDir)
			if err != nil {
				log.WithError(err).Warn("landmark detection disabled")
				landmarks = nil
			}
		}

		frames, err := openFrames(extractOpts.input)
		if err != nil {
			return err
		}
		defer frames.Close()

		c := newContainer(detector, landmarks)
		report, err := c.Extract.Run(context.Background(), frames, extractOpts.output)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"frames": report.Frames,
			"crops":  report.Crops,
		}).Info("extraction finished")
		return nil
	},
}

var prepareOpts struct {
	source string
	target string
	class  string
	lora   string
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Normalize a directory of images into a Kohya dataset tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := storage.ListImages(prepareOpts.source)
		if err != nil {
			return fmt.Errorf("source not found: %w", err)
		}

		className := cfg.ClassName
		if prepareOpts.class != "" {
			className = prepareOpts.class
		}
		loraName := cfg.LoraName
		if prepareOpts.lora != "" {
			loraName = prepareOpts.lora
		}

		plan := entity.NewLayoutPlan(prepareOpts.target, className, loraName, len(sources))
		c := newContainer(nil, nil)

		bar := progressbar.Default(int64(len(sources)))
		report, err := c.Batch.Run(context.Background(), sources, plan, func() {
			_ = bar.Add(1)
		})
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"processed": report.Processed,
			"skipped":   report.Skipped,
			"dir":       plan.ImageDir(),
		}).Info("batch finished")
		return nil
	},
}

func newContainer(detector port.FaceDetector, landmarks port.LandmarkDetector) *container.Container {
	return container.New(container.Deps{
		Detector:    detector,
		Landmarks:   landmarks,
		Segmenter:   vision.NewGrabCutSegmenter(),
		Orientation: exifmeta.NewReader(),
		Workspace:   storage.NewFSWorkspace(),
		Random:      app.NewMathRandom(),
		Log:         log,
	}, cfg.CropSize, app.PipelineOptions{
		Size:             cfg.OutputSize,
		Format:           cfg.OutputFormat,
		RemoveBackground: cfg.RemoveBackground,
	})
}

// openFrames выбирает источник кадров по расширению: видеоконтейнеры идут
// через OpenCV, всё остальное читается как одиночное изображение.
func openFrames(path string) (port.FrameSource, error) {
	if storage.IsVideo(path) {
		return vision.NewVideoFrameSource(path)
	}
	return storage.NewImageFrameSource(path), nil
}

func init() {
	extractCmd.Flags().StringVarP(&extractOpts.input, "input", "i", "", "Path to source image or video")
	extractCmd.Flags().StringVarP(&extractOpts.output, "output", "o", "default_output", "Directory for the cropped images")
	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)

	prepareCmd.Flags().StringVarP(&prepareOpts.source, "source", "s", "", "Directory of source images")
	prepareCmd.Flags().StringVarP(&prepareOpts.target, "target", "t", "", "Target root for the dataset tree")
	prepareCmd.Flags().StringVarP(&prepareOpts.class, "class", "c", "", "Class name token (default from CLASS_NAME)")
	prepareCmd.Flags().StringVarP(&prepareOpts.lora, "lora", "l", "", "LoRA name token (default from LORA_NAME)")
	_ = prepareCmd.MarkFlagRequired("source")
	_ = prepareCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(prepareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
