package container

import (
	"github.com/sirupsen/logrus"

	app "github.com/randomtask2000/Kohya-prep/internal/application"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// Deps — реализации портов, на которых работают сервисы.
type Deps struct {
	Detector    port.FaceDetector
	Landmarks   port.LandmarkDetector
	Segmenter   port.BackgroundSegmenter
	Orientation port.OrientationReader
	Workspace   port.Workspace
	Random      port.RandomSource
	Log         *logrus.Logger
}

type Container struct {
	Extractor *app.RegionExtractor
	Pipeline  *app.Pipeline
	Layout    *app.LayoutGenerator
	Batch     *app.Batch
	Extract   *app.Extract
}

// New собирает сервисы приложения. cropSize — фиксированная сторона квадрата
// кропов лица; opts настраивает конвейер подготовки.
func New(deps Deps, cropSize int, opts app.PipelineOptions) *Container {
	extractor := app.NewRegionExtractor(deps.Detector, deps.Landmarks, deps.Random, cropSize)
	normalizer := app.NewOrientationNormalizer(deps.Orientation)
	pipeline := app.NewPipeline(deps.Segmenter, normalizer, deps.Workspace, deps.Log, opts)
	layout := app.NewLayoutGenerator(deps.Workspace)

	return &Container{
		Extractor: extractor,
		Pipeline:  pipeline,
		Layout:    layout,
		Batch:     app.NewBatch(pipeline, layout, deps.Log),
		Extract:   app.NewExtract(extractor, deps.Workspace, deps.Log, opts.Format),
	}
}
