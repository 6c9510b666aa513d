package app

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
)

// BatchReport подводит итог одного прогона подготовки.
type BatchReport struct {
	Processed int
	Skipped   int
}

// Batch управляет подготовкой: строит дерево датасета и прогоняет каждый
// исходный файл через конвейер, по одному изображению за раз.
type Batch struct {
	pipeline *Pipeline
	layout   *LayoutGenerator
	log      *logrus.Logger
}

func NewBatch(pipeline *Pipeline, layout *LayoutGenerator, log *logrus.Logger) *Batch {
	return &Batch{pipeline: pipeline, layout: layout, log: log}
}

// Run обрабатывает sources в листовую директорию плана. Нечитаемые файлы
// пропускаются без расхода номера; ошибки обработки отдельного файла
// логируются и не прерывают прогон. onProgress, если задан, вызывается
// по разу на исходный файл.
func (b *Batch) Run(ctx context.Context, sources []string, plan *entity.LayoutPlan, onProgress func()) (*BatchReport, error) {
	imageDir, err := b.layout.Build(plan)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{}
	for _, src := range sources {
		b.runOne(ctx, src, imageDir, plan, report)
		if onProgress != nil {
			onProgress()
		}
	}
	return report, nil
}

func (b *Batch) runOne(ctx context.Context, src, imageDir string, plan *entity.LayoutPlan, report *BatchReport) {
	if err := b.pipeline.Validate(src); err != nil {
		b.log.WithField("file", src).WithError(err).Warn("skipping unreadable image")
		report.Skipped++
		return
	}

	name := plan.NextFileName(b.pipeline.Format())
	if err := b.pipeline.ProcessFile(ctx, src, filepath.Join(imageDir, name)); err != nil {
		b.log.WithField("file", src).WithError(err).Warn("processing failed")
		report.Skipped++
		return
	}
	report.Processed++
}
