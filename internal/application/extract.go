package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// ExtractReport подводит итог одного прогона извлечения.
type ExtractReport struct {
	Frames int // прочитано кадров из источника
	Crops  int // кадров, давших пару кропов
}

// Extract управляет извлечением кропов из источника кадров: на кадр
// выбирается не больше одного лица, записываются кроп черт и кроп головы,
// каждый с файлом подписи.
type Extract struct {
	extractor *RegionExtractor
	workspace port.Workspace
	log       *logrus.Logger
	format    string
}

func NewExtract(extractor *RegionExtractor, workspace port.Workspace, log *logrus.Logger, format string) *Extract {
	return &Extract{
		extractor: extractor,
		workspace: workspace,
		log:       log,
		format:    format,
	}
}

// Run читает кадры до исчерпания источника и пишет кропы кадров с найденным
// лицом в outDir. Кадры без лица не дают вывода. Сбой детектора на кадре
// пропускает только этот кадр.
func (e *Extract) Run(ctx context.Context, frames port.FrameSource, outDir string) (*ExtractReport, error) {
	if err := e.workspace.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	report := &ExtractReport{}
	for {
		frame, err := frames.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("read frame: %w", err)
		}
		report.Frames++

		crop, err := e.extractor.ExtractRandomFace(ctx, frame)
		if err != nil {
			e.log.WithField("frame", report.Frames).WithError(err).Warn("frame skipped")
			continue
		}
		if crop == nil {
			continue
		}

		if err := e.writeCrop(outDir, report.Crops, crop); err != nil {
			e.log.WithField("frame", report.Frames).WithError(err).Warn("write failed")
			continue
		}
		report.Crops++
	}
	return report, nil
}

func (e *Extract) writeCrop(outDir string, n int, crop *entity.FaceCrop) error {
	feature, err := EncodeImage(crop.Feature, e.format)
	if err != nil {
		return err
	}
	head, err := EncodeImage(crop.Head, e.format)
	if err != nil {
		return err
	}

	featureBase := fmt.Sprintf("feature_crop_%d", n)
	headBase := fmt.Sprintf("head_crop_%d", n)
	files := []struct {
		name string
		data []byte
	}{
		{featureBase + "." + e.format, feature},
		{featureBase + ".txt", []byte(crop.FeatureTags.Caption())},
		{headBase + "." + e.format, head},
		{headBase + ".txt", []byte(crop.HeadTags.Caption())},
	}
	for _, f := range files {
		if err := e.workspace.WriteFile(filepath.Join(outDir, f.name), f.data); err != nil {
			return err
		}
	}

	for name, img := range crop.Masked {
		data, err := EncodeImage(img, e.format)
		if err != nil {
			return err
		}
		maskName := fmt.Sprintf("%s_%s.%s", featureBase, name, e.format)
		if err := e.workspace.WriteFile(filepath.Join(outDir, maskName), data); err != nil {
			return err
		}
	}
	return nil
}
