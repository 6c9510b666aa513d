package app

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
	"github.com/randomtask2000/Kohya-prep/internal/geometry"
)

// PipelineOptions настраивает цепочку преобразований одного изображения.
type PipelineOptions struct {
	Size             int    // сторона выходного квадрата, например 768 или 512
	Format           string // выходное расширение: png, jpg или gif
	RemoveBackground bool
}

// Pipeline выполняет цепочку над изображением: удаление фона, поправка
// ориентации, квадратный кроп с ресайзом, кодирование, запись. Каждый этап
// возвращает новый буфер; ничто не живёт дольше одного вызова ProcessFile.
type Pipeline struct {
	segmenter  port.BackgroundSegmenter
	normalizer *OrientationNormalizer
	workspace  port.Workspace
	log        *logrus.Logger
	opts       PipelineOptions
}

func NewPipeline(segmenter port.BackgroundSegmenter, normalizer *OrientationNormalizer, workspace port.Workspace, log *logrus.Logger, opts PipelineOptions) *Pipeline {
	return &Pipeline{
		segmenter:  segmenter,
		normalizer: normalizer,
		workspace:  workspace,
		log:        log,
		opts:       opts,
	}
}

// Format возвращает расширение, в которое кодирует конвейер.
func (p *Pipeline) Format() string { return p.opts.Format }

// Validate проверяет, что файл по пути path декодируется как изображение.
// Batch вызывает его до расхода номера, поэтому поток декодируется целиком:
// проверка одного заголовка пропустила бы обрезанный файл и сожгла бы номер.
func (p *Pipeline) Validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := imaging.Decode(f); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// ProcessFile читает исходное изображение, прогоняет цепочку и пишет
// результат в destPath.
func (p *Pipeline) ProcessFile(ctx context.Context, srcPath, destPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	return p.Process(ctx, data, destPath)
}

// Process выполняет цепочку над уже прочитанными байтами.
func (p *Pipeline) Process(ctx context.Context, data []byte, destPath string) error {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	if p.opts.RemoveBackground && p.segmenter != nil {
		cut, err := p.segmenter.RemoveBackground(ctx, img)
		if err != nil {
			// Недоступная сегментация не фатальна: изображение идёт дальше как есть.
			p.log.WithError(err).Debug("background removal skipped")
		} else {
			img = cut
		}
	}

	img = p.normalizer.Normalize(data, img)
	img = geometry.SquareCropResize(img, p.opts.Size)

	encoded, err := EncodeImage(img, p.opts.Format)
	if err != nil {
		return err
	}
	if err := p.workspace.WriteFile(destPath, encoded); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}

// EncodeImage сериализует img в формат, названный расширением файла.
func EncodeImage(img image.Image, format string) ([]byte, error) {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", format, err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
