package landmark

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// flpFeatureNames группирует файлы каскадов ориентиров pigo в области черт
// уровня подписи. Каскады вне карты сохраняют имя файла.
var flpFeatureNames = map[string]string{
	"lp38": "eye_region",
	"lp42": "eye_region",
	"lp44": "nose_region",
	"lp46": "nose_region",
	"lp81": "mouth_region",
	"lp82": "mouth_region",
	"lp84": "mouth_region",
	"lp93": "chin_region",
}

// PigoLandmarker находит черты лица внутри кропа чисто-Go каскадами pigo:
// сначала зрачки, затем точечные каскады ориентиров, привязанные к найденным
// позициям глаз.
type PigoLandmarker struct {
	puploc   *pigo.PuplocCascade
	flp      map[string][]*pigo.FlpCascade
	perturbs int
}

// NewPigoLandmarker загружает каскад локализации зрачков и, если flpDir не
// пуст, точечные каскады ориентиров из этой директории.
func NewPigoLandmarker(puplocFile, flpDir string) (*PigoLandmarker, error) {
	data, err := os.ReadFile(puplocFile)
	if err != nil {
		return nil, fmt.Errorf("read puploc cascade: %w", err)
	}
	puploc, err := pigo.NewPuplocCascade().UnpackCascade(data)
	if err != nil {
		return nil, fmt.Errorf("unpack puploc cascade: %w", err)
	}

	l := &PigoLandmarker{puploc: puploc, perturbs: 63}
	if flpDir != "" {
		flp, err := puploc.ReadCascadeDir(flpDir)
		if err != nil {
			return nil, fmt.Errorf("read landmark cascades: %w", err)
		}
		l.flp = flp
	}
	return l, nil
}

// DetectLandmarks предполагает, что кроп содержит ровно одно лицо на весь
// кадр. Пустой набор без ошибки означает, что глаза не нашлись и вызывающему
// стоит взять запасные теги.
func (l *PigoLandmarker) DetectLandmarks(faceCrop image.Image) (entity.LandmarkSet, error) {
	bounds := faceCrop.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		return entity.LandmarkSet{}, nil
	}

	params := pigo.ImageParams{
		Pixels: pigo.RgbToGrayscale(faceCrop),
		Rows:   rows,
		Cols:   cols,
		Dim:    cols,
	}

	// Затравливаем детекторы зрачков самим кропом, как если бы детектор отдал
	// весь кроп как рамку лица.
	scale := float32(rows)
	if cols < rows {
		scale = float32(cols)
	}
	row, col := rows/2, cols/2

	leftEye := l.puploc.RunDetector(pigo.Puploc{
		Row:      row - int(0.085*float64(scale)),
		Col:      col - int(0.185*float64(scale)),
		Scale:    scale * 0.45,
		Perturbs: l.perturbs,
	}, params, 0.0, false)

	rightEye := l.puploc.RunDetector(pigo.Puploc{
		Row:      row - int(0.085*float64(scale)),
		Col:      col + int(0.185*float64(scale)),
		Scale:    scale * 0.45,
		Perturbs: l.perturbs,
	}, params, 0.0, false)

	set := entity.LandmarkSet{}
	if leftEye == nil || rightEye == nil || leftEye.Row <= 0 || rightEye.Row <= 0 {
		return set, nil
	}
	set["left_eye"] = []image.Point{{X: leftEye.Col, Y: leftEye.Row}}
	set["right_eye"] = []image.Point{{X: rightEye.Col, Y: rightEye.Row}}

	for name, cascades := range l.flp {
		feature := flpFeatureNames[name]
		if feature == "" {
			feature = name
		}
		for _, cascade := range cascades {
			for _, flip := range []bool{false, true} {
				pt := cascade.GetLandmarkPoint(leftEye, rightEye, params, l.perturbs, flip)
				if pt == nil || pt.Row <= 0 || pt.Col <= 0 {
					continue
				}
				set[feature] = append(set[feature], image.Point{X: pt.Col, Y: pt.Row})
			}
		}
	}
	return set, nil
}

var _ port.LandmarkDetector = (*PigoLandmarker)(nil)
