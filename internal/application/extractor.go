package app

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
	"github.com/randomtask2000/Kohya-prep/internal/geometry"
)

// Коэффициенты расширения головы относительно рамки лица.
const (
	headAboveRatio = 0.5
	headBelowRatio = 0.25
	headSideRatio  = 0.1
)

// RegionExtractor превращает найденные лица в пары кропов с тегами подписей.
type RegionExtractor struct {
	detector  port.FaceDetector
	landmarks port.LandmarkDetector
	rnd       port.RandomSource
	cropSize  int
}

// NewRegionExtractor собирает экстрактор. landmarks может быть nil — тогда
// каждое лицо получает запасной набор тегов.
func NewRegionExtractor(detector port.FaceDetector, landmarks port.LandmarkDetector, rnd port.RandomSource, cropSize int) *RegionExtractor {
	return &RegionExtractor{
		detector:  detector,
		landmarks: landmarks,
		rnd:       rnd,
		cropSize:  cropSize,
	}
}

// ExpandToHeadRegion расширяет рамку лица вверх на половину высоты, вниз на
// четверть и в стороны на десятую часть ширины, прижимая к кадру. Не падает:
// вырожденный вход даёт вырожденную прижатую рамку.
func ExpandToHeadRegion(frameWidth, frameHeight int, face entity.Rect) entity.Rect {
	fh := float64(face.Height())
	fw := float64(face.Width())
	head := entity.Rect{
		Top:    int(float64(face.Top) - fh*headAboveRatio),
		Bottom: int(float64(face.Bottom) + fh*headBelowRatio),
		Left:   int(float64(face.Left) - fw*headSideRatio),
		Right:  int(float64(face.Right) + fw*headSideRatio),
	}
	return head.Clamp(frameWidth, frameHeight)
}

// ExtractRandomFace находит лица в кадре, выбирает одно равновероятно и
// строит его пару кропов. nil-результат без ошибки означает, что лица нет;
// вызывающий просто не пишет вывод для этого кадра.
func (e *RegionExtractor) ExtractRandomFace(ctx context.Context, frame image.Image) (*entity.FaceCrop, error) {
	faces, err := e.detector.DetectFaces(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect faces: %w", err)
	}
	if len(faces) == 0 {
		return nil, nil
	}

	bounds := frame.Bounds()
	face := faces[e.rnd.Intn(len(faces))].Clamp(bounds.Dx(), bounds.Dy())
	if face.Empty() {
		return nil, nil
	}
	faceCrop := imaging.Crop(frame, face.ToImageRect())

	featureTags, masked := e.featureRegions(faceCrop)

	headRect := ExpandToHeadRegion(bounds.Dx(), bounds.Dy(), face)
	headRegion := imaging.Crop(frame, headRect.ToImageRect())
	head := geometry.ResizeWithPadding(headRegion, e.cropSize, e.rnd)

	return &entity.FaceCrop{
		Feature:     faceCrop,
		FeatureTags: featureTags,
		Head:        head,
		HeadTags:    entity.NewTagSet("head", "face").Union(featureTags),
		Masked:      masked,
	}, nil
}

// featureRegions запускает детекцию ориентиров на кропе лица. Имена найденных
// черт становятся тегами, а черты с достаточным числом точек получают вырезку
// по полигону. Любой сбой детекции даёт общие теги.
func (e *RegionExtractor) featureRegions(faceCrop image.Image) (entity.TagSet, map[string]image.Image) {
	if e.landmarks == nil {
		return entity.FallbackFeatureTags(), nil
	}
	set, err := e.landmarks.DetectLandmarks(faceCrop)
	if err != nil || set.Empty() {
		return entity.FallbackFeatureTags(), nil
	}

	masked := make(map[string]image.Image)
	for name, pts := range set {
		if len(pts) >= 3 {
			masked[name] = geometry.MaskPolygon(faceCrop, pts)
		}
	}
	return entity.NewTagSet(set.Names()...), masked
}
