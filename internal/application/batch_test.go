package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
)

func TestBatchRun_CorruptFileDoesNotConsumeSequence(t *testing.T) {
	dir := t.TempDir()
	var sources []string
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("photo_%d.png", i)
		if i == 3 {
			// Заголовок PNG цел, тело обрезано: поверхностная проверка его пропустит.
			sources = append(sources, writeTruncatedImage(t, dir, name))
			continue
		}
		sources = append(sources, writeTestImage(t, dir, name, 32, 24))
	}

	ws := newFakeWorkspace()
	pipeline := newTestPipeline(ws, nil, PipelineOptions{Size: 16, Format: "png"})
	batch := NewBatch(pipeline, NewLayoutGenerator(ws), quietLogger())

	plan := entity.NewLayoutPlan(filepath.Join(dir, "out"), "woman", "m4rni", len(sources))
	progress := 0
	report, err := batch.Run(context.Background(), sources, plan, func() { progress++ })
	require.NoError(t, err)
	require.Equal(t, 4, report.Processed)
	require.Equal(t, 1, report.Skipped)
	require.Equal(t, 5, progress)

	var names []string
	for path := range ws.files {
		names = append(names, filepath.Base(path))
	}
	sort.Strings(names)
	require.Equal(t, []string{"image_1.png", "image_2.png", "image_3.png", "image_4.png"}, names)

	// Всё легло в листовую директорию плана.
	for path := range ws.files {
		require.True(t, strings.HasPrefix(path, plan.ImageDir()), path)
	}
}

func TestBatchRun_LayoutFailureAborts(t *testing.T) {
	ws := newFakeWorkspace()
	ws.prepErr = os.ErrPermission
	pipeline := newTestPipeline(ws, nil, PipelineOptions{Size: 16, Format: "png"})
	batch := NewBatch(pipeline, NewLayoutGenerator(ws), quietLogger())

	plan := entity.NewLayoutPlan("/out", "woman", "m4rni", 0)
	_, err := batch.Run(context.Background(), nil, plan, nil)
	require.ErrorIs(t, err, os.ErrPermission)
}
