package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTagSet_DedupesAndSorts(t *testing.T) {
	set := NewTagSet("nose", "face", "nose", "chin")
	require.Equal(t, TagSet{"chin", "face", "nose"}, set)
}

func TestTagSetUnion(t *testing.T) {
	head := NewTagSet("head", "face").Union(NewTagSet("face", "nose_region"))
	require.Equal(t, TagSet{"face", "head", "nose_region"}, head)
}

func TestTagSetCaption(t *testing.T) {
	require.Equal(t, "face, head", NewTagSet("head", "face").Caption())
}

func TestFallbackFeatureTags(t *testing.T) {
	fallback := FallbackFeatureTags()
	require.Len(t, fallback, 6)
	for _, tag := range []string{"face", "forehead", "eye_region", "nose_region", "mouth_region", "chin_region"} {
		require.True(t, fallback.Contains(tag), tag)
	}
}
