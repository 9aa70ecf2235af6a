package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug_ShapeAndAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		slug, err := NewSlug()
		require.NoError(t, err)
		assert.Len(t, slug, 8)
		assert.True(t, IsValidSlug(slug), "slug %q has characters outside the URL-safe alphabet", slug)
		assert.NotContains(t, slug, "=")
	}
}

func TestNewSlug_NoRepeatsInSample(t *testing.T) {
	seen := make(map[string]struct{}, 5000)
	for i := 0; i < 5000; i++ {
		slug, err := NewSlug()
		require.NoError(t, err)
		_, dup := seen[slug]
		require.False(t, dup, "duplicate slug %q after %d draws", slug, i)
		seen[slug] = struct{}{}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"aB3_-x9Z", true},
		{"", false},
		{"has space", false},
		{"slash/es", false},
		{"pad==", false},
		{strings.Repeat("a", 65), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlug(tt.in))
		})
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
