package wikitoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkondo/wikitoc"
)

func TestNewSuccessResult(t *testing.T) {
	t.Parallel()

	t.Run("derives total_items from the entries", func(t *testing.T) {
		t.Parallel()

		toc := []wikitoc.TocEntry{
			{Level: 2, Title: "概要", Anchor: "概要", Href: "#概要"},
			{Level: 3, Title: "Amazon EC2", Anchor: "Amazon_EC2", Href: "#Amazon_EC2"},
		}

		result := wikitoc.NewSuccessResult("https://ja.wikipedia.org/wiki/Amazon_Web_Services", "Amazon Web Services", toc)

		assert.True(t, result.Success)
		assert.Equal(t, "Amazon Web Services", result.Title)
		assert.Equal(t, len(result.TOC), result.TotalItems)
		assert.Equal(t, 2, result.TotalItems)
		assert.Nil(t, result.Error)
	})

	t.Run("empty TOC is a success with zero items", func(t *testing.T) {
		t.Parallel()

		result := wikitoc.NewSuccessResult("https://en.wikipedia.org/wiki/Stub", "Stub", nil)

		assert.True(t, result.Success)
		require.NotNil(t, result.TOC)
		assert.Empty(t, result.TOC)
		assert.Zero(t, result.TotalItems)
	})
}

func TestNewRejectedResult(t *testing.T) {
	t.Parallel()

	v := wikitoc.DefaultPolicy().Validate("https://ja.wikipedia.org/wiki/特別:管理者")
	require.False(t, v.Allowed)

	result := wikitoc.NewRejectedResult("https://ja.wikipedia.org/wiki/特別:管理者", v)

	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, wikitoc.CategorySpecialPage, result.Error.Category)
	assert.Equal(t, v.Reason, result.Error.Message)
	assert.Empty(t, result.TOC)
	assert.Zero(t, result.TotalItems)
}

func TestNewErrorResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		category wikitoc.Category
	}{
		{"timeout", wikitoc.ETIMEOUT, wikitoc.CategoryTimeout},
		{"connection failure", wikitoc.EUNAVAILABLE, wikitoc.CategoryConnectionFailed},
		{"upstream status", wikitoc.EUPSTREAM, wikitoc.CategoryHTTPError},
		{"extraction failure", wikitoc.EINVALID, wikitoc.CategoryExtractionFailure},
		{"anything else", wikitoc.EINTERNAL, wikitoc.CategoryInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := wikitoc.Errorf(tt.code, "it failed")
			result := wikitoc.NewErrorResult("https://en.wikipedia.org/wiki/Go", err)

			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.Equal(t, tt.category, result.Error.Category)
			assert.Equal(t, "it failed", result.Error.Message)
		})
	}
}

func TestNewInputFailureResult(t *testing.T) {
	t.Parallel()

	result := wikitoc.NewInputFailureResult("", "URL parameter is required")

	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, wikitoc.CategoryInputFailure, result.Error.Category)
}
