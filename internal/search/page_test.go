package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-service/internal/apperr"
)

func TestNewPage(t *testing.T) {
	p, err := NewPage([]int{1, 2, 3}, 45, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.Pages)
}

func TestNewPageExactFit(t *testing.T) {
	p, err := NewPage(nil, 40, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Pages)
}

func TestNewPageEmpty(t *testing.T) {
	p, err := NewPage(nil, 0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Pages)
}

func TestNewPageRejectsBadLimit(t *testing.T) {
	_, err := NewPage(nil, 10, 1, 0)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = NewPage(nil, 10, 1, -5)
	require.Error(t, err)
}
