package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyCorpus", ErrEmptyCorpus},
		{"ErrTranslationUnavailable", ErrTranslationUnavailable},
		{"ErrUnknownLanguage", ErrUnknownLanguage},
		{"ErrInvalidParameter", ErrInvalidParameter},
		{"ErrIndexNotBuilt", ErrIndexNotBuilt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrEmptyCorpus tests ErrEmptyCorpus error
func TestErrEmptyCorpus(t *testing.T) {
	assert.Equal(t, "empty corpus", ErrEmptyCorpus.Error())
	assert.True(t, errors.Is(ErrEmptyCorpus, ErrEmptyCorpus))
	assert.False(t, errors.Is(ErrEmptyCorpus, ErrInvalidParameter))
}

// TestErrTranslationUnavailable_Wrapped tests sentinel matching through wrapping
func TestErrTranslationUnavailable_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("provider timeout: %w", ErrTranslationUnavailable)
	assert.True(t, errors.Is(wrapped, ErrTranslationUnavailable))
	assert.False(t, errors.Is(wrapped, ErrUnknownLanguage))
}

// TestErrInvalidParameter tests ErrInvalidParameter error
func TestErrInvalidParameter(t *testing.T) {
	assert.Equal(t, "invalid parameter", ErrInvalidParameter.Error())
	assert.True(t, errors.Is(ErrInvalidParameter, ErrInvalidParameter))
	assert.False(t, errors.Is(ErrInvalidParameter, ErrNotFound))
}
