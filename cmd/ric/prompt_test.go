package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"

	"github.com/ruminaider/ric/cmd/ric/tui"
)

func TestNormalizeAbort(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"huh abort", huh.ErrUserAborted, tui.ErrUserCanceled},
		{"wrapped huh abort", fmt.Errorf("form: %w", huh.ErrUserAborted), tui.ErrUserCanceled},
		{"context canceled", context.Canceled, tui.ErrUserCanceled},
		{"other error", errors.New("boom"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeAbort(tt.err)
			if tt.want == nil {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
