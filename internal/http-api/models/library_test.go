package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        int
	}{
		{"not started", 0, 300, 0},
		{"halfway", 150, 300, 50},
		{"finished", 300, 300, 100},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"past the end clamps", 400, 300, 100},
		{"zero total treated as one page", 0, 0, 0},
		{"zero total with pages read clamps", 5, 0, 100},
		{"negative total treated as one page", 1, -10, 100},
		{"negative page clamps to zero", -5, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProgress(tt.currentPage, tt.totalPages))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusWantToRead))
	assert.True(t, ValidStatus(StatusCurrentlyReading))
	assert.True(t, ValidStatus(StatusRead))
	assert.False(t, ValidStatus("reading"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("want to read"))
}
