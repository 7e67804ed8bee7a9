package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"habitrack/internal/domains/summary/model"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		done   int
		missed int
		want   int
	}{
		{name: "nothing tracked", want: 0},
		{name: "three of four", done: 3, missed: 1, want: 75},
		{name: "all done", done: 5, want: 100},
		{name: "all missed", missed: 5, want: 0},
		{name: "one third rounds down", done: 1, missed: 2, want: 33},
		{name: "two thirds rounds up", done: 2, missed: 1, want: 67},
		{name: "half rounds up", done: 1, missed: 199, want: 1},
		{name: "exact half of a percent", done: 1, missed: 1, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CompletionRate(tt.done, tt.missed))
		})
	}
}
