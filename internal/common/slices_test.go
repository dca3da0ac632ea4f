package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []string{"a", "b"}

	v, ok := At(s, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = At(s, 2)
	assert.False(t, ok)

	_, ok = At(s, -1)
	assert.False(t, ok)

	assert.Equal(t, "", AtOrZero(s, 5))
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
	}{
		{
			name: "empty",
			rows: nil,
			want: [][]string{},
		},
		{
			name: "rectangular",
			rows: [][]string{{"id", "s0", "s1"}, {"1", "60", "70"}},
			want: [][]string{{"id", "1"}, {"s0", "60"}, {"s1", "70"}},
		},
		{
			name: "ragged rows are padded",
			rows: [][]string{{"id", "s0"}, {"1"}, {"2", "x", "y"}},
			want: [][]string{{"id", "1", "2"}, {"s0", "", "x"}, {"", "", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transpose(tt.rows))
		})
	}
}
