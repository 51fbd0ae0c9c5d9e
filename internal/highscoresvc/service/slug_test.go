package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Pac-Man", "pacman"},
		{"Donkey Kong", "donkey-kong"},
		{"Tetris", "tetris"},
		{"", ""},
		// single occurrence only
		{"Super Mario Bros", "super-mario bros"},
		{"Spider-Man: Web-Slinger", "spiderman:-web-slinger"},
		{"Ms. Pac-Man", "ms.-pacman"},
		{"X-COM - UFO", "xcom-- ufo"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}
