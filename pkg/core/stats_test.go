package core_test

import (
	"testing"

	"github.com/inkpad/inkpad/pkg/core"
)

func TestComputeStats(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    core.Stats
	}{
		{
			name:    "simple sentence",
			content: "<p>Hello world.</p>",
			want:    core.Stats{Words: 2, Characters: 12, Sentences: 1},
		},
		{
			name:    "empty",
			content: "",
			want:    core.Stats{},
		},
		{
			name:    "markup only",
			content: "<p></p><p><br></p>",
			want:    core.Stats{},
		},
		{
			name:    "multiple sentences",
			content: "<p>One. Two! Three?</p>",
			want:    core.Stats{Words: 3, Characters: 16, Sentences: 3},
		},
		{
			name:    "punctuation runs count once",
			content: "<p>Really?! Yes...</p>",
			want:    core.Stats{Words: 2, Characters: 15, Sentences: 2},
		},
		{
			name:    "no terminal punctuation",
			content: "<p>just some words</p>",
			want:    core.Stats{Words: 3, Characters: 15, Sentences: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.ComputeStats(tc.content); got != tc.want {
				t.Errorf("ComputeStats(%q) = %+v, want %+v", tc.content, got, tc.want)
			}
		})
	}
}
