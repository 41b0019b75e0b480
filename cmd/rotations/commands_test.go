package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	current := &domain.CurrentRotation{
		Regular: []domain.PresentationChampion{
			{Name: "Ahri", Title: "the Nine-Tailed Fox", ImageURL: "https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Ahri.png", ChampionKey: "Ahri"},
		},
		Newbie: []domain.PresentationChampion{},
		Info:   domain.RotationInfo{Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), Version: "14.1.1"},
	}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, outputYAML, current))

		out := buf.String()
		assert.Contains(t, out, "name: Ahri")
		assert.Contains(t, out, "image_url: https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/Ahri.png")
		assert.Contains(t, out, "version: 14.1.1")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, outputJSON, current))

		out := buf.String()
		assert.Contains(t, out, `"championKey": "Ahri"`)
		assert.Contains(t, out, `"version": "14.1.1"`)
	})
}

func TestRootCmd_RejectsUnknownOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"history", "--output", "xml"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
