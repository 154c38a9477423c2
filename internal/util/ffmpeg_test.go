package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeOutput(t *testing.T) {
	output := `{
		"streams": [
			{"codec_type": "audio"},
			{"codec_type": "video", "width": 1280, "height": 720}
		],
		"format": {"duration": "93.250000", "size": "1048576", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"}
	}`

	info, err := parseProbeOutput(output, 10)
	require.NoError(t, err)
	assert.Equal(t, &VideoInfo{Duration: 93.25, Width: 1280, Height: 720, Format: "mov", Size: 1048576}, info)
}

func TestParseProbeOutput_Fallbacks(t *testing.T) {
	info, err := parseProbeOutput(`{"streams": [], "format": {}}`, 2048)
	require.NoError(t, err)
	assert.Equal(t, "unknown", info.Format)
	assert.EqualValues(t, 2048, info.Size)
	assert.Zero(t, info.Duration)
}

func TestParseProbeOutput_InvalidJSON(t *testing.T) {
	_, err := parseProbeOutput("ffprobe: error", 0)
	assert.Error(t, err)
}
