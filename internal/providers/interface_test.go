package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioMIMEType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"meeting.mp3", "audio/mp3"},
		{"meeting.webm", "audio/webm"},
		{"meeting.wav", "audio/wav"},
		{"meeting.m4a", "audio/mp4"},
		{"MEETING.WEBM", "audio/webm"},
		{"/tmp/chunk_01.WAV", "audio/wav"},
		{"meeting.ogg", "audio/mp3"},
		{"noextension", "audio/mp3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AudioMIMEType(tt.path), tt.path)
	}
}
