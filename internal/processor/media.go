package processor

import (
	"path/filepath"
	"strings"
)

var (
	audioExts = []string{".mp3", ".wav", ".m4a", ".webm", ".ogg", ".flac", ".aac"}
	videoExts = []string{".mp4", ".mov", ".mkv", ".avi", ".m4v"}
)

// SupportedFormats lists every extension Process accepts.
func SupportedFormats() []string {
	return append(append([]string{}, audioExts...), videoExts...)
}

// IsSupported reports whether path has an audio or video extension.
func IsSupported(path string) bool {
	return IsAudio(path) || IsVideo(path)
}

// IsAudio reports whether path can be uploaded without conversion.
func IsAudio(path string) bool {
	return hasExt(path, audioExts)
}

// IsVideo reports whether path needs its audio track extracted first.
func IsVideo(path string) bool {
	return hasExt(path, videoExts)
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
