package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/export"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcript"
)

type fakeExecutor struct {
	calls [][]string
	err   error
}

// Execute writes a stub WAV to the last argument, like ffmpeg would.
func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return "", f.err
	}
	return "", os.WriteFile(args[len(args)-1], []byte("WAVDATA"), 0644)
}

type fakeTranscriber struct {
	result *transcript.Result
	err    error
	audio  []byte
	hint   string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audio []byte, extHint string) (*transcript.Result, error) {
	f.audio, f.hint = audio, extHint
	return f.result, f.err
}

func (f *fakeTranscriber) FetchSummary(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

type harness struct {
	cfg   *config.Config
	exec  *fakeExecutor
	tr    *fakeTranscriber
	store store.Store
	proc  Processor
}

func newHarness(t *testing.T, result *transcript.Result) *harness {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{AssemblyAI: config.AssemblyAIConfig{APIKey: "k"}}
	cfg.Paths = config.PathsConfig{
		Input:      filepath.Join(root, "input"),
		Processing: filepath.Join(root, "processing"),
		Output:     filepath.Join(root, "output"),
		Archived:   filepath.Join(root, "archived"),
		Temp:       filepath.Join(root, "temp"),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	st, err := store.Open(":memory:", logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	h := &harness{
		cfg:   cfg,
		exec:  &fakeExecutor{},
		tr:    &fakeTranscriber{result: result},
		store: st,
	}
	h.proc = New(cfg, Deps{
		Executor:    h.exec,
		Transcriber: h.tr,
		Store:       st,
		Summarizer:  summarizer.New(logger.Nop(), nil),
		Exporter:    export.New(logger.Nop()),
	}, logger.Nop())
	return h
}

func (h *harness) drop(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.cfg.Paths.Input, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

const meetingText = "We reviewed the launch plan. Marketing is ready. " +
	"Engineering needs one more week. The final decision is to ship next Friday."

func TestProcessAudio(t *testing.T) {
	h := newHarness(t, &transcript.Result{
		ExternalID: "tx-1",
		Text:       meetingText,
		Segments:   []transcript.SpeakerSegment{{Speaker: "A", Text: meetingText}},
	})
	path := h.drop(t, "meeting.mp3", "ID3audio")

	if err := h.proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(h.exec.calls) != 0 {
		t.Errorf("ffmpeg should not run for audio input: %v", h.exec.calls)
	}
	if string(h.tr.audio) != "ID3audio" || h.tr.hint != ".mp3" {
		t.Errorf("transcriber got %q with hint %q", h.tr.audio, h.tr.hint)
	}

	list, err := h.store.List(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("List() = %v, %v", list, err)
	}
	rec := list[0]
	if rec.Content != meetingText || rec.AudioFileName != "meeting.mp3" || rec.ExternalID != "tx-1" {
		t.Errorf("stored record = %+v", rec)
	}
	if rec.Summary != summarizer.Extractive(meetingText) {
		t.Errorf("stored summary = %q", rec.Summary)
	}

	for _, p := range []string{
		filepath.Join(h.cfg.Paths.Output, "meeting.md"),
		filepath.Join(h.cfg.Paths.Output, "meeting.docx"),
		filepath.Join(h.cfg.Paths.Archived, "meeting.mp3"),
	} {
		if !exists(p) {
			t.Errorf("expected %s to exist", p)
		}
	}
	if exists(path) || exists(filepath.Join(h.cfg.Paths.Processing, "meeting.mp3")) {
		t.Error("original should only remain in the archive")
	}
}

func TestProcessVideoExtractsAudio(t *testing.T) {
	h := newHarness(t, &transcript.Result{ExternalID: "tx-2", Text: "Short clip.", Summary: "A clip."})
	path := h.drop(t, "clip.MOV", "videobytes")

	if err := h.proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(h.exec.calls) != 1 {
		t.Fatalf("ffmpeg calls = %d, want 1", len(h.exec.calls))
	}
	call := strings.Join(h.exec.calls[0], " ")
	if !strings.HasPrefix(call, "ffmpeg -i "+filepath.Join(h.cfg.Paths.Processing, "clip.MOV")) {
		t.Errorf("ffmpeg call = %q", call)
	}
	if !strings.Contains(call, "-ar 16000") || !strings.Contains(call, "-c:a pcm_s16le") {
		t.Errorf("ffmpeg call missing audio settings: %q", call)
	}
	if string(h.tr.audio) != "WAVDATA" || h.tr.hint != ".wav" {
		t.Errorf("transcriber got %q with hint %q", h.tr.audio, h.tr.hint)
	}
	if entries, _ := os.ReadDir(h.cfg.Paths.Temp); len(entries) != 0 {
		t.Errorf("extracted audio should be cleaned up, found %d files", len(entries))
	}

	list, _ := h.store.List(context.Background())
	if len(list) != 1 || list[0].Summary != "A clip." {
		t.Errorf("stored records = %+v, want summary from the job", list)
	}
}

func TestExtractAudioUniquePerJob(t *testing.T) {
	h := newHarness(t, nil)
	p := h.proc.(*implProcessor)
	ctx := context.Background()

	first, err := p.extractAudio(ctx, filepath.Join(t.TempDir(), "meeting.mp4"))
	if err != nil {
		t.Fatalf("extractAudio(mp4) error = %v", err)
	}
	second, err := p.extractAudio(ctx, filepath.Join(t.TempDir(), "meeting.mov"))
	if err != nil {
		t.Fatalf("extractAudio(mov) error = %v", err)
	}

	if first == second {
		t.Fatalf("both inputs extracted to %s", first)
	}
	for _, path := range []string{first, second} {
		if filepath.Dir(path) != h.cfg.Paths.Temp || !strings.HasPrefix(filepath.Base(path), "meeting-") {
			t.Errorf("audio path = %s, want meeting-*_audio.wav under %s", path, h.cfg.Paths.Temp)
		}
	}
}

func TestExtractAudioFailureRemovesTempFile(t *testing.T) {
	h := newHarness(t, nil)
	h.exec.err = errors.New("command 'ffmpeg' failed")
	p := h.proc.(*implProcessor)

	if _, err := p.extractAudio(context.Background(), "/x/talk.mp4"); err == nil {
		t.Fatal("extractAudio() error = nil, want failure")
	}
	if entries, _ := os.ReadDir(h.cfg.Paths.Temp); len(entries) != 0 {
		t.Errorf("temp folder should be empty, found %d files", len(entries))
	}
}

func TestProcessTranscriptionFailureKeepsFile(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.err = errors.New("Transcription failed: bad audio")
	path := h.drop(t, "broken.wav", "x")

	err := h.proc.Process(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "bad audio") {
		t.Fatalf("Process() error = %v", err)
	}

	if !exists(filepath.Join(h.cfg.Paths.Processing, "broken.wav")) {
		t.Error("failed file should stay in processing")
	}
	if list, _ := h.store.List(context.Background()); len(list) != 0 {
		t.Errorf("no record should be stored, got %d", len(list))
	}
}

func TestProcessFFmpegFailure(t *testing.T) {
	h := newHarness(t, &transcript.Result{Text: "unused"})
	h.exec.err = errors.New("command 'ffmpeg' failed")
	path := h.drop(t, "talk.mp4", "x")

	err := h.proc.Process(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "extract audio") {
		t.Fatalf("Process() error = %v", err)
	}
	if h.tr.audio != nil {
		t.Error("transcriber should not be called")
	}
}

func TestProcessRejectsUnsupported(t *testing.T) {
	h := newHarness(t, nil)
	path := h.drop(t, "notes.txt", "x")

	if err := h.proc.Process(context.Background(), path); err == nil {
		t.Fatal("Process() should reject unsupported files")
	}
	if !exists(path) {
		t.Error("unsupported file should be left in place")
	}
}

func TestMediaClassification(t *testing.T) {
	tests := []struct {
		path         string
		audio, video bool
	}{
		{"a.mp3", true, false},
		{"a.WEBM", true, false},
		{"dir/a.flac", true, false},
		{"a.mp4", false, true},
		{"a.m4v", false, true},
		{"a.txt", false, false},
		{"noext", false, false},
	}
	for _, tt := range tests {
		if IsAudio(tt.path) != tt.audio || IsVideo(tt.path) != tt.video {
			t.Errorf("%s: audio=%v video=%v, want %v %v", tt.path, IsAudio(tt.path), IsVideo(tt.path), tt.audio, tt.video)
		}
		if IsSupported(tt.path) != (tt.audio || tt.video) {
			t.Errorf("IsSupported(%s) mismatch", tt.path)
		}
	}
	if len(SupportedFormats()) != 12 {
		t.Errorf("SupportedFormats() = %v", SupportedFormats())
	}
}
