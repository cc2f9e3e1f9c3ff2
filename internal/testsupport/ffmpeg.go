package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// FakeMP4Payload is what the fake encoder writes as conversion output.
const FakeMP4Payload = "fake-mp4-payload"

// Environment knobs understood by the fake encoder script.
const (
	FakeFFmpegFixtureEnv = "AUDIO2MP4_FAKE_PNG"
	FakeFFmpegFailEnv    = "AUDIO2MP4_FAKE_FAIL"
	FakeFFmpegNoOutEnv   = "AUDIO2MP4_FAKE_NO_OUTPUT"
	FakeFFmpegLogEnv     = "AUDIO2MP4_FAKE_LOG"
)

// The last *.png or *.mp4 argument is the destination: inputs precede the
// output in every argument vector the encoder package builds.
const fakeFFmpegScript = `#!/bin/sh
out=""
for arg in "$@"; do
  case "$arg" in
    *.png|*.mp4) out="$arg" ;;
  esac
done
if [ -n "$AUDIO2MP4_FAKE_LOG" ]; then
  echo "$out" >> "$AUDIO2MP4_FAKE_LOG"
fi
if [ -n "$AUDIO2MP4_FAKE_FAIL" ]; then
  echo "Invalid data found when processing input" >&2
  exit 1
fi
case "$out" in
  *.png) cp "$AUDIO2MP4_FAKE_PNG" "$out" ;;
  *.mp4)
    if [ -z "$AUDIO2MP4_FAKE_NO_OUTPUT" ]; then
      printf '%s' "fake-mp4-payload" > "$out"
    fi
    ;;
esac
exit 0
`

// WriteFakeFFmpeg writes an "ffmpeg" shell script into dir that copies a real
// 2x2 PNG fixture for placeholder requests and writes FakeMP4Payload for
// conversions. It sets the fixture environment variable for the test.
func WriteFakeFFmpeg(t testing.TB, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	fixture := filepath.Join(dir, "fixture.png")
	if err := os.WriteFile(fixture, BlackPNG(t, 2), 0o644); err != nil {
		t.Fatalf("write png fixture: %v", err)
	}
	setenv(t, FakeFFmpegFixtureEnv, fixture)

	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte(fakeFFmpegScript), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}
	return path
}
