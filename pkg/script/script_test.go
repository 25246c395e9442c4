package script

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opencapture/opencapture/pkg/controls"
)

func testLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func testCatalog() controls.Catalog {
	return controls.StaticCatalog{
		controls.NewID(1, "brightness", controls.TypeByte),
		controls.NewID(2, "awb", controls.TypeBool),
		controls.NewID(3, "exposure", controls.TypeInt32),
		controls.NewID(4, "gain", controls.TypeFloat),
		controls.NewID(5, "mode", controls.TypeString),
		controls.NewID(6, "crop", controls.TypeRectangle),
	}
}

func mustParse(t *testing.T, source string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(source), testCatalog(), testLogger())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !s.Valid() {
		t.Fatal("parsed script is not valid")
	}
	return s
}

func TestParseFrameTable(t *testing.T) {
	s := mustParse(t, `
frames:
  - 0:
      brightness: 128
  - 5:
      awb: true
`)

	if got := len(s.Frames()); got != 2 {
		t.Fatalf("frame count = %d, want 2", got)
	}

	brightness := testCatalog().Controls()[0]
	v, ok := s.ControlsForFrame(0).Get(brightness)
	if !ok {
		t.Fatal("frame 0 is missing brightness")
	}
	if v != controls.NewByte(128) {
		t.Errorf("brightness = %v, want byte 128", v)
	}

	awb := testCatalog().Controls()[1]
	v, ok = s.ControlsForFrame(5).Get(awb)
	if !ok {
		t.Fatal("frame 5 is missing awb")
	}
	if v != controls.NewBool(true) {
		t.Errorf("awb = %v, want bool true", v)
	}

	// Unscripted frames yield a fresh empty set, never an error.
	if got := s.ControlsForFrame(3).Len(); got != 0 {
		t.Errorf("frame 3 control count = %d, want 0", got)
	}
}

func TestParseMultipleControlsPerFrame(t *testing.T) {
	s := mustParse(t, `
frames:
  - 10:
      exposure: 33000
      gain: 2.5
      mode: "night"
`)

	list := s.ControlsForFrame(10)
	if list.Len() != 3 {
		t.Fatalf("control count = %d, want 3", list.Len())
	}

	cat := testCatalog().Controls()
	if v, _ := list.Get(cat[2]); v != controls.NewInt32(33000) {
		t.Errorf("exposure = %v, want int32 33000", v)
	}
	if v, _ := list.Get(cat[3]); v != controls.NewFloat(2.5) {
		t.Errorf("gain = %v, want float 2.5", v)
	}
	if v, _ := list.Get(cat[4]); v != controls.NewString("night") {
		t.Errorf("mode = %v, want string night", v)
	}
}

func TestParseDuplicateFrameLastWins(t *testing.T) {
	s := mustParse(t, `
frames:
  - 7:
      brightness: 10
  - 7:
      brightness: 20
`)

	brightness := testCatalog().Controls()[0]
	v, _ := s.ControlsForFrame(7).Get(brightness)
	if v != controls.NewByte(20) {
		t.Errorf("brightness = %v, want the later byte 20", v)
	}
}

func TestParseNonNumericFrameIndex(t *testing.T) {
	s := mustParse(t, `
frames:
  - first:
      brightness: 1
`)

	// Frame index text that does not parse lands on frame 0.
	if got := s.ControlsForFrame(0).Len(); got != 1 {
		t.Errorf("frame 0 control count = %d, want 1", got)
	}
}

func TestParseUnsupportedBoolKeepsEmptyValue(t *testing.T) {
	s := mustParse(t, `
frames:
  - 0:
      awb: maybe
`)

	awb := testCatalog().Controls()[1]
	v, ok := s.ControlsForFrame(0).Get(awb)
	if !ok {
		t.Fatal("awb is missing; decode failures must not drop the control")
	}
	if !v.IsNone() {
		t.Errorf("awb = %v, want the empty value", v)
	}
}

func TestParseRectangleDecodesEmpty(t *testing.T) {
	s := mustParse(t, `
frames:
  - 0:
      crop: "0,0,640,480"
`)

	crop := testCatalog().Controls()[5]
	v, ok := s.ControlsForFrame(0).Get(crop)
	if !ok {
		t.Fatal("crop is missing")
	}
	if !v.IsNone() {
		t.Errorf("crop = %v, want the empty value", v)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "unsupported section",
			source:  "shots:\n  - 0:\n      brightness: 1\n",
			wantMsg: `unsupported section "shots"`,
		},
		{
			name: "unsupported control aborts whole script",
			source: `
frames:
  - 0:
      brightness: 1
  - 1:
      zoom: 2
`,
			wantMsg: `unsupported control "zoom"`,
		},
		{
			name:    "top-level sequence",
			source:  "- frames\n",
			wantMsg: "expected mapping-start event, got sequence-start",
		},
		{
			name:    "frames value is a mapping",
			source:  "frames:\n  0:\n    brightness: 1\n",
			wantMsg: "expected sequence-start event, got mapping-start",
		},
		{
			name:    "frame entry is a scalar",
			source:  "frames:\n  - 0\n",
			wantMsg: "expected mapping-start event, got scalar",
		},
		{
			name:    "control value is a sequence",
			source:  "frames:\n  - 0:\n      brightness: [1, 2]\n",
			wantMsg: "expected scalar event, got sequence-start",
		},
		{
			name:    "malformed yaml",
			source:  "frames: [\n",
			wantMsg: "parsing script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.source), testCatalog(), testLogger())
			if err == nil {
				t.Fatal("expected parse failure")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
			if s != nil {
				t.Error("failed parse must not return a script")
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(strings.NewReader("shots:\n  - 0\n"), testCatalog(), testLogger())
	if err == nil {
		t.Fatal("expected parse failure")
	}

	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Line != 1 || perr.Column != 1 {
		t.Errorf("position = %d:%d, want 1:1", perr.Line, perr.Column)
	}
}

func TestInvalidScriptIsNotQueryable(t *testing.T) {
	var s *Script
	if s.Valid() {
		t.Error("nil script must not be valid")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml", testCatalog(), testLogger())
	if err == nil {
		t.Fatal("expected error for missing script file")
	}
}

func TestParseEmptySectionList(t *testing.T) {
	s := mustParse(t, "frames: []\n")
	if got := len(s.Frames()); got != 0 {
		t.Errorf("frame count = %d, want 0", got)
	}
}
