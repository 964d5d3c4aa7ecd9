package sound

import "testing"

func TestToneLength(t *testing.T) {
	buf := Tone(440, 0.1)
	if want := int(SampleRate*0.1) * 4; len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}
}

func TestToneChannelsMatch(t *testing.T) {
	buf := Sweep(300, 900, 0.05)
	nonZero := false
	for i := 0; i+3 < len(buf); i += 4 {
		if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
			t.Fatalf("frame %d: left and right differ", i/4)
		}
		if buf[i] != 0 || buf[i+1] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatal("sweep is silent")
	}
}

func TestDisabledEngineIsSilent(t *testing.T) {
	New(false).Play(Clear)
	var e *Engine
	e.Play(Fail)
}
