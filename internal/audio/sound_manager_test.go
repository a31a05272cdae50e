package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
)

// newTestManager returns a manager whose speaker init is faked.
func newTestManager(initErr error) (*SoundManager, *int, *time.Time) {
	calls := 0
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm := NewSoundManager()
	sm.initSpeaker = func() error {
		calls++
		return initErr
	}
	sm.now = func() time.Time { return clock }
	return sm, &calls, &clock
}

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm, _, _ := newTestManager(errors.New("no audio device"))

	if err := sm.Initialize(); err == nil {
		t.Fatal("expected init error")
	}
	if sm.Ready() {
		t.Error("failed init should leave the manager silent")
	}

	// Must not panic or touch the speaker
	sm.Play(dash.SoundCoin)
	sm.Play(dash.SoundDeath)
	sm.Cleanup()
}

func TestSoundManagerRetryThrottled(t *testing.T) {
	sm, calls, clock := newTestManager(errors.New("no audio device"))

	sm.Initialize()
	if *calls != 1 {
		t.Fatalf("init calls = %d, expected 1", *calls)
	}

	// Too soon: skipped
	sm.Retry()
	if *calls != 1 {
		t.Errorf("retry within the interval should be skipped, calls = %d", *calls)
	}

	*clock = clock.Add(retryInterval)
	if err := sm.Retry(); err == nil {
		t.Error("expected the retry to report the init error")
	}
	if *calls != 2 {
		t.Errorf("init calls = %d, expected 2", *calls)
	}
}

func TestSoundManagerRetryAfterSuccessIsNoop(t *testing.T) {
	sm, calls, clock := newTestManager(nil)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if !sm.Ready() {
		t.Fatal("expected ready")
	}

	*clock = clock.Add(time.Hour)
	sm.Retry()
	sm.Initialize()
	if *calls != 1 {
		t.Errorf("init calls = %d, expected 1", *calls)
	}
}

func TestCueStreamsAreFiniteAndBounded(t *testing.T) {
	for _, s := range []dash.Sound{dash.SoundCoin, dash.SoundDeath} {
		t.Run(s.String(), func(t *testing.T) {
			st := cue(s)
			if st == nil {
				t.Fatal("no streamer for cue")
			}

			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := st.Stream(buf)
				for i := 0; i < n; i++ {
					v := buf[i][0]
					if math.IsNaN(v) || math.Abs(v) > 1 {
						t.Fatalf("sample %d out of range: %v", total+i, v)
					}
				}
				total += n
				if !ok || n == 0 {
					break
				}
				if total > int(sampleRate) {
					t.Fatal("cue should end within a second")
				}
			}
			if total == 0 {
				t.Error("cue produced no samples")
			}
		})
	}

	if cue(dash.Sound(99)) != nil {
		t.Error("unknown sound should have no cue")
	}
}

func TestGeneratorsErr(t *testing.T) {
	gens := []beep.Streamer{NewChirpGenerator(sampleRate), NewBoingGenerator(sampleRate)}
	for _, g := range gens {
		if g.Err() != nil {
			t.Error("generators never fail")
		}
	}
}
