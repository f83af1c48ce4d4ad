package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/games/dino"
	"github.com/vovakirdan/dinodash/internal/runner"
	"github.com/vovakirdan/dinodash/internal/storage"
)

// dropSpawner emits next once when armed.
type dropSpawner struct {
	next *runner.Obstacle
}

func (d *dropSpawner) Tick(float64, runner.World, int) (runner.Obstacle, bool) {
	if d.next == nil {
		return runner.Obstacle{}, false
	}
	o := *d.next
	d.next = nil
	return o, true
}

func (d *dropSpawner) Reset() {}

func (d *dropSpawner) arm() {
	cfg := config.DefaultRunnerConfig()
	d.next = &runner.Obstacle{X: cfg.Player.X + 10, Y: cfg.World.GroundY() - 62, W: 30, H: 62}
}

type fakeRecorder struct {
	runs []storage.Run
	err  error
}

func (f *fakeRecorder) SaveRun(r storage.Run) (int64, error) {
	f.runs = append(f.runs, r)
	return int64(len(f.runs)), f.err
}

type fakeLoader struct {
	runs  map[string][]storage.Run
	err   error
	asked []string
}

func (f *fakeLoader) TopScores(preset string, limit int) ([]storage.Run, error) {
	f.asked = append(f.asked, preset)
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[preset], nil
}

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func newTestModel(sp *dropSpawner, rec RunRecorder) Model {
	game := dino.New(config.DefaultRunnerConfig(), testRuntime, runner.WithSpawner(sp))
	return NewModel(game, ModelOptions{Runtime: testRuntime, Preset: "normal", Recorder: rec})
}

// driver feeds messages with a synthetic clock.
type driver struct {
	t   *testing.T
	m   tea.Model
	now time.Time
}

func (d *driver) send(msg tea.Msg) tea.Cmd {
	d.t.Helper()
	next, cmd := d.m.Update(msg)
	d.m = next
	return cmd
}

func (d *driver) tick(n int) {
	for i := 0; i < n; i++ {
		d.now = d.now.Add(16 * time.Millisecond)
		d.send(TickMsg(d.now))
	}
}

func (d *driver) key(msg tea.KeyMsg) tea.Cmd {
	return d.send(msg)
}

func (d *driver) model() Model {
	d.t.Helper()
	m, ok := d.m.(Model)
	if !ok {
		d.t.Fatalf("model is %T, expected Model", d.m)
	}
	return m
}

func TestModelRecordsRunOnce(t *testing.T) {
	sp := &dropSpawner{}
	rec := &fakeRecorder{}
	d := &driver{t: t, m: newTestModel(sp, rec), now: time.Unix(0, 0)}

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(60)
	if st := d.model().State(); !st.Started || st.GameOver {
		t.Fatalf("state = %+v, expected running", st)
	}

	sp.arm()
	d.tick(1)
	if !d.model().State().GameOver {
		t.Fatal("expected game over")
	}
	d.tick(10)

	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Score == 0 || run.Preset != "normal" || run.Duration <= 0 {
		t.Errorf("run = %+v, expected a scored normal run with a duration", run)
	}
	if run.Score != d.model().State().Score {
		t.Errorf("recorded score %d, expected %d", run.Score, d.model().State().Score)
	}
}

func TestModelRecorderFailureKeepsPlaying(t *testing.T) {
	sp := &dropSpawner{}
	rec := &fakeRecorder{err: errors.New("disk full")}
	d := &driver{t: t, m: newTestModel(sp, rec), now: time.Unix(0, 0)}

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(30)
	sp.arm()
	d.tick(1)

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(1)
	if st := d.model().State(); st.GameOver || !st.Started {
		t.Errorf("state = %+v, expected a fresh run after a failed record", st)
	}
}

func TestModelStepIsClamped(t *testing.T) {
	sp := &dropSpawner{}
	d := &driver{t: t, m: newTestModel(sp, nil), now: time.Unix(0, 0)}

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.send(TickMsg(d.now))
	d.now = d.now.Add(time.Hour)
	d.send(TickMsg(d.now))

	elapsed := d.model().game.Summary().Elapsed
	if elapsed > 2*0.033+1e-9 {
		t.Errorf("elapsed = %v after a stalled frame, expected at most two clamped steps", elapsed)
	}
}

func TestModelBackOnlyOutsideRun(t *testing.T) {
	d := &driver{t: t, m: newTestModel(&dropSpawner{}, nil), now: time.Unix(0, 0)}

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(1)
	d.key(tea.KeyMsg{Type: tea.KeyEsc})
	if d.model().BackRequested() {
		t.Fatal("esc while running should be ignored")
	}

	d.tick(1)
	d.key(runeKey('p'))
	d.tick(1)
	d.key(tea.KeyMsg{Type: tea.KeyEsc})
	if !d.model().BackRequested() {
		t.Error("esc while paused should leave")
	}
}

func TestModelQuit(t *testing.T) {
	d := &driver{t: t, m: newTestModel(&dropSpawner{}, nil), now: time.Unix(0, 0)}

	cmd := d.key(runeKey('q'))
	if cmd == nil || !d.model().IsQuitting() {
		t.Error("q should quit")
	}
	if d.model().View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScoresPausesRun(t *testing.T) {
	d := &driver{t: t, m: newTestModel(&dropSpawner{}, nil), now: time.Unix(0, 0)}

	d.key(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(1)
	d.key(tea.KeyMsg{Type: tea.KeyTab})
	if !d.model().ScoresRequested() {
		t.Fatal("tab should request the scoreboard")
	}
	d.tick(1)
	if !d.model().State().Paused {
		t.Error("opening the scoreboard should pause the run")
	}
}

func TestModelView(t *testing.T) {
	d := &driver{t: t, m: newTestModel(&dropSpawner{}, nil), now: time.Unix(0, 0)}

	view := d.model().View()
	if !strings.Contains(view, dino.MsgStart) {
		t.Errorf("view should show %q", dino.MsgStart)
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should end with the help line")
	}

	d.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if h := d.model().screen.Height(); h != 29 {
		t.Errorf("play area height = %d, expected 29", h)
	}
}
