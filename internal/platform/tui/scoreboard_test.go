package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosasor/brick-breaker/internal/storage"
)

type fakeReader struct {
	scores    map[string][]storage.ScoreEntry
	stats     []storage.BoardStats
	requested []string
	err       error
}

func (r *fakeReader) TopScores(board string, _ int) ([]storage.ScoreEntry, error) {
	r.requested = append(r.requested, board)
	if r.err != nil {
		return nil, r.err
	}
	return r.scores[board], nil
}

func (r *fakeReader) Boards() ([]storage.BoardStats, error) {
	return r.stats, r.err
}

func newFakeReader() *fakeReader {
	played := time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)
	return &fakeReader{
		scores: map[string][]storage.ScoreEntry{
			"campaign": {
				{Board: "campaign", Score: 900, Outcome: storage.OutcomeWon, CreatedAt: played},
				{Board: "campaign", Score: 300, Outcome: storage.OutcomeLost, CreatedAt: played},
			},
			"pyramid": {
				{Board: "pyramid", Score: 120, Outcome: storage.OutcomeLost, CreatedAt: played},
			},
		},
		stats: []storage.BoardStats{
			{Board: "campaign", Games: 2, Wins: 1, HighScore: 900, AvgScore: 600, LastPlayed: played},
		},
	}
}

func TestScoreBoards(t *testing.T) {
	boards := ScoreBoards()
	want := []string{"campaign", "classic", "pyramid", "diamond", "fortress"}
	if len(boards) != len(want) {
		t.Fatalf("got %d boards, expected %d", len(boards), len(want))
	}
	for i, id := range want {
		if boards[i].ID != id {
			t.Errorf("board %d = %q, expected %q", i, boards[i].ID, id)
		}
	}
}

func TestScoreboardLoadsFirstBoard(t *testing.T) {
	reader := newFakeReader()
	m := NewScoreboardModel(reader, 100, 30)

	if m.Selected().ID != CampaignBoard {
		t.Errorf("first board = %q, expected campaign", m.Selected().ID)
	}
	if len(m.table.Rows()) != 2 {
		t.Errorf("expected 2 rows, got %d", len(m.table.Rows()))
	}
	if row := m.table.Rows()[0]; row[1] != "900" || row[2] != "won" {
		t.Errorf("first row = %v", row)
	}
	if line := m.statsLine(); !strings.Contains(line, "Wins: 1") || !strings.Contains(line, "Best: 900") {
		t.Errorf("statsLine() = %q", line)
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	reader := newFakeReader()
	m := NewScoreboardModel(reader, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	if m.Selected().ID != "pyramid" {
		t.Fatalf("selected %q, expected pyramid", m.Selected().ID)
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("expected 1 row, got %d", len(m.table.Rows()))
	}
	if m.statsLine() != "No games played" {
		t.Errorf("statsLine() = %q", m.statsLine())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Selected().ID != "fortress" {
		t.Errorf("prev should wrap around, got %q", m.Selected().ID)
	}

	want := []string{"campaign", "classic", "pyramid", "classic", "campaign", "fortress"}
	if strings.Join(reader.requested, ",") != strings.Join(want, ",") {
		t.Errorf("requested boards %v, expected %v", reader.requested, want)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.table.Rows()) != 0 {
		t.Error("no store should mean no rows")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should show a hint")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	reader := newFakeReader()
	reader.err = errors.New("locked")
	m := NewScoreboardModel(reader, 100, 30)

	if !strings.Contains(m.statsLine(), "locked") {
		t.Errorf("statsLine() = %q, expected the load error", m.statsLine())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
