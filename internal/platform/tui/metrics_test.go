package tui

import (
	"testing"

	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

func TestMetricsCollect(t *testing.T) {
	m := NewMetrics()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	m.GameStarted()
	m.GameOver(snake.ReasonWall, 7)
	m.GameOver(snake.ReasonSelf, 3)
	m.GameOver(snake.ReasonWall, 0)

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}

	got := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range metric.GetLabel() {
				name += "/" + lp.GetValue()
			}
			switch {
			case metric.GetCounter() != nil:
				got[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				got[name] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				got[name] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	want := map[string]float64{
		"vjsnake_ssh_sessions_total":   2,
		"vjsnake_ssh_sessions_active":  1,
		"vjsnake_game_started_total":   1,
		"vjsnake_game_over_total/wall": 2,
		"vjsnake_game_over_total/self": 1,
		"vjsnake_game_final_score":     3,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, expected %v", name, got[name], v)
		}
	}
}
