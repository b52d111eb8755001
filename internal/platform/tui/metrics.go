package tui

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

// GameObserver receives per-game outcomes from a session.
type GameObserver interface {
	GameStarted()
	GameOver(reason snake.GameOverReason, score int)
}

// Metrics holds the Prometheus collectors shared by all SSH sessions.
// Collectors are safe for concurrent use.
type Metrics struct {
	registry       *prometheus.Registry
	sessionsTotal  prometheus.Counter
	sessionsActive prometheus.Gauge
	gamesStarted   prometheus.Counter
	gamesOver      *prometheus.CounterVec
	finalScore     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vjsnake",
			Subsystem: "ssh",
			Name:      "sessions_total",
			Help:      "SSH sessions accepted.",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vjsnake",
			Subsystem: "ssh",
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vjsnake",
			Subsystem: "game",
			Name:      "started_total",
			Help:      "Games started or restarted.",
		}),
		gamesOver: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vjsnake",
				Subsystem: "game",
				Name:      "over_total",
				Help:      "Finished games by reason.",
			},
			[]string{"reason"},
		),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vjsnake",
			Subsystem: "game",
			Name:      "final_score",
			Help:      "Score at the end of each game.",
			Buckets:   prometheus.LinearBuckets(0, 5, 12),
		}),
	}
	m.registry.MustRegister(m.sessionsTotal, m.sessionsActive, m.gamesStarted, m.gamesOver, m.finalScore)
	return m
}

// Registry returns the registry holding the game collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SessionStarted records a new SSH session.
func (m *Metrics) SessionStarted() {
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionEnded records a closed SSH session.
func (m *Metrics) SessionEnded() {
	m.sessionsActive.Dec()
}

func (m *Metrics) GameStarted() {
	m.gamesStarted.Inc()
}

func (m *Metrics) GameOver(reason snake.GameOverReason, score int) {
	m.gamesOver.WithLabelValues(reason.String()).Inc()
	m.finalScore.Observe(float64(score))
}
