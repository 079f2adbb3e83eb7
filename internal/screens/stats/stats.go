package stats

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/store"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// StatsScreen shows lifetime accuracy per level and mode plus the most
// recent answers.
type StatsScreen struct {
	deps      *shared.Deps
	summaries []store.LevelModeSummary
	recent    []store.AnswerRecord
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen. History is read once on entry.
func New(deps *shared.Deps) *StatsScreen {
	s := &StatsScreen{deps: deps}
	s.reload()
	return s
}

func (s *StatsScreen) reload() {
	if s.deps.Answers == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var err error
	if s.summaries, err = s.deps.Answers.Summaries(ctx); err != nil {
		s.deps.Log.Warnw("load answer summaries", "error", err)
	}
	if s.recent, err = s.deps.Answers.Recent(ctx, 5); err != nil {
		s.deps.Log.Warnw("load recent answers", "error", err)
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	lines := []string{theme.Title.Render("Statistics"), ""}

	if len(s.summaries) == 0 {
		lines = append(lines,
			theme.Subtitle.Render("No answers recorded yet — play a session first."))
	} else {
		for _, sum := range s.summaries {
			pct := 0
			if sum.Total > 0 {
				pct = 100 * sum.Correct / sum.Total
			}
			row := fmt.Sprintf("%-12s %-8s %4d/%-4d %3d%%",
				vocab.Level(sum.Level).DisplayName(),
				answer.Mode(sum.Mode).DisplayName(),
				sum.Correct, sum.Total, pct)
			lines = append(lines, theme.Body.Render(row))
		}
	}

	if len(s.recent) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Recent answers"))
		for _, rec := range s.recent {
			mark := theme.Correct.Render("✓")
			if !rec.Correct {
				mark = theme.Incorrect.Render("✗")
			}
			lines = append(lines, fmt.Sprintf("%s %s", mark,
				theme.Body.Render(rec.Given)))
		}
	}

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return layout.Centered(block, width, height)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
