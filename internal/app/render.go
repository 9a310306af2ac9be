package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/ui/output"
	"go.trai.ch/digest/internal/ui/style"
)

const digestWidth = 12

func (a *App) renderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(a.out, termenv.WithProfile(output.ColorProfile()))
}

func (a *App) newTable(r *lipgloss.Renderer, headers ...string) *table.Table {
	header := r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func (a *App) printOutcomes(outcomes []domain.Outcome) {
	if len(outcomes) == 0 {
		return
	}
	r := a.renderer()
	t := a.newTable(r, "", "Project", "Status", "Stage", "Detail")

	counts := make(map[string]int)
	for _, o := range outcomes {
		icon := r.NewStyle().Foreground(style.StatusColor(o)).Render(style.StatusIcon(o))
		status := string(o.Status)
		if o.Skipped {
			status = "Skipped"
		}
		counts[status]++
		detail := o.DocumentURL
		if detail == "" {
			detail = o.Message
		}
		t.Row(icon, projectLabel(o), status, o.Stage, detail)
	}

	_, _ = fmt.Fprintln(a.out, t.String())
	_, _ = fmt.Fprintf(a.out, "%d projects: %d succeeded, %d partial, %d failed, %d skipped\n",
		len(outcomes),
		counts[string(domain.StatusSuccess)],
		counts[string(domain.StatusPartialSuccess)],
		counts[string(domain.StatusFailure)],
		counts["Skipped"],
	)
}

func (a *App) printCacheStatus(entries []domain.CacheStatus, last time.Time, refreshed bool) {
	r := a.renderer()
	t := a.newTable(r, "File", "Domain", "Age", "Size", "Digest")
	for _, e := range entries {
		digest := e.Digest
		if len(digest) > digestWidth {
			digest = digest[:digestWidth]
		}
		t.Row(e.FileName, string(e.Domain), e.Age.Round(time.Second).String(), strconv.FormatInt(e.Size, 10), digest)
	}
	_, _ = fmt.Fprintln(a.out, t.String())

	if refreshed {
		_, _ = fmt.Fprintf(a.out, "Last full refresh: %s (%s ago)\n",
			last.Format(time.RFC3339), a.now().Sub(last).Round(time.Second))
		return
	}
	_, _ = fmt.Fprintln(a.out, "Last full refresh: never")
}

func (a *App) printHistory(entries []domain.ExecutionLogEntry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(a.out, "No executions recorded yet.")
		return
	}
	r := a.renderer()
	t := a.newTable(r, "Time", "Project", "Status", "Message")
	for _, e := range entries {
		name := e.ProjectName
		if name == "" {
			name = e.ProjectID
		}
		message := e.Message
		if e.DocumentURL != "" {
			message = e.DocumentURL
		}
		t.Row(e.Timestamp.Local().Format("2006-01-02 15:04"), name, string(e.Status), message)
	}
	_, _ = fmt.Fprintln(a.out, t.String())
}

func projectLabel(o domain.Outcome) string {
	if o.ProjectName == "" {
		return o.ProjectID
	}
	return o.ProjectName + " (" + o.ProjectID + ")"
}
