package cli

import (
	"fmt"
	"strings"
	"time"

	"organizer/internal/domain"
)

var sprintf = fmt.Sprintf

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var weekdayAbbrev = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

func monthName(m time.Month) string {
	return monthNames[m-1]
}

// formatDue renders a due date as "<date> <HH:MM>", the time only when set
func (a *App) formatDue(due *domain.Due) string {
	if due == nil {
		return ""
	}
	s := a.formatDate(due.Day)
	if due.Clock != nil {
		s += " " + due.Clock.String()
	}
	return s
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// taskLine renders one task of a list
func (a *App) taskLine(t domain.Task, overdue bool) string {
	st := a.styles
	text := t.Text
	if t.Completed {
		text = st.Done.Render(text)
	}

	parts := []string{checkbox(t.Completed), text}
	if t.Due != nil {
		due := a.formatDue(t.Due)
		if overdue {
			due = st.Overdue.Render(due + " (atrasado)")
		}
		parts = append(parts, due)
	}
	if t.Urgent {
		parts = append(parts, st.Urgent.Render("! urgente"))
	}
	if t.Link != "" {
		parts = append(parts, st.Muted.Render(t.Link))
	}
	parts = append(parts, st.Muted.Render("#"+t.ID))
	return "  " + strings.Join(parts, "  ")
}

// listHeading renders the heading of a list section
func (a *App) listHeading(info domain.ListInfo, count int) string {
	return a.styles.Group(info.Group).Bold(true).Render(sprintf("%s %s (%d)", info.Icon, info.Label, count))
}

func listInfo(name domain.ListName) domain.ListInfo {
	info, _ := name.Info()
	return info
}
