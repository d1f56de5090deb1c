package domain

import (
	"strings"
)

// ListName identifies one of the seven category lists. The value is the key
// the list is stored under in the persisted snapshot.
type ListName string

const (
	ListExams         ListName = "exams"
	ListVideoLessons  ListName = "videoLessons"
	ListAssignments   ListName = "assignments"
	ListMeetings      ListName = "meetings"
	ListWorkTasks     ListName = "workTasks"
	ListGJMeetings    ListName = "gjMeetings"
	ListOutrosEventos ListName = "outrosEventos"
)

// Group is a calendar category grouping one or more lists for date decorations.
type Group string

const (
	GroupFaculdade Group = "faculdade"
	GroupTrabalho  Group = "trabalho"
	GroupAcademia  Group = "academia"
	GroupGJ        Group = "gj"
	GroupOutros    Group = "outros"
)

// Groups lists every calendar group in display order.
var Groups = []Group{GroupFaculdade, GroupTrabalho, GroupAcademia, GroupGJ, GroupOutros}

// WorkoutSection is the section tag carried by synthesized workout rows.
const WorkoutSection = "workout"

// Workout row label and icon.
const (
	WorkoutLabel = "Academia"
	WorkoutIcon  = "🏋️‍♀️"
)

// ListInfo describes how a list is labelled and grouped.
type ListInfo struct {
	Name   ListName
	Label  string
	Icon   string
	Group  Group
	Agenda bool // scanned by the calendar and counters
}

// AllLists holds the seven lists in canonical order.
var AllLists = []ListInfo{
	{Name: ListExams, Label: "Prova", Icon: "📚", Group: GroupFaculdade, Agenda: true},
	{Name: ListVideoLessons, Label: "Vídeo-aula", Icon: "🎬", Group: GroupFaculdade},
	{Name: ListAssignments, Label: "Entrega", Icon: "📝", Group: GroupFaculdade, Agenda: true},
	{Name: ListMeetings, Label: "Reunião", Icon: "💼", Group: GroupTrabalho, Agenda: true},
	{Name: ListWorkTasks, Label: "Trabalho", Icon: "⚡", Group: GroupTrabalho, Agenda: true},
	{Name: ListGJMeetings, Label: "GJ", Icon: "🙌", Group: GroupGJ, Agenda: true},
	{Name: ListOutrosEventos, Label: "Outros", Icon: "📅", Group: GroupOutros, Agenda: true},
}

// AgendaLists returns the task-bearing lists scanned by the derived views,
// in scan order.
func AgendaLists() []ListInfo {
	lists := make([]ListInfo, 0, len(AllLists))
	for _, info := range AllLists {
		if info.Agenda {
			lists = append(lists, info)
		}
	}
	return lists
}

// Info returns the metadata for a list name.
func (l ListName) Info() (ListInfo, bool) {
	for _, info := range AllLists {
		if info.Name == l {
			return info, true
		}
	}
	return ListInfo{}, false
}

// IsValid reports whether l names one of the seven lists.
func (l ListName) IsValid() bool {
	_, ok := l.Info()
	return ok
}

func (l ListName) String() string {
	return string(l)
}

var listAliases = map[string]ListName{
	"video-lessons":  ListVideoLessons,
	"videos":         ListVideoLessons,
	"work-meetings":  ListMeetings,
	"work-tasks":     ListWorkTasks,
	"gj":             ListGJMeetings,
	"gj-meetings":    ListGJMeetings,
	"outros":         ListOutrosEventos,
	"other-events":   ListOutrosEventos,
	"outros-eventos": ListOutrosEventos,
}

// ParseListName resolves a user supplied list name. The stored key matches
// case-insensitively, and a few kebab-case aliases are accepted.
func ParseListName(s string) (ListName, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, info := range AllLists {
		if strings.ToLower(string(info.Name)) == key {
			return info.Name, true
		}
	}
	name, ok := listAliases[key]
	return name, ok
}
