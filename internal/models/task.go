package models

import "time"

const (
	StatusTodo     = "todo"
	StatusProgress = "progress"
	StatusDone     = "done"
)

const (
	PriorityLow    = "baixa"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// Task categories match the fixed list the client sends.
const (
	CategoryWork     = "trabalho"
	CategoryStudies  = "estudos"
	CategoryPersonal = "pessoal"
	CategoryHealth   = "saude"
	CategoryHome     = "casa"
	CategoryFinance  = "financeiro"
	CategoryOther    = "outros"
)

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    string
	Category    string
	Status      string
	CreatedAt   time.Time
}
