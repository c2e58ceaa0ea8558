package workplace

import "github.com/shopspring/decimal"

// ProjectStatus represents the lifecycle of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Priority is shared by projects and tasks
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a unit of work, either inside a project or standalone
// (standalone tasks carry an empty ProjectID)
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	AssignedTo  string
	StartDate   string
	DueDate     string
	Status      TaskStatus
	Priority    Priority
	Progress    int
	Comments    []string
	Attachments []string
}

// GetID returns the task id
func (t Task) GetID() string {
	return t.ID
}

// Project represents a managed initiative with a task breakdown
type Project struct {
	ID          string
	Name        string
	Description string
	Manager     string
	Team        []string
	StartDate   string
	Deadline    string
	Status      ProjectStatus
	Progress    int
	Budget      decimal.Decimal
	Expenses    decimal.Decimal
	Priority    Priority
	Tasks       []Task
	Documents   []string
	Notes       string
}

// GetID returns the project id
func (p Project) GetID() string {
	return p.ID
}
