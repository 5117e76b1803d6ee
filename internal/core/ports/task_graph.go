// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=task_graph.go -destination=mocks/mock_task_graph.go -package=mocks

// Task is a single unit of work registered in a host build graph.
//
// All mutators are idempotent: repeating a call with the same argument
// leaves the task in the same state.
type Task interface {
	// Name returns the unique task name within its graph.
	Name() string

	// Enabled reports whether the task would run when requested.
	Enabled() bool

	// SetEnabled marks the task as runnable or not.
	SetEnabled(enabled bool)

	// SetExecutionGuard installs a predicate consulted at execution time;
	// the task runs only if the predicate returns true. Installing a guard
	// replaces any previously installed one.
	SetExecutionGuard(guard func() bool)

	// Dependencies returns the names of the tasks this task depends on.
	Dependencies() []string

	// ClearDependencies removes every dependency edge from this task.
	ClearDependencies()

	// Description returns the human-readable task description.
	Description() string

	// SetDescription replaces the task description.
	SetDescription(desc string)
}

// TaskGraph is a live, lazily realized collection of tasks.
type TaskGraph interface {
	// FindByName returns the task registered under name, materializing it
	// on first access. The boolean is false when no such task exists;
	// absence is not an error.
	FindByName(name string) (Task, bool)

	// OnFinalized registers fn to run once the graph settles. Hooks run in
	// registration order. Registering after finalization is an error.
	OnFinalized(fn func() error) error
}
