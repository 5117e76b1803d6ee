package taskgraph

import "slices"

// Task is the realized form of a registered task. It implements ports.Task
// with plain idempotent mutators; like its graph, it is confined to the
// module's configuration goroutine.
type Task struct {
	name         string
	description  string
	enabled      bool
	guard        func() bool
	dependencies []string
}

// NewTask creates an enabled task with the given dependency edges.
func NewTask(name, description string, dependencies ...string) *Task {
	return &Task{
		name:         name,
		description:  description,
		enabled:      true,
		dependencies: dependencies,
	}
}

// Name returns the unique task name.
func (t *Task) Name() string { return t.name }

// Enabled reports whether the task is marked runnable.
func (t *Task) Enabled() bool { return t.enabled }

// SetEnabled marks the task as runnable or not.
func (t *Task) SetEnabled(enabled bool) { t.enabled = enabled }

// SetExecutionGuard installs the execution-time predicate, replacing any
// previous guard.
func (t *Task) SetExecutionGuard(guard func() bool) { t.guard = guard }

// Dependencies returns a copy of the task's dependency edges.
func (t *Task) Dependencies() []string { return slices.Clone(t.dependencies) }

// ClearDependencies severs every outgoing dependency edge.
func (t *Task) ClearDependencies() { t.dependencies = nil }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// SetDescription replaces the task description.
func (t *Task) SetDescription(desc string) { t.description = desc }

// WillRun reports whether the host would actually execute the task: it has
// to be enabled and its guard, if one is installed, has to allow it.
func (t *Task) WillRun() bool {
	if !t.enabled {
		return false
	}
	if t.guard != nil {
		return t.guard()
	}
	return true
}
