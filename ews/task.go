package ews

// Task is a task. IsComplete is derived by the server: set PercentComplete
// to 100 to complete a task.
type Task struct {
	Item
}

// NewTask returns an empty task.
func NewTask() *Task {
	return &Task{Item: *newItem(KindTask)}
}

// Clone returns an independent deep copy.
func (t *Task) Clone() *Task {
	return &Task{Item: *t.Item.Clone()}
}

// ActualWork returns the minutes spent on the task.
func (t *Task) ActualWork() int { return t.bag().int("ActualWork") }

// SetActualWork sets the minutes spent on the task.
func (t *Task) SetActualWork(minutes int) { t.bag().setInt("ActualWork", minutes) }

// AssignedTime returns when the task was assigned.
func (t *Task) AssignedTime() DateTime { return DateTime(t.bag().Get("AssignedTime")) }

// BillingInformation returns the billing information.
func (t *Task) BillingInformation() string { return t.bag().Get("BillingInformation") }

// SetBillingInformation sets the billing information.
func (t *Task) SetBillingInformation(s string) { t.bag().SetOrUpdate("BillingInformation", s) }

// ChangeCount returns how often the task was changed.
func (t *Task) ChangeCount() int { return t.bag().int("ChangeCount") }

// Companies returns the associated companies.
func (t *Task) Companies() []string { return t.bag().strings("Companies") }

// SetCompanies sets the associated companies.
func (t *Task) SetCompanies(companies []string) { t.bag().setStrings("Companies", companies) }

// CompleteDate returns when the task was completed.
func (t *Task) CompleteDate() DateTime { return DateTime(t.bag().Get("CompleteDate")) }

// SetCompleteDate sets when the task was completed.
func (t *Task) SetCompleteDate(d DateTime) { t.bag().SetOrUpdate("CompleteDate", string(d)) }

// DelegationState returns the delegation state.
func (t *Task) DelegationState() string { return t.bag().Get("DelegationState") }

// Delegator returns who delegated the task.
func (t *Task) Delegator() string { return t.bag().Get("Delegator") }

// DueDate returns the due date.
func (t *Task) DueDate() DateTime { return DateTime(t.bag().Get("DueDate")) }

// SetDueDate sets the due date.
func (t *Task) SetDueDate(d DateTime) { t.bag().SetOrUpdate("DueDate", string(d)) }

// IsComplete reports whether the task is complete.
func (t *Task) IsComplete() bool { return t.bag().bool("IsComplete") }

// IsRecurring reports whether the task recurs.
func (t *Task) IsRecurring() bool { return t.bag().bool("IsRecurring") }

// IsTeamTask reports whether the task is owned by a team.
func (t *Task) IsTeamTask() bool { return t.bag().bool("IsTeamTask") }

// Mileage returns the mileage.
func (t *Task) Mileage() string { return t.bag().Get("Mileage") }

// SetMileage sets the mileage.
func (t *Task) SetMileage(s string) { t.bag().SetOrUpdate("Mileage", s) }

// Owner returns the owner.
func (t *Task) Owner() string { return t.bag().Get("Owner") }

// PercentComplete returns the completion in [0,100].
func (t *Task) PercentComplete() int { return t.bag().int("PercentComplete") }

// SetPercentComplete sets the completion. Values are clamped to [0,100].
func (t *Task) SetPercentComplete(pct int) {
	t.bag().setInt("PercentComplete", min(max(pct, 0), 100))
}

// Recurrence returns the recurrence, if any.
func (t *Task) Recurrence() (Recurrence, bool) {
	return recurrenceFromElement(t.bag().element("Recurrence"))
}

// SetRecurrence makes the task recur.
func (t *Task) SetRecurrence(r Recurrence) { t.bag().replace(r.element()) }

// StartDate returns the start date.
func (t *Task) StartDate() DateTime { return DateTime(t.bag().Get("StartDate")) }

// SetStartDate sets the start date.
func (t *Task) SetStartDate(d DateTime) { t.bag().SetOrUpdate("StartDate", string(d)) }

// Status returns the status, NotStarted when unset.
func (t *Task) Status() TaskStatus {
	if s := t.bag().Get("Status"); s != "" {
		return TaskStatus(s)
	}
	return TaskNotStarted
}

// SetStatus sets the status.
func (t *Task) SetStatus(s TaskStatus) { t.bag().SetOrUpdate("Status", string(s)) }

// StatusDescription returns the localized status text.
func (t *Task) StatusDescription() string { return t.bag().Get("StatusDescription") }

// TotalWork returns the estimated minutes of work.
func (t *Task) TotalWork() int { return t.bag().int("TotalWork") }

// SetTotalWork sets the estimated minutes of work.
func (t *Task) SetTotalWork(minutes int) { t.bag().setInt("TotalWork", minutes) }
