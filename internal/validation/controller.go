package validation

// State is the submission lifecycle state of a Controller
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// Controller owns the submission lifecycle for one form instance. It gates
// a caller-supplied handler behind a full validation pass: the handler runs
// exactly once per accepted submit, and repeat submits are dropped while an
// earlier submission is still settling. T is whatever the handler hands back
// to the caller (the views use a tea.Cmd).
//
// Controllers are private per form and driven from the UI event loop, so no
// locking is needed.
type Controller[T any] struct {
	rules   map[string][]Rule
	handler func(values map[string]string) T

	state  State
	errors Errors
}

// NewController builds a controller over a form's rule sets. The handler is
// the form's async submit action; the controller never inspects or catches
// what it does, it only guards when it runs.
func NewController[T any](rules map[string][]Rule, handler func(values map[string]string) T) *Controller[T] {
	return &Controller[T]{
		rules:   rules,
		handler: handler,
		errors:  make(Errors),
	}
}

// Submit validates the raw values and, when every field passes, invokes the
// handler with them and enters StateSubmitting. On validation failure the
// error map is stored for display and the handler is not called. A Submit
// while a previous submission is settling is dropped entirely: the stored
// errors are untouched and the handler does not run a second time.
func (c *Controller[T]) Submit(values map[string]string) (result T, invoked bool) {
	if c.state == StateSubmitting {
		return result, false
	}

	// Fresh pass every attempt so stale errors never outlive a fix
	c.errors = ValidateForm(values, c.rules)
	if c.errors.HasErrors() {
		return result, false
	}

	c.state = StateSubmitting
	return c.handler(values), true
}

// Finish returns the controller to StateIdle once the caller's async action
// has settled, successfully or not. Safe to call when already idle.
func (c *Controller[T]) Finish() {
	c.state = StateIdle
}

// Errors returns the error map from the last validation pass
func (c *Controller[T]) Errors() Errors {
	return c.errors
}

// FieldError returns the stored message for one field, "" when it passed
func (c *Controller[T]) FieldError(name string) string {
	return c.errors[name]
}

func (c *Controller[T]) State() State {
	return c.state
}

// Submitting reports whether an accepted submission is still settling
func (c *Controller[T]) Submitting() bool {
	return c.state == StateSubmitting
}
