package widget

// UrgentTrigger is the always-visible affordance that opens the widget
// straight into the urgent-request flow. It is a composed call sequence on
// the controller, not a separate state machine.
type UrgentTrigger struct {
	controller *Controller
}

// NewUrgentTrigger creates a trigger bound to the given controller.
func NewUrgentTrigger(c *Controller) *UrgentTrigger {
	return &UrgentTrigger{controller: c}
}

// Activate forces the widget open and escalates, regardless of current
// visibility or a pending bot turn.
func (u *UrgentTrigger) Activate() {
	u.controller.ActivateUrgent()
}
