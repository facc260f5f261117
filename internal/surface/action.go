package surface

// ActionKind tags an ActionRef variant.
type ActionKind string

const (
	ActionOpTrigger ActionKind = "op_trigger"
	ActionNavigate  ActionKind = "navigate"
)

// OpTrigger requests a backend mutation via an opaque token. The front
// end never interprets the token.
type OpTrigger struct {
	Label   string `json:"label"`
	OpToken string `json:"op_token"`
	Confirm bool   `json:"confirm,omitempty"`
}

// NavAction routes the user somewhere instead of mutating anything.
type NavAction struct {
	Label  string    `json:"label"`
	Target NavTarget `json:"target"`
}

// ActionRef is one action slot on a surface: either an operation trigger
// or a navigation action, never both.
type ActionRef struct {
	Kind ActionKind `json:"kind"`
	Op   *OpTrigger `json:"op,omitempty"`
	Nav  *NavAction `json:"nav,omitempty"`
}

// Note is a short annotated remark attached to a what-next surface.
type Note struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}
