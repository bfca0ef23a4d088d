package toast

// Type is the severity a toast is rendered with.
type Type string

const (
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// GenericFailure is shown for anything that isn't a message reported by the
// backend itself.
const GenericFailure = "Something went wrong"

// Toast is a transient, dismissible notification.
type Toast struct {
	Message string
	Visible bool
	Type    Type
}

func Error(message string) Toast {
	return Toast{Message: message, Visible: true, Type: TypeError}
}

func Success(message string) Toast {
	return Toast{Message: message, Visible: true, Type: TypeSuccess}
}

// Dismiss hides the toast. Message and type are kept as they are.
func (t *Toast) Dismiss() {
	t.Visible = false
}
