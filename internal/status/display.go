package status

import "sync"

// State is the widget's display state
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateError   State = "error"
)

// View is what the page renders: two indicators and an error message
type View struct {
	State          State  `json:"state" example:"idle"`
	LoadingVisible bool   `json:"loadingVisible"`
	ErrorVisible   bool   `json:"errorVisible"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// Display holds the loading and error indicators
type Display struct {
	mu             sync.RWMutex
	loadingVisible bool
	errorVisible   bool
	errorMessage   string
}

func NewDisplay() *Display {
	return &Display{}
}

// ShowLoading shows the loading indicator and hides the error indicator
func (d *Display) ShowLoading() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingVisible = true
	d.errorVisible = false
}

// HideLoading hides the loading indicator and leaves the error indicator as is
func (d *Display) HideLoading() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingVisible = false
}

// ShowError hides the loading indicator and shows msg in the error indicator
func (d *Display) ShowError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingVisible = false
	d.errorVisible = true
	d.errorMessage = msg
}

func (d *Display) Snapshot() View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v := View{
		LoadingVisible: d.loadingVisible,
		ErrorVisible:   d.errorVisible,
	}

	switch {
	case d.loadingVisible:
		v.State = StateLoading
	case d.errorVisible:
		v.State = StateError
		v.ErrorMessage = d.errorMessage
	default:
		v.State = StateIdle
	}

	return v
}
