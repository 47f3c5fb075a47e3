package views

import "ricettario/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type (
	SwitchToCreateMsg struct{}

	SwitchToEditMsg struct {
		Recipe domain.Recipe
	}

	SwitchToDeleteMsg struct {
		Recipe domain.Recipe
	}

	SwitchToSearchMsg struct{}

	SwitchToHelpMsg struct{}

	SwitchToBrowserMsg struct{}
)

// ActionDoneMsg reports the outcome of a create, edit or delete. The app
// returns to the browser and shows Message there.
type ActionDoneMsg struct {
	Message string
}

// ActionErrMsg reports a failed create, edit or delete. The current view
// stays open and shows the error.
type ActionErrMsg struct {
	Err error
}

type errMsg struct {
	err error
}
