package domain

import "fmt"

type SessionState string

const (
	StateLoading     SessionState = "loading"
	StateReady       SessionState = "ready"
	StateViewing     SessionState = "viewing"
	StateFetchError  SessionState = "fetch_error"
	StateRenderError SessionState = "render_error"
)

// Session tracks one open book. Transitions follow
// loading -> ready -> viewing, with fetch_error terminal from loading
// and render_error recoverable through Retry.
type Session struct {
	BookID     string
	Book       BookRef
	State      SessionState
	Page       int
	TotalPages int
	Percent    int
	Err        error
}

func NewSession(bookID string) *Session {
	return &Session{BookID: bookID, State: StateLoading}
}

func (s *Session) MetadataFetched(book BookRef) error {
	if s.State != StateLoading {
		return fmt.Errorf("metadata fetched in state %s", s.State)
	}
	s.Book = book
	s.State = StateReady
	return nil
}

func (s *Session) FetchFailed(err error) {
	s.State = StateFetchError
	s.Err = err
}

// PageCountKnown records the renderer's page count and restores prior
// progress when present, clamping it into range.
func (s *Session) PageCountKnown(total int, restored *ReadingProgress) error {
	if s.State != StateReady {
		return fmt.Errorf("page count reported in state %s", s.State)
	}
	s.TotalPages = total
	s.Page = 0
	if restored != nil {
		s.Page = restored.Page
		if total > 0 && s.Page >= total {
			s.Page = total - 1
		}
		if s.Page < 0 {
			s.Page = 0
		}
	}
	if restored != nil {
		s.Percent = CompletionPercent(s.Page, total)
	} else {
		s.Percent = 0
	}
	return nil
}

func (s *Session) PageChanged(page int) error {
	if s.State != StateReady && s.State != StateViewing {
		return fmt.Errorf("page change in state %s", s.State)
	}
	if page < 0 {
		page = 0
	}
	if s.TotalPages > 0 && page >= s.TotalPages {
		page = s.TotalPages - 1
	}
	s.Page = page
	s.Percent = CompletionPercent(page, s.TotalPages)
	s.State = StateViewing
	return nil
}

func (s *Session) RenderFailed(err error) {
	s.State = StateRenderError
	s.Err = err
}

func (s *Session) Retry() error {
	if s.State != StateRenderError {
		return fmt.Errorf("retry in state %s", s.State)
	}
	*s = *NewSession(s.BookID)
	return nil
}
