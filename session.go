package brochure

import (
	"github.com/google/uuid"

	"github.com/propsheet/brochure/internal/logging"
)

// maxRecentColors caps the recently-used color list.
const maxRecentColors = 16

// EffectState holds the per-element visual effects edited in the
// panels. Effects are kept in a side table on the session, keyed by
// element id, and serialized with the session.
type EffectState struct {
	Shadow    string  `json:"shadow,omitempty"`
	Gradient  string  `json:"gradient,omitempty"`
	Blur      float64 `json:"blur,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
	Opacity   float64 `json:"opacity"`
}

// Session is the explicit application state for one editing session:
// the photo library, the generated pages, recently-used colors and
// the element effect table.
//
// A session is confined to a single goroutine; the editor mutates it
// only between awaited operations.
type Session struct {
	ID           string                 `json:"id"`
	Library      *Library               `json:"library"`
	Pages        []*Page                `json:"pages"`
	RecentColors []string               `json:"recentColors"`
	Effects      map[string]EffectState `json:"effects"`
}

// NewSession creates an empty session with a fresh photo library.
func NewSession() *Session {
	return &Session{
		ID:           uuid.New().String(),
		Library:      NewLibrary(),
		Pages:        make([]*Page, 0),
		RecentColors: make([]string, 0),
		Effects:      make(map[string]EffectState),
	}
}

// SetPages replaces the page list, e.g. after regenerating the
// brochure. The previous pages are discarded.
func (s *Session) SetPages(pages []*Page) {
	s.Pages = pages
}

// TouchColor records a color as recently used. The list is
// most-recent-first, deduplicated and capped.
func (s *Session) TouchColor(color string) {
	kept := make([]string, 0, len(s.RecentColors)+1)
	kept = append(kept, color)
	for _, c := range s.RecentColors {
		if c != color {
			kept = append(kept, c)
		}
	}
	if len(kept) > maxRecentColors {
		kept = kept[:maxRecentColors]
	}
	s.RecentColors = kept
}

// Effect returns the effect state for an element.
// Elements without recorded effects get the neutral state.
func (s *Session) Effect(elementID string) EffectState {
	e, ok := s.Effects[elementID]
	if !ok {
		return EffectState{Opacity: 1}
	}
	return e
}

// SetEffect records the effect state for an element.
func (s *Session) SetEffect(elementID string, e EffectState) {
	if s.Effects == nil {
		s.Effects = make(map[string]EffectState)
	}
	s.Effects[elementID] = e
}

// ClearEffect removes the recorded effects for an element.
func (s *Session) ClearEffect(elementID string) {
	delete(s.Effects, elementID)
}

// Page returns the page with the given id.
func (s *Session) Page(id int) (*Page, error) {
	for _, p := range s.Pages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, NewNotFound("no page with id %v", id)
}

// MovePage moves the page with the given id to the given position.
func (s *Session) MovePage(id, to int) error {
	if to < 0 || to >= len(s.Pages) {
		return NewValidationError("position %v out of range", to)
	}

	from := -1
	for i, p := range s.Pages {
		if p.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return NewNotFound("no page with id %v", id)
	}

	p := s.Pages[from]
	s.Pages = append(s.Pages[:from], s.Pages[from+1:]...)
	s.Pages = append(s.Pages[:to], append([]*Page{p}, s.Pages[to:]...)...)
	return nil
}

// DeletePage removes the page with the given id.
func (s *Session) DeletePage(id int) error {
	for i, p := range s.Pages {
		if p.ID == id {
			s.Pages = append(s.Pages[:i], s.Pages[i+1:]...)
			logging.Debug("Deleted page %v", id)
			return nil
		}
	}
	return NewNotFound("no page with id %v", id)
}

// DuplicatePage copies the page with the given id and inserts the
// copy directly after the original. The copy gets a fresh id.
// Photos are shared with the original, not copied.
func (s *Session) DuplicatePage(id int) (*Page, error) {
	idx := -1
	maxID := 0
	for i, p := range s.Pages {
		if p.ID == id {
			idx = i
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	if idx < 0 {
		return nil, NewNotFound("no page with id %v", id)
	}

	src := s.Pages[idx]
	dup := &Page{
		ID:      maxID + 1,
		Type:    src.Type,
		Title:   src.Title,
		Photos:  append(make([]*Photo, 0, len(src.Photos)), src.Photos...),
		Layout:  src.Layout,
		Content: src.Content,
	}

	s.Pages = append(s.Pages[:idx+1], append([]*Page{dup}, s.Pages[idx+1:]...)...)
	return dup, nil
}

// RemovePhoto removes a photo from a page. The photo stays in the
// library.
func (s *Session) RemovePhoto(pageID int, photoID string) error {
	p, err := s.Page(pageID)
	if err != nil {
		return err
	}

	for i, photo := range p.Photos {
		if photo.ID == photoID {
			p.Photos = append(p.Photos[:i], p.Photos[i+1:]...)
			return nil
		}
	}
	return NewNotFound("no photo with id %q on page %v", photoID, pageID)
}
