package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
)

// Submit turns the current draft into the one pending mutation: an update
// when a moment is being edited, a create otherwise. At most one submit may
// be in flight; a concurrent attempt is rejected with ErrSubmitPending, not
// queued.
//
// On success the cached collections are invalidated first and the draft is
// reset after, so an immediate re-read observes the new remote state. On
// failure the draft stays intact for retry and the error propagates.
func (s *Service) Submit(ctx context.Context) (*notion.Page, error) {
	if !s.submitMu.TryLock() {
		return nil, ErrSubmitPending
	}
	defer s.submitMu.Unlock()

	client, err := s.Client()
	if err != nil {
		return nil, err
	}

	d := s.Draft.Draft()
	editing := s.Draft.Editing()
	props := moment.BuildProperties(
		d.Description,
		d.Type,
		d.Timestamp,
		moment.CategoryFromForm(d.Category, d.IsProject),
		editing,
	)

	var page *notion.Page
	if editing != nil {
		page, err = client.UpdatePage(ctx, editing.ID, props)
	} else {
		page, err = client.CreatePage(ctx, s.momentsID(), props)
	}
	if err != nil {
		return nil, err
	}

	if err := s.group.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("refreshing collections after write")
	}
	s.Draft.ResetAfterSubmit()
	return page, nil
}
