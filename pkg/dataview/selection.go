package dataview

import (
	"context"
	"sort"
)

// BulkDeleter issues one delete request for a full selection. Implementations
// must treat the request as all-or-nothing; partial success is not modeled.
type BulkDeleter interface {
	BulkDelete(ctx context.Context, kind string, ids []string) error
}

// Confirmer guards destructive actions. Injected so tests and non-interactive
// surfaces can answer without a blocking dialog.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Selection tracks the checked record ids of one view and dispatches bulk
// deletes over the whole set.
type Selection struct {
	kind      string
	items     map[string]struct{}
	deleter   BulkDeleter
	confirmer Confirmer
	onRefresh func()
	onError   func(error)
}

func NewSelection(kind string, deleter BulkDeleter, confirmer Confirmer, onRefresh func(), onError func(error)) *Selection {
	return &Selection{
		kind:      kind,
		items:     make(map[string]struct{}),
		deleter:   deleter,
		confirmer: confirmer,
		onRefresh: onRefresh,
		onError:   onError,
	}
}

// ToggleItem adds or removes one id. Toggling the same id on and off returns
// the selection to its prior state.
func (s *Selection) ToggleItem(id string, checked bool) {
	if checked {
		s.items[id] = struct{}{}
	} else {
		delete(s.items, id)
	}
}

// ToggleAllItems selects the full current id list or clears the selection.
func (s *Selection) ToggleAllItems(checked bool, allIDs []string) {
	s.items = make(map[string]struct{})
	if checked {
		for _, id := range allIDs {
			s.items[id] = struct{}{}
		}
	}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.items[id]
	return ok
}

func (s *Selection) Count() int { return len(s.items) }

// SelectedItems returns the selected ids in stable (sorted) order.
func (s *Selection) SelectedItems() []string {
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear drops the whole selection without dispatching anything.
func (s *Selection) Clear() {
	s.items = make(map[string]struct{})
}

// BulkDelete asks for confirmation and issues one delete request carrying the
// full selection. On success the selection is cleared and the refresh signal
// fires exactly once. On failure the selection is left intact, the error is
// surfaced and no refresh fires. The server response is assumed atomic; there
// is no partial-success handling.
func (s *Selection) BulkDelete(ctx context.Context) error {
	if len(s.items) == 0 {
		return nil
	}
	if s.confirmer != nil && !s.confirmer.Confirm("Delete selected items?") {
		return nil
	}

	if err := s.deleter.BulkDelete(ctx, s.kind, s.SelectedItems()); err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return err
	}

	s.Clear()
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return nil
}
