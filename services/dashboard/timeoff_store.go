package dashboard

import (
	"sort"

	"scheduledash/models"
)

// TimeOffStore is the in-memory committed collection of time-off records,
// kept sorted by ascending start date. It also tracks the single editing
// session: a draft copy of one committed record, which never becomes visible
// in the list until an explicit save.
//
// The store is not safe for concurrent use; the owning session serializes
// access.
type TimeOffStore struct {
	records []models.TimeOffRecord
	editing *models.TimeOffRecord
}

func NewTimeOffStore() *TimeOffStore {
	return &TimeOffStore{}
}

// List returns the committed records in ascending start-date order.
func (s *TimeOffStore) List() []models.TimeOffRecord {
	out := make([]models.TimeOffRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Replace swaps in a freshly fetched record set.
func (s *TimeOffStore) Replace(records []models.TimeOffRecord) {
	s.records = make([]models.TimeOffRecord, len(records))
	copy(s.records, records)
	s.resort()
}

// Contains reports whether a committed record with the given id exists.
func (s *TimeOffStore) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Add appends a record whose id was assigned by a successful remote create.
// Uniqueness of the id is the caller's precondition.
func (s *TimeOffStore) Add(record models.TimeOffRecord) {
	s.records = append(s.records, record)
	s.resort()
}

// Update replaces the member with a matching id.
func (s *TimeOffStore) Update(id string, record models.TimeOffRecord) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &StateError{Op: "update", ID: id}
	}
	s.records[idx] = record
	s.resort()
	return nil
}

// Remove deletes the member with a matching id.
func (s *TimeOffStore) Remove(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &StateError{Op: "remove", ID: id}
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

// BeginEdit opens the editing session for the record with the given id and
// returns the draft copy. Any previous editing session is discarded.
func (s *TimeOffStore) BeginEdit(id string) (models.TimeOffRecord, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.TimeOffRecord{}, &StateError{Op: "edit", ID: id}
	}
	draft := s.records[idx]
	s.editing = &draft
	return draft, nil
}

// EditDraft returns the draft under edit, or nil when no editing session is
// open.
func (s *TimeOffStore) EditDraft() *models.TimeOffRecord {
	return s.editing
}

// EndEdit closes the editing session without touching the committed list.
func (s *TimeOffStore) EndEdit() {
	s.editing = nil
}

func (s *TimeOffStore) indexOf(id string) int {
	for i, record := range s.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func (s *TimeOffStore) resort() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].StartDate < s.records[j].StartDate
	})
}
