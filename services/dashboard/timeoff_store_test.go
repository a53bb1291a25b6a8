package dashboard

import (
	"errors"
	"testing"

	"scheduledash/models"
)

func entry(id, start, end string) models.TimeOffRecord {
	return models.TimeOffRecord{ID: id, Type: models.TimeOffVacation, StartDate: start, EndDate: end}
}

func TestTimeOffStoreListIsSortedByStartDate(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("b", "2025-07-01", "2025-07-05"))
	store.Add(entry("a", "2025-06-01", "2025-06-03"))
	store.Add(entry("c", "2025-08-01", "2025-08-02"))

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].StartDate > list[i].StartDate {
			t.Fatalf("list not sorted: %v", list)
		}
	}
	if list[0].ID != "a" || list[2].ID != "c" {
		t.Fatalf("unexpected order: %v", list)
	}
}

func TestTimeOffStoreAddKeepsExistingMembers(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))
	store.Add(entry("b", "2025-05-01", "2025-05-02"))

	ids := map[string]bool{}
	for _, record := range store.List() {
		ids[record.ID] = true
	}
	if !ids["a"] || !ids["b"] {
		t.Fatalf("expected both members present, got %v", ids)
	}
}

func TestTimeOffStoreUpdateReplacesByID(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))

	updated := entry("a", "2025-09-01", "2025-09-02")
	if err := store.Update("a", updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	list := store.List()
	if len(list) != 1 || list[0].StartDate != "2025-09-01" {
		t.Fatalf("update not applied: %v", list)
	}
}

func TestTimeOffStoreUpdateUnknownIDSignalsStateError(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))

	err := store.Update("missing", entry("missing", "2025-06-01", "2025-06-03"))
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if len(store.List()) != 1 {
		t.Fatalf("list changed on failed update")
	}
}

func TestTimeOffStoreRemove(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))
	store.Add(entry("b", "2025-07-01", "2025-07-05"))

	if err := store.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	for _, record := range store.List() {
		if record.ID == "a" {
			t.Fatalf("removed record still present")
		}
	}
}

func TestTimeOffStoreRemoveUnknownIDLeavesListUnchanged(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))

	err := store.Remove("missing")
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if len(store.List()) != 1 {
		t.Fatalf("list changed on failed remove")
	}
}

func TestTimeOffStoreEditDraftIsIsolatedFromList(t *testing.T) {
	store := NewTimeOffStore()
	store.Add(entry("a", "2025-06-01", "2025-06-03"))

	draft, err := store.BeginEdit("a")
	if err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if draft.ID != "a" {
		t.Fatalf("wrong draft: %+v", draft)
	}

	store.EditDraft().StartDate = "2025-12-01"
	if store.List()[0].StartDate != "2025-06-01" {
		t.Fatalf("draft mutation leaked into committed list")
	}

	store.EndEdit()
	if store.EditDraft() != nil {
		t.Fatalf("edit session should be closed")
	}
	if store.List()[0].StartDate != "2025-06-01" {
		t.Fatalf("cancel must leave committed record unchanged")
	}
}

func TestTimeOffStoreBeginEditUnknownID(t *testing.T) {
	store := NewTimeOffStore()
	_, err := store.BeginEdit("missing")
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
}
