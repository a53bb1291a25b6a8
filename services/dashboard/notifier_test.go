package dashboard

import (
	"testing"
	"time"

	"scheduledash/models"
)

func TestNotifierShowAndDismiss(t *testing.T) {
	notifier := NewNotifier(0)

	notifier.Show("Schedule updated successfully!", models.SeveritySuccess)
	current := notifier.Current()
	if current == nil || current.Message != "Schedule updated successfully!" {
		t.Fatalf("unexpected notification: %+v", current)
	}
	if current.Severity != models.SeveritySuccess {
		t.Fatalf("expected success severity, got %q", current.Severity)
	}

	notifier.Dismiss()
	if notifier.Current() != nil {
		t.Fatalf("notification should be cleared after dismiss")
	}
}

func TestNotifierNewMessageReplacesCurrent(t *testing.T) {
	notifier := NewNotifier(0)

	notifier.Show("first", models.SeverityInfo)
	notifier.Show("second", models.SeverityError)

	current := notifier.Current()
	if current == nil || current.Message != "second" {
		t.Fatalf("expected replacement, got %+v", current)
	}
}

func TestNotifierAutoClearsAfterTTL(t *testing.T) {
	notifier := NewNotifier(20 * time.Millisecond)

	notifier.Show("transient", models.SeverityInfo)
	if notifier.Current() == nil {
		t.Fatalf("notification should be visible before the TTL")
	}

	deadline := time.Now().Add(time.Second)
	for notifier.Current() != nil {
		if time.Now().After(deadline) {
			t.Fatalf("notification not cleared after TTL")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNotifierReplacementResetsTheTimer(t *testing.T) {
	notifier := NewNotifier(40 * time.Millisecond)

	notifier.Show("first", models.SeverityInfo)
	time.Sleep(25 * time.Millisecond)
	notifier.Show("second", models.SeverityInfo)

	// The first timer fires inside this window; the replacement must survive
	// it because it carries its own generation.
	time.Sleep(25 * time.Millisecond)
	current := notifier.Current()
	if current == nil || current.Message != "second" {
		t.Fatalf("stale timer cleared the replacement: %+v", current)
	}
}

func TestNotifierCurrentReturnsACopy(t *testing.T) {
	notifier := NewNotifier(0)
	notifier.Show("original", models.SeverityInfo)

	current := notifier.Current()
	current.Message = "mutated"
	if notifier.Current().Message != "original" {
		t.Fatalf("caller mutation leaked into the notifier")
	}
}
