package handlers

import (
	"testing"
	"time"

	"scheduledash/services/dashboard"
	"scheduledash/utils"
)

func sessionCount(h *DashboardHandler) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func TestRegistryExpiryReleasesDashboardSession(t *testing.T) {
	registry := utils.NewSessionRegistry(-time.Minute)
	h := NewDashboardHandler(nil, registry)

	browser := registry.Create("tok", "alice")
	h.mu.Lock()
	h.sessions[browser.ID] = dashboard.NewSession(nil, nil, 0)
	h.mu.Unlock()

	if _, ok := registry.Get(browser.ID); ok {
		t.Fatalf("expired session must be evicted")
	}
	if sessionCount(h) != 0 {
		t.Fatalf("dashboard session not released on registry eviction")
	}
}

func TestRegistryDeleteReleasesDashboardSession(t *testing.T) {
	registry := utils.NewSessionRegistry(time.Hour)
	h := NewDashboardHandler(nil, registry)

	browser := registry.Create("tok", "alice")
	h.mu.Lock()
	h.sessions[browser.ID] = dashboard.NewSession(nil, nil, 0)
	h.mu.Unlock()

	registry.Delete(browser.ID)
	if sessionCount(h) != 0 {
		t.Fatalf("dashboard session not released on delete")
	}
}
