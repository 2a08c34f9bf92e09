package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
)

func TestMemoryStoreCRUD(t *testing.T) {
	m := NewMemoryStore()

	if _, ok := m.Get("u1"); ok {
		t.Error("Expected no session for fresh store")
	}

	m.Put(&domain.Session{UserID: "u1", Step: domain.StepAwaitingName})
	sess, ok := m.Get("u1")
	if !ok || sess.Step != domain.StepAwaitingName {
		t.Fatalf("Expected stored session, got %v/%v", sess, ok)
	}

	// Put is an upsert.
	m.Put(&domain.Session{UserID: "u1", Step: domain.StepAwaitingDate})
	sess, _ = m.Get("u1")
	if sess.Step != domain.StepAwaitingDate {
		t.Errorf("Expected replaced session, got step %d", sess.Step)
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 session, got %d", m.Len())
	}

	m.Delete("u1")
	if _, ok := m.Get("u1"); ok {
		t.Error("Expected session deleted")
	}
	m.Delete("u1") // deleting absent session is a no-op
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	m := NewMemoryStore()
	m.Put(&domain.Session{UserID: "u1", Step: domain.StepAwaitingName})
	m.Put(&domain.Session{UserID: "u2", Step: domain.StepPostConfirm})

	m.Delete("u1")
	if _, ok := m.Get("u2"); !ok {
		t.Error("Deleting u1 must not affect u2")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	m := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("u%d", i)
			m.Put(&domain.Session{UserID: id, Step: domain.StepAwaitingName})
			m.Get(id)
			m.Delete(id)
		}(i)
	}
	wg.Wait()

	if m.Len() != 0 {
		t.Errorf("Expected empty store, got %d sessions", m.Len())
	}
}

func TestCompletedSet(t *testing.T) {
	c := NewCompletedSet()
	if c.Contains("u1") {
		t.Error("Expected fresh caller not completed")
	}
	c.Mark("u1")
	if !c.Contains("u1") {
		t.Error("Expected marked caller to be completed")
	}
	if c.Contains("u2") {
		t.Error("Marking u1 must not affect u2")
	}
}
