package session

import (
	"sync"
	"time"
)

// Manager owns every Document currently in memory, keyed by document ID,
// creating them lazily on first access and expiring ones nobody has
// touched in a while.
type Manager struct {
	mu              sync.Mutex
	documents       map[string]*Document
	maxDocumentSize int
	idleTimeout     time.Duration
}

// NewManager returns an empty Manager. maxDocumentSize bounds every
// document it creates; idleTimeout governs Reap.
func NewManager(maxDocumentSize int, idleTimeout time.Duration) *Manager {
	return &Manager{
		documents:       make(map[string]*Document),
		maxDocumentSize: maxDocumentSize,
		idleTimeout:     idleTimeout,
	}
}

// Get returns the document for id, creating an empty one if none exists
// yet.
func (m *Manager) Get(id string) *Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.documents[id]
	if !ok {
		doc = NewDocument(m.maxDocumentSize)
		m.documents[id] = doc
	}
	return doc
}

// Delete drops a document outright, regardless of idle time.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.documents, id)
}

// Len reports how many documents are currently tracked.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.documents)
}

// Reap drops every document whose last edit is older than the manager's
// idleTimeout and which currently has no subscribers, returning how many
// were removed. Callers typically run this on a ticker.
func (m *Manager) Reap() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := time.Now().Unix()
	for id, doc := range m.documents {
		doc.mu.RLock()
		idle := len(doc.subscribers) == 0 && now-doc.lastEditTime.Load() > int64(m.idleTimeout.Seconds())
		doc.mu.RUnlock()
		if idle {
			delete(m.documents, id)
			removed++
		}
	}
	return removed
}
