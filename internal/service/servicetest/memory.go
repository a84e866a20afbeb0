// Package servicetest provides an in-memory PlaceStore so the service and
// HTTP layers can be tested without a database.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/places-api/internal/model"
	"github.com/deppfellow/places-api/internal/repository"
)

// MemoryStore keeps places in a map behind a single mutex. Ids are
// assigned sequentially starting at 1 and never reused.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	places map[int64]model.Place

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, places: make(map[int64]model.Place)}
}

func (m *MemoryStore) List(ctx context.Context) ([]model.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	places := make([]model.Place, 0, len(m.places))
	for _, place := range m.places {
		places = append(places, place)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return places, nil
}

func (m *MemoryStore) Create(ctx context.Context, name string) (*model.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	place := model.Place{ID: m.nextID, Name: name}
	m.places[place.ID] = place
	m.nextID++
	return &place, nil
}

func (m *MemoryStore) Get(ctx context.Context, id int64) (*model.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	place, ok := m.places[id]
	if !ok {
		return nil, repository.PlaceNotFoundError(id)
	}
	return &place, nil
}

func (m *MemoryStore) Replace(ctx context.Context, id int64, name string) (*model.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	if _, ok := m.places[id]; !ok {
		return nil, repository.PlaceNotFoundError(id)
	}
	place := model.Place{ID: id, Name: name}
	m.places[id] = place
	return &place, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.places[id]; !ok {
		return repository.PlaceNotFoundError(id)
	}
	delete(m.places, id)
	return nil
}

// Len reports how many places are stored.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.places)
}
