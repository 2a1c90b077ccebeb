package repository

import (
	"context"
	"sync"

	"theaterlist/internal/domain"
)

// MemoryListsRepo supports running without a database. Newest list first,
// matching the order lists are worked through in the practice.
type MemoryListsRepo struct {
	mu    sync.RWMutex
	lists map[string]domain.TheaterList
	order []string // listIDs, newest first
}

func NewMemoryListsRepo() *MemoryListsRepo {
	return &MemoryListsRepo{lists: map[string]domain.TheaterList{}}
}

var _ ListsRepository = (*MemoryListsRepo)(nil)

func (r *MemoryListsRepo) CreateList(_ context.Context, list *domain.TheaterList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[list.ListID] = *list
	r.order = append([]string{list.ListID}, r.order...)
	return nil
}

func (r *MemoryListsRepo) ListLists(_ context.Context) ([]domain.TheaterList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TheaterList, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.lists[id])
	}
	return out, nil
}

func (r *MemoryListsRepo) GetList(_ context.Context, listID string) (*domain.TheaterList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.lists[listID]
	if !ok {
		return nil, ErrNotFound
	}
	return &list, nil
}

func (r *MemoryListsRepo) SaveList(_ context.Context, list *domain.TheaterList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[list.ListID]; !ok {
		return ErrNotFound
	}
	r.lists[list.ListID] = *list
	return nil
}

func (r *MemoryListsRepo) DeleteList(_ context.Context, listID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[listID]; !ok {
		return ErrNotFound
	}
	delete(r.lists, listID)
	for i, id := range r.order {
		if id == listID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
