package repositories

import (
	"sort"
	"sync"

	"dailydiet/internal/models"
)

// MockSnackRepository is an in-memory implementation of SnackRepository.
type MockSnackRepository struct {
	snacks map[uint]models.Snack
	nextID uint
	mu     sync.RWMutex
}

// NewMockSnackRepository creates a new instance of MockSnackRepository.
func NewMockSnackRepository() *MockSnackRepository {
	return &MockSnackRepository{
		snacks: make(map[uint]models.Snack),
		nextID: 1,
	}
}

// GetAllByUser returns the user's snacks ordered by ID.
func (r *MockSnackRepository) GetAllByUser(userID uint) ([]models.Snack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snacks := r.snacksByID(userID)
	return snacks, nil
}

// GetByID returns the snack only if it belongs to the given user.
func (r *MockSnackRepository) GetByID(id, userID uint) (*models.Snack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snack, ok := r.snacks[id]
	if !ok || snack.UserID != userID {
		return nil, nil
	}
	return &snack, nil
}

// Create adds a new snack, assigning the next sequential ID.
func (r *MockSnackRepository) Create(snack *models.Snack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snack.ID = r.nextID
	r.nextID++
	r.snacks[snack.ID] = *snack
	return nil
}

// Update replaces the stored snack if (ID, UserID) match an existing row.
func (r *MockSnackRepository) Update(snack *models.Snack) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.snacks[snack.ID]
	if !ok || existing.UserID != snack.UserID {
		return false, nil
	}
	r.snacks[snack.ID] = *snack
	return true, nil
}

// Delete removes the snack if (id, userID) match an existing row.
func (r *MockSnackRepository) Delete(id, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.snacks[id]
	if !ok || existing.UserID != userID {
		return false, nil
	}
	delete(r.snacks, id)
	return true, nil
}

// Summary computes the dietary summary over the in-memory rows, walking
// the user's snacks in ID order to find the longest on-diet run.
func (r *MockSnackRepository) Summary(userID uint) (*models.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := &models.Summary{}
	var current int64
	for _, s := range r.snacksByID(userID) {
		summary.Total++
		if s.OnDiet {
			summary.OnDiet++
			current++
			if current > summary.BestSequence {
				summary.BestSequence = current
			}
		} else {
			summary.NotOnDiet++
			current = 0
		}
	}
	return summary, nil
}

// snacksByID returns the user's snacks sorted by ID. Callers must hold r.mu.
func (r *MockSnackRepository) snacksByID(userID uint) []models.Snack {
	snacks := make([]models.Snack, 0)
	for _, s := range r.snacks {
		if s.UserID == userID {
			snacks = append(snacks, s)
		}
	}
	sort.Slice(snacks, func(i, j int) bool { return snacks[i].ID < snacks[j].ID })
	return snacks
}
