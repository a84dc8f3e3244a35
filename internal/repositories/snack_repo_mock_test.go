package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"dailydiet/internal/models"
	"dailydiet/internal/repositories"

	"github.com/stretchr/testify/assert"
)

// seedFlags inserts one snack per flag for the user, in order.
func seedFlags(t *testing.T, repo *repositories.MockSnackRepository, userID uint, flags []bool) {
	t.Helper()
	for i, onDiet := range flags {
		err := repo.Create(&models.Snack{
			Name:      fmt.Sprintf("snack-%d", i),
			CreatedAt: time.Now(),
			OnDiet:    onDiet,
			UserID:    userID,
		})
		assert.NoError(t, err)
	}
}

func TestMockSnackRepository_Summary(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		expected models.Summary
	}{
		{
			name:     "no snacks",
			flags:    nil,
			expected: models.Summary{},
		},
		{
			name:     "no on-diet snacks yields explicit zero",
			flags:    []bool{false, false, false},
			expected: models.Summary{Total: 3, NotOnDiet: 3},
		},
		{
			name:     "all on diet",
			flags:    []bool{true, true, true, true},
			expected: models.Summary{Total: 4, OnDiet: 4, BestSequence: 4},
		},
		{
			name:     "longest run in the middle",
			flags:    []bool{true, true, false, true, true, true, false},
			expected: models.Summary{Total: 7, OnDiet: 5, NotOnDiet: 2, BestSequence: 3},
		},
		{
			name:     "tied runs report the shared maximum",
			flags:    []bool{true, true, false, true, true},
			expected: models.Summary{Total: 5, OnDiet: 4, NotOnDiet: 1, BestSequence: 2},
		},
		{
			name:     "single trailing on-diet snack",
			flags:    []bool{false, true},
			expected: models.Summary{Total: 2, OnDiet: 1, NotOnDiet: 1, BestSequence: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := repositories.NewMockSnackRepository()
			seedFlags(t, repo, 1, tc.flags)

			summary, err := repo.Summary(1)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, *summary)
			assert.Equal(t, summary.Total, summary.OnDiet+summary.NotOnDiet)
		})
	}
}

func TestMockSnackRepository_SummaryIgnoresOtherUsers(t *testing.T) {
	repo := repositories.NewMockSnackRepository()
	seedFlags(t, repo, 1, []bool{true, true})
	seedFlags(t, repo, 2, []bool{false, false, false})

	summary, err := repo.Summary(1)

	assert.NoError(t, err)
	assert.Equal(t, models.Summary{Total: 2, OnDiet: 2, BestSequence: 2}, *summary)
}

func TestMockSnackRepository_OwnershipScoping(t *testing.T) {
	repo := repositories.NewMockSnackRepository()

	snack := &models.Snack{Name: "apple", UserID: 1}
	assert.NoError(t, repo.Create(snack))

	// Reads by another user see nothing.
	got, err := repo.GetByID(snack.ID, 2)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Cross-user update and delete match zero rows.
	updated, err := repo.Update(&models.Snack{ID: snack.ID, Name: "stolen", UserID: 2})
	assert.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.Delete(snack.ID, 2)
	assert.NoError(t, err)
	assert.False(t, deleted)

	// The owner still sees the original row.
	got, err = repo.GetByID(snack.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, "apple", got.Name)
}
