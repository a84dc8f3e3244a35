package repositories

import (
	"errors"
	"fmt"

	"dailydiet/internal/models"

	"gorm.io/gorm"
)

// GORMSnackRepository is a GORM implementation of SnackRepository.
type GORMSnackRepository struct {
	db *gorm.DB
}

// NewGORMSnackRepository creates a new instance of GORMSnackRepository.
func NewGORMSnackRepository(db *gorm.DB) *GORMSnackRepository {
	return &GORMSnackRepository{
		db: db,
	}
}

// GetAllByUser retrieves all snacks owned by the given user.
func (r *GORMSnackRepository) GetAllByUser(userID uint) ([]models.Snack, error) {
	var snacks []models.Snack
	if err := r.db.Find(&snacks, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get snacks for user %d: %w", userID, err)
	}
	return snacks, nil
}

// GetByID retrieves a single snack by its ID, scoped to the owning user.
func (r *GORMSnackRepository) GetByID(id, userID uint) (*models.Snack, error) {
	var snack models.Snack
	if err := r.db.First(&snack, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snack %d: %w", id, err)
	}
	return &snack, nil
}

// Create creates a new snack in the database. The assigned ID is written
// back into the model.
func (r *GORMSnackRepository) Create(snack *models.Snack) error {
	if err := r.db.Create(snack).Error; err != nil {
		return fmt.Errorf("failed to create snack: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of the snack identified by
// (snack.ID, snack.UserID). It reports whether a row matched; a map is
// used so zero values like on_diet=false are written too.
func (r *GORMSnackRepository) Update(snack *models.Snack) (bool, error) {
	res := r.db.Model(&models.Snack{}).
		Where("id = ? AND user_id = ?", snack.ID, snack.UserID).
		Updates(map[string]interface{}{
			"name":        snack.Name,
			"description": snack.Description,
			"created_at":  snack.CreatedAt,
			"on_diet":     snack.OnDiet,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update snack %d: %w", snack.ID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the snack identified by (id, userID) and reports whether
// a row was removed.
func (r *GORMSnackRepository) Delete(id, userID uint) (bool, error) {
	res := r.db.Delete(&models.Snack{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete snack %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// summaryQuery computes all four summary figures in one statement so they
// reflect a single snapshot of the user's snacks.
//
// best_sequence uses the gaps-and-islands technique: the user's snacks are
// numbered once in id order (rownum) and once within their on_diet
// partition (seqnum). Inside an unbroken run both advance in lockstep, so
// (rownum - seqnum) is constant per maximal run; grouping by it and
// counting gives the run lengths, and the longest on-diet run is the
// answer. Numbering per user rather than using raw ids keeps runs intact
// across id gaps left by deletes or other users' rows. The COALESCEs turn
// the empty and no-on-diet cases into explicit zeros.
const summaryQuery = `
SELECT
	COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN on_diet THEN 1 ELSE 0 END), 0) AS on_diet,
	COALESCE(SUM(CASE WHEN on_diet THEN 0 ELSE 1 END), 0) AS not_on_diet,
	COALESCE((
		SELECT MAX(run_length)
		FROM (
			SELECT COUNT(*) AS run_length
			FROM (
				SELECT on_diet,
					ROW_NUMBER() OVER (ORDER BY id) AS rownum,
					ROW_NUMBER() OVER (PARTITION BY on_diet ORDER BY id) AS seqnum
				FROM snacks
				WHERE user_id = ?
			) numbered
			WHERE on_diet
			GROUP BY rownum - seqnum
		) runs
	), 0) AS best_sequence
FROM snacks
WHERE user_id = ?`

// Summary computes the dietary summary for the given user.
func (r *GORMSnackRepository) Summary(userID uint) (*models.Summary, error) {
	var summary models.Summary
	if err := r.db.Raw(summaryQuery, userID, userID).Scan(&summary).Error; err != nil {
		return nil, fmt.Errorf("failed to compute summary for user %d: %w", userID, err)
	}
	return &summary, nil
}
