package services

import (
	"log"

	"dailydiet/internal/models"
	"dailydiet/internal/repositories"
	"dailydiet/pkg/rabbitmq"
)

// SnackService handles business logic related to snacks. All operations
// are scoped to the owning user; the repository guarantees that rows of
// other users are never touched.
type SnackService struct {
	snackRepo repositories.SnackRepository
	mqClient  *rabbitmq.Client // optional, nil disables event publishing
}

// NewSnackService creates a new SnackService. mqClient may be nil, in
// which case lifecycle events are skipped.
func NewSnackService(snackRepo repositories.SnackRepository, mqClient *rabbitmq.Client) *SnackService {
	return &SnackService{
		snackRepo: snackRepo,
		mqClient:  mqClient,
	}
}

// ListSnacks retrieves all snacks owned by the user.
func (s *SnackService) ListSnacks(userID uint) ([]models.Snack, error) {
	return s.snackRepo.GetAllByUser(userID)
}

// GetSnack retrieves a single snack if it belongs to the user; (nil, nil)
// otherwise.
func (s *SnackService) GetSnack(id, userID uint) (*models.Snack, error) {
	return s.snackRepo.GetByID(id, userID)
}

// CreateSnack inserts the snack and publishes a snack.created event. The
// model is returned with its assigned ID.
func (s *SnackService) CreateSnack(snack *models.Snack) (*models.Snack, error) {
	if err := s.snackRepo.Create(snack); err != nil {
		return nil, err
	}
	s.publish("snack.created", snack)
	return snack, nil
}

// UpdateSnack replaces all fields of the snack identified by
// (snack.ID, snack.UserID). Returns (nil, nil) when no owned row matched;
// an ownership mismatch is indistinguishable from a missing row.
func (s *SnackService) UpdateSnack(snack *models.Snack) (*models.Snack, error) {
	updated, err := s.snackRepo.Update(snack)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, nil
	}
	s.publish("snack.updated", snack)
	return snack, nil
}

// DeleteSnack removes the snack identified by (id, userID) and reports
// whether a row was removed.
func (s *SnackService) DeleteSnack(id, userID uint) (bool, error) {
	deleted, err := s.snackRepo.Delete(id, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish("snack.deleted", &models.Snack{ID: id, UserID: userID})
	}
	return deleted, nil
}

// Summary computes the dietary summary for the user.
func (s *SnackService) Summary(userID uint) (*models.Summary, error) {
	return s.snackRepo.Summary(userID)
}

// publish sends a lifecycle event when a broker is configured. Publishing
// failures are logged, never surfaced: the write already succeeded.
func (s *SnackService) publish(event string, snack *models.Snack) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"snack_id": snack.ID,
		"user_id":  snack.UserID,
	}
	if err := s.mqClient.PublishSnackEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for snack %d: %v", event, snack.ID, err)
	}
}
