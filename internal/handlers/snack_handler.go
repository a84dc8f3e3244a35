package handlers

import (
	"fmt"
	"log"
	"time"

	"dailydiet/internal/middleware"
	"dailydiet/internal/models"
	"dailydiet/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SnackHandler handles HTTP requests for snacks. Every route runs behind
// the session middleware and additionally resolves the session cookie to
// a user before touching any snack.
type SnackHandler struct {
	snackService *services.SnackService
	userService  *services.UserService
	validate     *validator.Validate
}

// NewSnackHandler creates a new SnackHandler.
func NewSnackHandler(snackService *services.SnackService, userService *services.UserService) *SnackHandler {
	return &SnackHandler{
		snackService: snackService,
		userService:  userService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the snack routes with the Fiber app.
func (h *SnackHandler) RegisterRoutes(router fiber.Router) {
	snackRoutes := router.Group("/snacks", middleware.SessionRequired())
	snackRoutes.Get("/summary", h.HandleSummary)
	snackRoutes.Get("/", h.HandleListSnacks)
	snackRoutes.Get("/:snackId", h.HandleGetSnack)
	snackRoutes.Post("/", h.HandleCreateSnack)
	snackRoutes.Put("/:snackId", h.HandleUpdateSnack)
	snackRoutes.Delete("/:snackId", h.HandleDeleteSnack)
}

// SnackRequest represents the request body for creating or updating a
// snack. CreatedAt is caller-supplied as an RFC3339 string; OnDiet
// defaults to false when absent.
type SnackRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	OnDiet      bool   `json:"on_diet"`
}

// currentUser resolves the session cookie to a user. A nil user with a
// nil error means the session does not map to anyone; the caller must
// respond 403.
func (h *SnackHandler) currentUser(c *fiber.Ctx) (*models.User, error) {
	sessionID := c.Cookies(middleware.SessionCookie)
	return h.userService.ResolveSession(sessionID)
}

// forbiddenUnknownSession writes the 403 response for a session cookie
// that does not map to any user.
func forbiddenUnknownSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"status": "error",
		"data":   "Session ID does not exist",
	})
}

// parseSnackBody parses and validates the snack request body, returning a
// model with the fields applied. On failure it writes the 400 response
// itself and returns a nil model; callers must bail out on nil.
func (h *SnackHandler) parseSnackBody(c *fiber.Ctx) (*models.Snack, error) {
	var req SnackRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing snack request body: %v", err)
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   errorMessages,
		})
	}

	createdAt, err := time.Parse(time.RFC3339, req.CreatedAt)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   "created_at must be an RFC3339 datetime",
		})
	}

	return &models.Snack{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   createdAt,
		OnDiet:      req.OnDiet,
	}, nil
}

// HandleSummary returns the dietary summary for the resolved user:
// total, on_diet, not_on_diet and best_sequence (the longest consecutive
// run of on-diet snacks, zero when none exist).
func (h *SnackHandler) HandleSummary(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	summary, err := h.snackService.Summary(user.ID)
	if err != nil {
		log.Printf("Error computing summary for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not compute summary",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   summary,
	})
}

// HandleListSnacks returns all snacks owned by the resolved user.
func (h *SnackHandler) HandleListSnacks(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	snacks, err := h.snackService.ListSnacks(user.ID)
	if err != nil {
		log.Printf("Error listing snacks for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not retrieve snacks",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   snacks,
	})
}

// HandleGetSnack returns a single snack if it belongs to the resolved
// user, or a null payload with success status otherwise. Not-found and
// not-owned are deliberately indistinguishable.
func (h *SnackHandler) HandleGetSnack(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	snackID, err := c.ParamsInt("snackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   "snackId must be an integer",
		})
	}

	snack, err := h.snackService.GetSnack(uint(snackID), user.ID)
	if err != nil {
		log.Printf("Error getting snack %d: %v", snackID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not retrieve snack",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   snack,
	})
}

// HandleCreateSnack validates the body and inserts a snack owned by the
// resolved user, echoing the created row including its assigned ID.
func (h *SnackHandler) HandleCreateSnack(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	snack, bodyErr := h.parseSnackBody(c)
	if snack == nil {
		return bodyErr
	}
	snack.UserID = user.ID

	created, err := h.snackService.CreateSnack(snack)
	if err != nil {
		log.Printf("Error creating snack for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not create snack",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}

// HandleUpdateSnack replaces all fields of the snack identified by the
// path parameter, filtered by the resolved user. A cross-user or missing
// ID matches zero rows and yields a null payload.
func (h *SnackHandler) HandleUpdateSnack(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	snackID, err := c.ParamsInt("snackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   "snackId must be an integer",
		})
	}

	snack, bodyErr := h.parseSnackBody(c)
	if snack == nil {
		return bodyErr
	}
	snack.ID = uint(snackID)
	snack.UserID = user.ID

	updated, err := h.snackService.UpdateSnack(snack)
	if err != nil {
		log.Printf("Error updating snack %d: %v", snackID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not update snack",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   updated,
	})
}

// HandleDeleteSnack removes the snack identified by the path parameter,
// filtered by the resolved user. The deleted ID is echoed when a row was
// removed, null otherwise.
func (h *SnackHandler) HandleDeleteSnack(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not resolve session",
		})
	}
	if user == nil {
		return forbiddenUnknownSession(c)
	}

	snackID, err := c.ParamsInt("snackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"data":   "snackId must be an integer",
		})
	}

	deleted, err := h.snackService.DeleteSnack(uint(snackID), user.ID)
	if err != nil {
		log.Printf("Error deleting snack %d: %v", snackID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"data":   "Could not delete snack",
		})
	}

	var data interface{}
	if deleted {
		data = snackID
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}
