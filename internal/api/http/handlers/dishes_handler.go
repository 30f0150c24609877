package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/service"
	"github.com/spec-kit/restaurant-service/internal/validation"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// thumbnailsField is the multipart field carrying dish images.
const thumbnailsField = "thumbnails"

// DishesHandler exposes the dish catalog endpoints.
type DishesHandler struct {
	dishService *service.DishService
}

// NewDishesHandler constructs handler.
func NewDishesHandler(dishService *service.DishService) *DishesHandler {
	return &DishesHandler{dishService: dishService}
}

// List handles GET /api/v1/dishes.
func (h *DishesHandler) List(c *fiber.Ctx) error {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	result, err := h.dishService.List(c.Context(), page, limit, c.Query("keyword"), c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetByID handles GET /api/v1/dishes/:id.
func (h *DishesHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseDishID(c)
	if err != nil {
		return err
	}

	detail, err := h.dishService.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dishResponse(detail))
}

// Create handles POST /api/v1/dishes (multipart form).
func (h *DishesHandler) Create(c *fiber.Ctx) error {
	payload, err := parseDishForm(c)
	if err != nil {
		return err
	}

	files, closeFiles, err := openUploads(c)
	if err != nil {
		return err
	}
	defer closeFiles()

	dish, err := h.dishService.Create(c.Context(), payload, files)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Create dish successfully",
		"dishId":  dish.ID,
	})
}

// Update handles PUT /api/v1/dishes/:id (multipart form).
func (h *DishesHandler) Update(c *fiber.Ctx) error {
	id, err := parseDishID(c)
	if err != nil {
		return err
	}

	payload, err := parseDishForm(c)
	if err != nil {
		return err
	}

	files, closeFiles, err := openUploads(c)
	if err != nil {
		return err
	}
	defer closeFiles()

	thumbnail := c.FormValue("thumbnail")
	message, err := h.dishService.Update(c.Context(), id, payload, thumbnail, files)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}

// Delete handles DELETE /api/v1/dishes/:id.
func (h *DishesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseDishID(c)
	if err != nil {
		return err
	}
	if err := h.dishService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Delete dish successfully"})
}

func parseDishID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequest("Invalid dish id!")
	}
	return id, nil
}

func parseDishForm(c *fiber.Ctx) (validation.DishPayload, error) {
	payload, fieldErr := validation.ValidateDish(validation.DishInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
	})
	if fieldErr != nil {
		return validation.DishPayload{}, apperrors.NewValidationError(fieldErr.Message)
	}
	return payload, nil
}

// openUploads opens every file in the thumbnails field. The returned closer
// must run after the service has consumed the readers.
func openUploads(c *fiber.Ctx) ([]service.UploadedImage, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, noop, nil
	}

	headers := form.File[thumbnailsField]
	files := make([]service.UploadedImage, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, noop, apperrors.NewInternalError(err)
		}
		opened = append(opened, file)
		files = append(files, service.UploadedImage{Filename: header.Filename, Content: file})
	}
	return files, closeAll, nil
}

func dishResponse(detail *service.DishDetail) dto.DishResponse {
	images := make([]dto.DishImageResponse, 0, len(detail.Images))
	for _, image := range detail.Images {
		images = append(images, dto.DishImageResponse{ImageURL: image.URL})
	}
	return dto.DishResponse{
		DishID:      detail.ID,
		Name:        detail.Name,
		Description: detail.Description,
		Price:       detail.Price,
		Thumbnail:   detail.Thumbnail,
		Category:    detail.Category,
		Images:      images,
	}
}
