package service

import (
	"context"
	"errors"
	"io"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/assets"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/validation"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// categoryAll is the sentinel the clients send for "no category filter".
const categoryAll = "Tất cả"

// UploadedImage is one image file received with a dish mutation.
type UploadedImage struct {
	Filename string
	Content  io.Reader
}

// ListingCache caches catalog pages keyed by their query shape. Mutations
// drop every cached page through Invalidate. *cache.DishCache satisfies it.
type ListingCache interface {
	Key(page, limit int, keyword, category string) string
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	Invalidate(ctx context.Context)
}

// DishService implements the dish catalog operations: CRUD, image upload
// orchestration and listing-cache maintenance.
type DishService struct {
	dishes repository.DishRepository
	store  assets.Store
	cache  ListingCache
}

// NewDishService builds the service. cache may be nil.
func NewDishService(dishes repository.DishRepository, store assets.Store, dishCache ListingCache) *DishService {
	return &DishService{dishes: dishes, store: store, cache: dishCache}
}

// DishPage is one page of the dish catalog.
type DishPage struct {
	Dishes      []domain.Dish `json:"dishes"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// DishDetail is a dish with its image gallery.
type DishDetail struct {
	domain.Dish
	Images []domain.DishImage
}

// List returns one catalog page, served from cache when warm.
func (s *DishService) List(ctx context.Context, page, limit int, keyword, category string) (*DishPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if category == categoryAll {
		category = ""
	}

	var key string
	if s.cache != nil {
		key = s.cache.Key(page, limit, keyword, category)
		var cached DishPage
		if s.cache.Get(ctx, key, &cached) {
			return &cached, nil
		}
	}

	filter := repository.DishFilter{
		Keyword:  keyword,
		Category: category,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	total, err := s.dishes.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	list, err := s.dishes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	result := &DishPage{Dishes: list, TotalPages: totalPages, CurrentPage: page}
	if s.cache != nil {
		s.cache.Set(ctx, key, result)
	}
	return result, nil
}

// Get fetches one dish with its gallery.
func (s *DishService) Get(ctx context.Context, id int64) (*DishDetail, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Dish not found")
		}
		return nil, err
	}
	images, err := s.dishes.ImagesByDishID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DishDetail{Dish: *dish, Images: images}, nil
}

// Create uploads all images, takes the first URL as the thumbnail and writes
// dish plus gallery rows in one transaction. Uploaded assets are not
// compensated if the write fails; an orphaned remote image is harmless.
func (s *DishService) Create(ctx context.Context, payload validation.DishPayload, files []UploadedImage) (*domain.Dish, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequest("No files uploaded")
	}

	urls, err := s.uploadAll(ctx, files)
	if err != nil {
		return nil, err
	}

	dish := &domain.Dish{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Thumbnail:   urls[0],
		Category:    payload.Category,
	}
	if err := s.dishes.CreateWithImages(ctx, dish, urls); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return dish, nil
}

// Update outcome messages, verbatim what the clients display.
const (
	UpdateDishMessage          = "Update dish successfully"
	UpdateDishThumbnailMessage = "Update dish successfully with change thumbnail!"
)

// Update modifies a dish. Three shapes, mirroring the clients:
// no thumbnail and no files updates fields only; an explicit thumbnail URL
// swaps the primary image; new files replace the whole gallery. The returned
// message tells the caller whether the explicit-thumbnail shape ran.
func (s *DishService) Update(ctx context.Context, id int64, payload validation.DishPayload, thumbnail string, files []UploadedImage) (string, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("Dish not found")
		}
		return "", err
	}

	dish.Name = payload.Name
	dish.Description = payload.Description
	dish.Price = payload.Price
	dish.Category = payload.Category

	message := UpdateDishMessage
	switch {
	case thumbnail == "" && len(files) == 0:
		err = s.dishes.Update(ctx, dish)
	case thumbnail != "":
		dish.Thumbnail = thumbnail
		message = UpdateDishThumbnailMessage
		err = s.dishes.Update(ctx, dish)
	default:
		var urls []string
		urls, err = s.uploadAll(ctx, files)
		if err != nil {
			return "", err
		}
		dish.Thumbnail = urls[len(urls)-1]
		err = s.dishes.UpdateWithImages(ctx, dish, urls)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("Dish not found")
		}
		return "", err
	}

	s.invalidate(ctx)
	return message, nil
}

// Delete removes the dish and its gallery rows.
func (s *DishService) Delete(ctx context.Context, id int64) error {
	if err := s.dishes.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Dish not found")
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DishService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *DishService) uploadAll(ctx context.Context, files []UploadedImage) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.store.Upload(ctx, file.Filename, file.Content)
		if err != nil {
			return nil, apperrors.NewCollaboratorError("Error uploading image to Cloudinary", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
