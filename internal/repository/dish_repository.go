package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DishRepository handles persistence for menu dishes and their images.
// Mutations touching both tables run in a single transaction.
type DishRepository interface {
	List(ctx context.Context, filter DishFilter) ([]domain.Dish, error)
	Count(ctx context.Context, filter DishFilter) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	ImagesByDishID(ctx context.Context, id int64) ([]domain.DishImage, error)
	CreateWithImages(ctx context.Context, dish *domain.Dish, imageURLs []string) error
	Update(ctx context.Context, dish *domain.Dish) error
	UpdateWithImages(ctx context.Context, dish *domain.Dish, imageURLs []string) error
	Delete(ctx context.Context, id int64) error
}

// DishFilter defines query params for dish listing.
type DishFilter struct {
	Keyword  string
	Category string
	Limit    int
	Offset   int
}

type dishRepository struct {
	pool *pgxpool.Pool
}

// NewDishRepository instantiates the repository.
func NewDishRepository(pool *pgxpool.Pool) DishRepository {
	return &dishRepository{pool: pool}
}

func (r *dishRepository) List(ctx context.Context, filter DishFilter) ([]domain.Dish, error) {
	query := `
        SELECT dish_id, name, description, price, thumbnail, category, created_at, updated_at
        FROM dishes WHERE name LIKE $1`
	args := []any{"%" + filter.Keyword + "%"}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category=$%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY dish_id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Description,
			&dish.Price,
			&dish.Thumbnail,
			&dish.Category,
			&dish.CreatedAt,
			&dish.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, dish)
	}
	return result, rows.Err()
}

func (r *dishRepository) Count(ctx context.Context, filter DishFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM dishes WHERE name LIKE $1`
	args := []any{"%" + filter.Keyword + "%"}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category=$%d", len(args))
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	const query = `
        SELECT dish_id, name, description, price, thumbnail, category, created_at, updated_at
        FROM dishes WHERE dish_id=$1`

	var dish domain.Dish
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&dish.ID,
		&dish.Name,
		&dish.Description,
		&dish.Price,
		&dish.Thumbnail,
		&dish.Category,
		&dish.CreatedAt,
		&dish.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) ImagesByDishID(ctx context.Context, id int64) ([]domain.DishImage, error) {
	const query = `SELECT image_id, dish_id, image_url FROM dish_images WHERE dish_id=$1 ORDER BY image_id`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DishImage
	for rows.Next() {
		var image domain.DishImage
		if err := rows.Scan(&image.ID, &image.DishID, &image.URL); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}

func (r *dishRepository) CreateWithImages(ctx context.Context, dish *domain.Dish, imageURLs []string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `
            INSERT INTO dishes (name, description, price, thumbnail, category)
            VALUES ($1,$2,$3,$4,$5)
            RETURNING dish_id, created_at, updated_at`

		if err := tx.QueryRow(ctx, query,
			dish.Name,
			dish.Description,
			dish.Price,
			dish.Thumbnail,
			dish.Category,
		).Scan(&dish.ID, &dish.CreatedAt, &dish.UpdatedAt); err != nil {
			return err
		}
		return insertImages(ctx, tx, dish.ID, imageURLs)
	})
}

func (r *dishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	const query = `
        UPDATE dishes SET name=$1, description=$2, price=$3, thumbnail=$4, category=$5, updated_at=NOW()
        WHERE dish_id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.Thumbnail,
		dish.Category,
		dish.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dishRepository) UpdateWithImages(ctx context.Context, dish *domain.Dish, imageURLs []string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `
            UPDATE dishes SET name=$1, description=$2, price=$3, thumbnail=$4, category=$5, updated_at=NOW()
            WHERE dish_id=$6`

		cmd, err := tx.Exec(ctx, query,
			dish.Name,
			dish.Description,
			dish.Price,
			dish.Thumbnail,
			dish.Category,
			dish.ID,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		if _, err := tx.Exec(ctx, `DELETE FROM dish_images WHERE dish_id=$1`, dish.ID); err != nil {
			return err
		}
		return insertImages(ctx, tx, dish.ID, imageURLs)
	})
}

func (r *dishRepository) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM dish_images WHERE dish_id=$1`, id); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, `DELETE FROM dishes WHERE dish_id=$1`, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func insertImages(ctx context.Context, tx pgx.Tx, dishID int64, imageURLs []string) error {
	for _, url := range imageURLs {
		if _, err := tx.Exec(ctx, `INSERT INTO dish_images (dish_id, image_url) VALUES ($1,$2)`, dishID, url); err != nil {
			return err
		}
	}
	return nil
}
