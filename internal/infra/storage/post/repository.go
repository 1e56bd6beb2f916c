package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/BMC-HallBookingService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var postColumns = []string{
	"id",
	"title",
	"slug",
	"excerpt",
	"content",
	"featured_image",
	"gallery_images",
	"category",
	"status",
	"author_name",
	"tags",
	"event_date",
	"event_location",
	"meta_description",
	"views_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями блога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Конфликт slug маппится в ErrSlugTaken
func (r *Repository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("posts").
		Columns(
			"title",
			"slug",
			"excerpt",
			"content",
			"featured_image",
			"gallery_images",
			"category",
			"status",
			"author_name",
			"tags",
			"event_date",
			"event_location",
			"meta_description",
		).
		Values(
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.FeaturedImage,
			pq.Array(post.GalleryImages),
			post.Category,
			post.Status,
			post.AuthorName,
			pq.Array(post.Tags),
			post.EventDate,
			post.EventLocation,
			post.MetaDescription,
		).
		Suffix("RETURNING id, views_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&post.ID,
		&post.ViewsCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return post, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetBySlug получает запись по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Post, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(postColumns...).
		From("posts").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan post: %v", ErrScanRow, err)
	}

	return post, nil
}

// List получает записи с фильтрацией по категории, статусу и тегу
// Сортировка: новые записи первыми
func (r *Repository) List(ctx context.Context, filter domain.PostsFilter) ([]*domain.Post, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(postColumns...).
		From("posts").
		OrderBy("created_at DESC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Tag != nil {
		selectBuilder = selectBuilder.Where("? = ANY(tags)", *filter.Tag)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return posts, nil
}

// Update обновляет запись целиком
func (r *Repository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("posts").
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("excerpt", post.Excerpt).
		Set("content", post.Content).
		Set("featured_image", post.FeaturedImage).
		Set("gallery_images", pq.Array(post.GalleryImages)).
		Set("category", post.Category).
		Set("status", post.Status).
		Set("author_name", post.AuthorName).
		Set("tags", pq.Array(post.Tags)).
		Set("event_date", post.EventDate).
		Set("event_location", post.EventLocation).
		Set("meta_description", post.MetaDescription).
		Where(squirrel.Eq{"id": post.ID}).
		Suffix("RETURNING views_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&post.ViewsCount, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return post, nil
}

// IncrementViews увеличивает счетчик просмотров на единицу
func (r *Repository) IncrementViews(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("posts").
		Set("views_count", squirrel.Expr("views_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementViews - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

// scanPost сканирует одну строку записей
func scanPost(scan func(dest ...interface{}) error) (*domain.Post, error) {
	var post domain.Post
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		pq.Array(&post.GalleryImages),
		&post.Category,
		&post.Status,
		&post.AuthorName,
		pq.Array(&post.Tags),
		&post.EventDate,
		&post.EventLocation,
		&post.MetaDescription,
		&post.ViewsCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return &post, nil
}
