package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	poststore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/post"
)

// попыток подобрать свободный slug с числовым суффиксом
const maxSlugAttempts = 5

// Service управление записями блога и анонсами событий
type Service struct {
	repo   PostRepo
	logger Logger
}

// NewService создает сервис записей блога
func NewService(repo PostRepo, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create создает запись
// Пустой slug генерируется из заголовка с транслитерацией кириллицы;
// при конфликте подбирается вариант с числовым суффиксом
func (s *Service) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}

	generated := false
	if strings.TrimSpace(post.Slug) == "" {
		post.Slug = slug.Make(post.Title)
		generated = true
	} else {
		post.Slug = slug.Make(post.Slug)
	}

	base := post.Slug
	for attempt := 1; ; attempt++ {
		created, err := s.repo.Create(ctx, post)
		if err == nil {
			s.logger.Info("posts: created post %d (%s)", created.ID, created.Slug)
			return created, nil
		}

		if !errors.Is(err, poststore.ErrSlugTaken) {
			s.logger.Error("posts: failed to create post: %v", err)
			return nil, fmt.Errorf("%w: failed to create post: %v", ErrInternal, err)
		}

		// Явно заданный slug не переименовываем
		if !generated || attempt >= maxSlugAttempts {
			return nil, ErrSlugTaken
		}
		post.Slug = fmt.Sprintf("%s-%d", base, attempt+1)
	}
}

// GetByID возвращает запись по ID (админская часть)
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, poststore.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("posts: failed to get post %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get post: %v", ErrInternal, err)
	}
	return post, nil
}

// GetBySlug возвращает запись по slug
// При publicOnly черновики и архив считаются несуществующими, а у
// найденной записи увеличивается счетчик просмотров
func (s *Service) GetBySlug(ctx context.Context, postSlug string, publicOnly bool) (*domain.Post, error) {
	post, err := s.repo.GetBySlug(ctx, postSlug)
	if err != nil {
		if errors.Is(err, poststore.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("posts: failed to get post %q: %v", postSlug, err)
		return nil, fmt.Errorf("%w: failed to get post: %v", ErrInternal, err)
	}

	if publicOnly {
		if !post.IsPublished() {
			return nil, ErrPostNotFound
		}
		// Счетчик просмотров не влияет на ответ, сбой только логируем
		if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
			s.logger.Warn("posts: failed to increment views of post %d: %v", post.ID, err)
		} else {
			post.ViewsCount++
		}
	}

	return post, nil
}

// List возвращает записи с фильтрацией по категории, статусу и тегу
func (s *Service) List(ctx context.Context, filter domain.PostsFilter) ([]*domain.Post, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *filter.Category)
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *filter.Status)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("posts: failed to list posts: %v", err)
		return nil, fmt.Errorf("%w: failed to list posts: %v", ErrInternal, err)
	}
	return list, nil
}

// Update обновляет запись целиком
func (s *Service) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrValidation)
	}
	if err := validatePost(post); err != nil {
		return nil, err
	}
	if strings.TrimSpace(post.Slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrValidation)
	}
	post.Slug = slug.Make(post.Slug)

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, poststore.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		if errors.Is(err, poststore.ErrSlugTaken) {
			return nil, ErrSlugTaken
		}
		s.logger.Error("posts: failed to update post %d: %v", post.ID, err)
		return nil, fmt.Errorf("%w: failed to update post: %v", ErrInternal, err)
	}

	s.logger.Info("posts: updated post %d (%s)", updated.ID, updated.Slug)
	return updated, nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, poststore.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("posts: failed to delete post %d: %v", id, err)
		return fmt.Errorf("%w: failed to delete post: %v", ErrInternal, err)
	}

	s.logger.Info("posts: deleted post %d", id)
	return nil
}

// validatePost проверяет данные записи перед записью в хранилище
func validatePost(post *domain.Post) error {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len([]rune(title)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrValidation, domain.MaxTitleLength)
	}
	if len(post.Slug) > domain.MaxSlugLength {
		return fmt.Errorf("%w: slug must not exceed %d characters", ErrValidation, domain.MaxSlugLength)
	}
	if strings.TrimSpace(post.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if !post.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, post.Category)
	}
	if !post.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, post.Status)
	}
	if post.Category == domain.CategoryEvent && post.EventDate == nil {
		return fmt.Errorf("%w: event_date is required for events", ErrValidation)
	}
	return nil
}
