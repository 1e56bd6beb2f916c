package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	poststore "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/post"
)

type fakeRepo struct {
	nextID  int64
	bySlug  map[string]*domain.Post
	views   map[int64]int
	viewErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bySlug: make(map[string]*domain.Post),
		views:  make(map[int64]int),
	}
}

func (f *fakeRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	if _, ok := f.bySlug[post.Slug]; ok {
		return nil, poststore.ErrSlugTaken
	}
	f.nextID++
	stored := *post
	stored.ID = f.nextID
	f.bySlug[stored.Slug] = &stored

	created := stored
	return &created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	for _, p := range f.bySlug {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, poststore.ErrPostNotFound
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*domain.Post, error) {
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, poststore.ErrPostNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.PostsFilter) ([]*domain.Post, error) {
	result := make([]*domain.Post, 0)
	for _, p := range f.bySlug {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, post *domain.Post) (*domain.Post, error) {
	for s, p := range f.bySlug {
		if p.ID == post.ID {
			if s != post.Slug {
				if _, ok := f.bySlug[post.Slug]; ok {
					return nil, poststore.ErrSlugTaken
				}
				delete(f.bySlug, s)
			}
			stored := *post
			f.bySlug[post.Slug] = &stored

			updated := stored
			return &updated, nil
		}
	}
	return nil, poststore.ErrPostNotFound
}

func (f *fakeRepo) IncrementViews(_ context.Context, id int64) error {
	if f.viewErr != nil {
		return f.viewErr
	}
	f.views[id]++
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for s, p := range f.bySlug {
		if p.ID == id {
			delete(f.bySlug, s)
			return nil
		}
	}
	return poststore.ErrPostNotFound
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func draftPost() *domain.Post {
	return &domain.Post{
		Title:      "Новости клуба",
		Content:    "Открыта запись на осенний турнир.",
		Category:   domain.CategoryPost,
		Status:     domain.PostStatusDraft,
		AuthorName: "Администратор",
	}
}

func TestCreate_GeneratesSlugFromTitle(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), draftPost())

	require.NoError(t, err)
	assert.Equal(t, "novosti-kluba", created.Slug)
	assert.NotZero(t, created.ID)
}

func TestCreate_GeneratedSlugConflictGetsSuffix(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	first, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)
	require.Equal(t, "novosti-kluba", first.Slug)

	second, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)
	assert.Equal(t, "novosti-kluba-2", second.Slug)
}

func TestCreate_ExplicitSlugConflictRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)

	post := draftPost()
	post.Slug = "novosti-kluba"
	_, err = svc.Create(context.Background(), post)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreate_ExplicitSlugNormalized(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	post := draftPost()
	post.Slug = "Осенний Турнир 2026"
	created, err := svc.Create(context.Background(), post)

	require.NoError(t, err)
	assert.Equal(t, "osennii-turnir-2026", created.Slug)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	post := draftPost()
	post.Title = "  "
	_, err := svc.Create(context.Background(), post)
	assert.ErrorIs(t, err, ErrValidation)

	post = draftPost()
	post.Content = ""
	_, err = svc.Create(context.Background(), post)
	assert.ErrorIs(t, err, ErrValidation)

	// анонс события без даты не имеет смысла
	post = draftPost()
	post.Category = domain.CategoryEvent
	_, err = svc.Create(context.Background(), post)
	assert.ErrorIs(t, err, ErrValidation)

	post = draftPost()
	post.Category = domain.CategoryEvent
	eventDate := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	post.EventDate = &eventDate
	_, err = svc.Create(context.Background(), post)
	assert.NoError(t, err)
}

func TestGetBySlug_PublicHidesDrafts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)

	_, err = svc.GetBySlug(context.Background(), created.Slug, true)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// администратору черновик виден
	got, err := svc.GetBySlug(context.Background(), created.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetBySlug_PublicIncrementsViews(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	post := draftPost()
	post.Status = domain.PostStatusPublished
	created, err := svc.Create(context.Background(), post)
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), created.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewsCount)
	assert.Equal(t, 1, repo.views[created.ID])

	// сбой счетчика не ломает чтение
	repo.viewErr = context.DeadlineExceeded
	got, err = svc.GetBySlug(context.Background(), created.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ViewsCount)
}

func TestUpdate_SlugConflictRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	first, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)

	other := draftPost()
	other.Slug = "raspisanie"
	second, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	second.Slug = first.Slug
	_, err = svc.Update(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), draftPost())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrPostNotFound)
}

func TestList_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	bad := domain.PostCategory("news")
	_, err := svc.List(context.Background(), domain.PostsFilter{Category: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}
