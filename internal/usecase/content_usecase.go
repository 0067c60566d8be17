package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContentNotFound     = errors.New("content not found")
	ErrInvalidContentID    = errors.New("invalid content id")
	ErrInvalidContentInput = errors.New("invalid content input")
	ErrContentSlugTaken    = errors.New("content slug already exists")
)

// ProjectInput carries the editable portfolio project fields.

type ProjectInput struct {
	Title                   string
	Slug                    string
	TitleTranslations       entities.Translations
	Description             string
	DescriptionTranslations entities.Translations
	CoverImagePath          string
	Tags                    []string
	Published               bool
}

// PostInput carries the editable blog post fields.

type PostInput struct {
	Title             string
	Slug              string
	TitleTranslations entities.Translations
	Body              string
	BodyTranslations  entities.Translations
	CoverImagePath    string
	Published         bool
}

// IContentUseCase exposes project and post management plus the public reads.
//
// Reordering follows the optimistic-reconcile contract: display orders are
// written per item and the first failure is returned as-is so the caller
// discards its local state and re-fetches the authoritative list.

type IContentUseCase interface {
	CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (entities.Project, error)
	ListProjects(ctx context.Context, onlyPublished bool) ([]entities.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ReorderProjects(ctx context.Context, orderedIDs []string) error

	CreatePost(ctx context.Context, in PostInput) (entities.Post, error)
	GetPost(ctx context.Context, id string) (entities.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (entities.Post, error)
	ListPosts(ctx context.Context, onlyPublished bool) ([]entities.Post, error)
	UpdatePost(ctx context.Context, id string, in PostInput) (entities.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type ContentUseCase struct {
	projects interfaces.IProjectRepository
	posts    interfaces.IPostRepository
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(projects interfaces.IProjectRepository, posts interfaces.IPostRepository) *ContentUseCase {
	return &ContentUseCase{projects: projects, posts: posts}
}

func (u *ContentUseCase) CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return entities.Project{}, ErrInvalidContentInput
	}
	slug := resolveSlug(in.Slug, in.Title)
	if slug == "" {
		return entities.Project{}, ErrInvalidContentInput
	}
	if existing, err := u.projects.GetBySlug(ctx, slug); err != nil {
		return entities.Project{}, err
	} else if existing.ID != "" {
		return entities.Project{}, ErrContentSlugTaken
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:                      uuid.NewString(),
		Slug:                    slug,
		Title:                   strings.TrimSpace(in.Title),
		TitleTranslations:       in.TitleTranslations,
		Description:             in.Description,
		DescriptionTranslations: in.DescriptionTranslations,
		CoverImagePath:          in.CoverImagePath,
		Tags:                    in.Tags,
		Published:               in.Published,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	return u.projects.Create(ctx, p)
}

func (u *ContentUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidContentID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrContentNotFound
	}
	return p, nil
}

func (u *ContentUseCase) GetProjectBySlug(ctx context.Context, slug string) (entities.Project, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Project{}, ErrInvalidContentID
	}
	p, err := u.projects.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrContentNotFound
	}
	return p, nil
}

func (u *ContentUseCase) ListProjects(ctx context.Context, onlyPublished bool) ([]entities.Project, error) {
	return u.projects.List(ctx, onlyPublished)
}

func (u *ContentUseCase) UpdateProject(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	current, err := u.GetProject(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return entities.Project{}, ErrInvalidContentInput
	}

	current.Title = strings.TrimSpace(in.Title)
	current.TitleTranslations = in.TitleTranslations
	current.Description = in.Description
	current.DescriptionTranslations = in.DescriptionTranslations
	current.CoverImagePath = in.CoverImagePath
	current.Tags = in.Tags
	current.Published = in.Published
	current.UpdatedAt = time.Now().UTC()
	if slug := strings.TrimSpace(in.Slug); slug != "" && slug != current.Slug {
		if existing, err := u.projects.GetBySlug(ctx, slug); err != nil {
			return entities.Project{}, err
		} else if existing.ID != "" {
			return entities.Project{}, ErrContentSlugTaken
		}
		current.Slug = slug
	}
	return u.projects.Update(ctx, current)
}

func (u *ContentUseCase) DeleteProject(ctx context.Context, id string) error {
	p, err := u.GetProject(ctx, id)
	if err != nil {
		return err
	}
	return u.projects.Delete(ctx, p.ID)
}

func (u *ContentUseCase) ReorderProjects(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return ErrInvalidContentInput
	}
	for order, id := range orderedIDs {
		if err := u.projects.UpdateDisplayOrder(ctx, id, order); err != nil {
			return err
		}
	}
	return nil
}

func (u *ContentUseCase) CreatePost(ctx context.Context, in PostInput) (entities.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return entities.Post{}, ErrInvalidContentInput
	}
	slug := resolveSlug(in.Slug, in.Title)
	if slug == "" {
		return entities.Post{}, ErrInvalidContentInput
	}
	if existing, err := u.posts.GetBySlug(ctx, slug); err != nil {
		return entities.Post{}, err
	} else if existing.ID != "" {
		return entities.Post{}, ErrContentSlugTaken
	}

	now := time.Now().UTC()
	p := entities.Post{
		ID:                uuid.NewString(),
		Slug:              slug,
		Title:             strings.TrimSpace(in.Title),
		TitleTranslations: in.TitleTranslations,
		Body:              in.Body,
		BodyTranslations:  in.BodyTranslations,
		CoverImagePath:    in.CoverImagePath,
		Published:         in.Published,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.Published {
		p.PublishedAt = &now
	}
	return u.posts.Create(ctx, p)
}

func (u *ContentUseCase) GetPost(ctx context.Context, id string) (entities.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Post{}, ErrInvalidContentID
	}
	p, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return entities.Post{}, err
	}
	if p.ID == "" {
		return entities.Post{}, ErrContentNotFound
	}
	return p, nil
}

func (u *ContentUseCase) GetPostBySlug(ctx context.Context, slug string) (entities.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Post{}, ErrInvalidContentID
	}
	p, err := u.posts.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Post{}, err
	}
	if p.ID == "" {
		return entities.Post{}, ErrContentNotFound
	}
	return p, nil
}

func (u *ContentUseCase) ListPosts(ctx context.Context, onlyPublished bool) ([]entities.Post, error) {
	return u.posts.List(ctx, onlyPublished)
}

func (u *ContentUseCase) UpdatePost(ctx context.Context, id string, in PostInput) (entities.Post, error) {
	current, err := u.GetPost(ctx, id)
	if err != nil {
		return entities.Post{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return entities.Post{}, ErrInvalidContentInput
	}

	wasPublished := current.Published
	current.Title = strings.TrimSpace(in.Title)
	current.TitleTranslations = in.TitleTranslations
	current.Body = in.Body
	current.BodyTranslations = in.BodyTranslations
	current.CoverImagePath = in.CoverImagePath
	current.Published = in.Published
	current.UpdatedAt = time.Now().UTC()
	if in.Published && !wasPublished {
		now := time.Now().UTC()
		current.PublishedAt = &now
	}
	if slug := strings.TrimSpace(in.Slug); slug != "" && slug != current.Slug {
		if existing, err := u.posts.GetBySlug(ctx, slug); err != nil {
			return entities.Post{}, err
		} else if existing.ID != "" {
			return entities.Post{}, ErrContentSlugTaken
		}
		current.Slug = slug
	}
	return u.posts.Update(ctx, current)
}

func (u *ContentUseCase) DeletePost(ctx context.Context, id string) error {
	p, err := u.GetPost(ctx, id)
	if err != nil {
		return err
	}
	return u.posts.Delete(ctx, p.ID)
}

func resolveSlug(slug, title string) string {
	if s := strings.TrimSpace(slug); s != "" {
		return s
	}
	return Slugify(title)
}
