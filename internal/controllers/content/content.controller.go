package contentController

import (
	"context"
	"errors"
	"strings"

	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"
)

var ErrInvalidContent = errors.New("content validation failed")

type ContentController struct {
	contentRepo    repositories.ContentRepository
	storageService *services.StorageService
	log            logger.Logger
}

func New(contentRepo repositories.ContentRepository, storageService *services.StorageService) *ContentController {
	return &ContentController{
		contentRepo:    contentRepo,
		storageService: storageService,
		log:            logger.New("ContentController"),
	}
}

// CreateBanner stores the image first, then the record. A failed upload
// aborts the whole operation.
func (c *ContentController) CreateBanner(
	ctx context.Context,
	title, linkURL string,
	position int,
	imageName string,
	imageData []byte,
) (*Banner, error) {
	log := c.log.Function("CreateBanner")

	if strings.TrimSpace(title) == "" || len(imageData) == 0 {
		return nil, ErrInvalidContent
	}

	imageURL, err := c.storageService.Save(ctx, imageName, imageData)
	if err != nil {
		return nil, log.Err("failed to upload banner image", err, "title", title)
	}

	banner := &Banner{
		Title:    strings.TrimSpace(title),
		ImageURL: imageURL,
		LinkURL:  linkURL,
		Position: position,
		Active:   true,
	}

	if err := c.contentRepo.CreateBanner(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (c *ContentController) ListBanners(ctx context.Context, activeOnly bool) ([]*Banner, error) {
	return c.contentRepo.GetBanners(ctx, activeOnly)
}

func (c *ContentController) UpdateBanner(ctx context.Context, banner *Banner) error {
	if strings.TrimSpace(banner.Title) == "" || strings.TrimSpace(banner.ImageURL) == "" {
		return ErrInvalidContent
	}
	return c.contentRepo.UpdateBanner(ctx, banner)
}

func (c *ContentController) DeleteBanner(ctx context.Context, id string) error {
	return c.contentRepo.DeleteBanner(ctx, id)
}

func (c *ContentController) CreatePage(ctx context.Context, page *ContentPage) error {
	if strings.TrimSpace(page.Slug) == "" || strings.TrimSpace(page.Title) == "" {
		return ErrInvalidContent
	}
	page.Slug = strings.ToLower(strings.TrimSpace(page.Slug))
	return c.contentRepo.CreatePage(ctx, page)
}

// GetPage returns a page for public view; unpublished pages stay hidden.
func (c *ContentController) GetPage(ctx context.Context, slug string, includeUnpublished bool) (*ContentPage, error) {
	page, err := c.contentRepo.GetPageBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, err
	}
	if !page.Published && !includeUnpublished {
		return nil, repositories.ErrNotFound
	}
	return page, nil
}

func (c *ContentController) ListPages(ctx context.Context) ([]*ContentPage, error) {
	return c.contentRepo.GetPages(ctx)
}

func (c *ContentController) UpdatePage(ctx context.Context, page *ContentPage) error {
	if strings.TrimSpace(page.Title) == "" {
		return ErrInvalidContent
	}
	return c.contentRepo.UpdatePage(ctx, page)
}

func (c *ContentController) DeletePage(ctx context.Context, id string) error {
	return c.contentRepo.DeletePage(ctx, id)
}
