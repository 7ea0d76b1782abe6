package repositories

import (
	"context"
	"errors"

	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/services"

	"gorm.io/gorm"
)

type ContentRepository interface {
	CreateBanner(ctx context.Context, banner *Banner) error
	GetBanners(ctx context.Context, activeOnly bool) ([]*Banner, error)
	UpdateBanner(ctx context.Context, banner *Banner) error
	DeleteBanner(ctx context.Context, id string) error

	CreatePage(ctx context.Context, page *ContentPage) error
	GetPageBySlug(ctx context.Context, slug string) (*ContentPage, error)
	GetPages(ctx context.Context) ([]*ContentPage, error)
	UpdatePage(ctx context.Context, page *ContentPage) error
	DeletePage(ctx context.Context, id string) error
}

type contentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewContent(db database.DB) ContentRepository {
	return &contentRepository{
		db:  db,
		log: logger.New("contentRepository"),
	}
}

func (r *contentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *contentRepository) CreateBanner(ctx context.Context, banner *Banner) error {
	log := r.log.Function("CreateBanner")

	if err := r.getDB(ctx).Create(banner).Error; err != nil {
		return log.Err("failed to create banner", err, "title", banner.Title)
	}

	return nil
}

func (r *contentRepository) GetBanners(ctx context.Context, activeOnly bool) ([]*Banner, error) {
	log := r.log.Function("GetBanners")

	query := r.getDB(ctx).Order("position ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var banners []*Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, log.Err("failed to get banners", err)
	}

	return banners, nil
}

func (r *contentRepository) UpdateBanner(ctx context.Context, banner *Banner) error {
	log := r.log.Function("UpdateBanner")

	if err := r.getDB(ctx).Save(banner).Error; err != nil {
		return log.Err("failed to update banner", err, "id", banner.ID)
	}

	return nil
}

func (r *contentRepository) DeleteBanner(ctx context.Context, id string) error {
	log := r.log.Function("DeleteBanner")

	if err := r.getDB(ctx).Delete(&Banner{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete banner", err, "id", id)
	}

	return nil
}

func (r *contentRepository) CreatePage(ctx context.Context, page *ContentPage) error {
	log := r.log.Function("CreatePage")

	if err := r.getDB(ctx).Create(page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return log.Error("page slug already exists", "slug", page.Slug)
		}
		return log.Err("failed to create content page", err, "slug", page.Slug)
	}

	return nil
}

func (r *contentRepository) GetPageBySlug(ctx context.Context, slug string) (*ContentPage, error) {
	log := r.log.Function("GetPageBySlug")

	var page ContentPage
	if err := r.getDB(ctx).First(&page, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get content page", err, "slug", slug)
	}

	return &page, nil
}

func (r *contentRepository) GetPages(ctx context.Context) ([]*ContentPage, error) {
	log := r.log.Function("GetPages")

	var pages []*ContentPage
	if err := r.getDB(ctx).Order("slug ASC").Find(&pages).Error; err != nil {
		return nil, log.Err("failed to get content pages", err)
	}

	return pages, nil
}

func (r *contentRepository) UpdatePage(ctx context.Context, page *ContentPage) error {
	log := r.log.Function("UpdatePage")

	if err := r.getDB(ctx).Save(page).Error; err != nil {
		return log.Err("failed to update content page", err, "id", page.ID)
	}

	return nil
}

func (r *contentRepository) DeletePage(ctx context.Context, id string) error {
	log := r.log.Function("DeletePage")

	if err := r.getDB(ctx).Delete(&ContentPage{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete content page", err, "id", id)
	}

	return nil
}
