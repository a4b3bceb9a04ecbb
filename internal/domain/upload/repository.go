package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Image{})
}

func (r *Repository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Image, error) {
	var img Image
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&img)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &img, nil
}

func (r *Repository) List(ctx context.Context) ([]*Image, error) {
	var images []*Image
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error
	return images, err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Image{}).Error
}
