package formconfig

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// singletonID pins the one active config row; saves overwrite it.
const singletonID = 1

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&formConfigModel{})
}

type formConfigModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Document  string    `gorm:"column:document;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (formConfigModel) TableName() string { return "form_configs" }

// Get returns the persisted JSON document, or found=false when nothing
// has been saved yet.
func (r *Repository) Get(ctx context.Context) (string, bool, error) {
	var m formConfigModel
	tx := r.db.WithContext(ctx).Where("id = ?", singletonID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if tx.Error != nil {
		return "", false, tx.Error
	}
	return m.Document, true, nil
}

// Save replaces the whole document, last write wins.
func (r *Repository) Save(ctx context.Context, document string) error {
	m := formConfigModel{
		ID:        singletonID,
		Document:  document,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&m).Error
}
