package visitor

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/Emalachi/lazersolution/internal/domain/lead"
)

// retainedLogs caps the visit history; older rows are trimmed on append.
const retainedLogs = 1000

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&visitorLogModel{})
}

type visitorLogModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Timestamp time.Time `gorm:"column:timestamp;index"`
	Path      string    `gorm:"column:path"`
	Metadata  string    `gorm:"column:metadata;type:text"`
	Duration  int       `gorm:"column:duration"`
}

func (visitorLogModel) TableName() string { return "visitor_logs" }

// Append stores one visit and trims history beyond the retention cap.
func (r *Repository) Append(ctx context.Context, entry *Log) error {
	raw, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}

	m := visitorLogModel{
		ID:        entry.ID,
		Timestamp: entry.Timestamp,
		Path:      entry.Path,
		Metadata:  string(raw),
		Duration:  entry.Duration,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}

	return r.trim(ctx)
}

// List returns visits newest-first, up to limit.
func (r *Repository) List(ctx context.Context, limit int) ([]*Log, error) {
	if limit <= 0 || limit > retainedLogs {
		limit = retainedLogs
	}

	var models []visitorLogModel
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*Log, 0, len(models))
	for _, m := range models {
		entry := &Log{
			ID:        m.ID,
			Timestamp: m.Timestamp,
			Path:      m.Path,
			Duration:  m.Duration,
		}
		var meta lead.Metadata
		if m.Metadata != "" {
			if err := json.Unmarshal([]byte(m.Metadata), &meta); err != nil {
				return nil, err
			}
		}
		entry.Metadata = meta
		logs = append(logs, entry)
	}
	return logs, nil
}

func (r *Repository) trim(ctx context.Context) error {
	sub := r.db.Model(&visitorLogModel{}).
		Select("id").
		Order("timestamp DESC").
		Limit(retainedLogs)
	return r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Delete(&visitorLogModel{}).Error
}
