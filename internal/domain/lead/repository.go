package lead

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&leadModel{})
}

// leadModel is the storage row. Notes, activity, tags and metadata are
// JSON documents in text columns, so a scalar field and its audit trail
// always travel in the same row update.
type leadModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	FullName       string    `gorm:"column:full_name"`
	CompanyName    *string   `gorm:"column:company_name"`
	Email          string    `gorm:"column:email"`
	Phone          string    `gorm:"column:phone"`
	ProjectType    string    `gorm:"column:project_type"`
	Description    string    `gorm:"column:description;type:text"`
	Budget         string    `gorm:"column:budget"`
	Timeline       string    `gorm:"column:timeline"`
	Source         *string   `gorm:"column:source"`
	Status         string    `gorm:"column:status;index"`
	Classification string    `gorm:"column:classification"`
	AssignedTo     *string   `gorm:"column:assigned_to"`
	Notes          string    `gorm:"column:notes;type:text"`
	Activity       string    `gorm:"column:activity;type:text"`
	Tags           string    `gorm:"column:tags;type:text"`
	Metadata       *string   `gorm:"column:metadata;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at;index"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) (*Lead, error) {
	l := &Lead{
		ID:             m.ID,
		FullName:       m.FullName,
		Email:          m.Email,
		Phone:          m.Phone,
		ProjectType:    m.ProjectType,
		Description:    m.Description,
		Budget:         m.Budget,
		Timeline:       m.Timeline,
		Status:         Status(m.Status),
		Classification: Classification(m.Classification),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.CompanyName != nil {
		l.CompanyName = *m.CompanyName
	}
	if m.Source != nil {
		l.Source = *m.Source
	}
	if m.AssignedTo != nil {
		l.AssignedTo = *m.AssignedTo
	}

	if err := json.Unmarshal([]byte(orEmptyArray(m.Notes)), &l.Notes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(orEmptyArray(m.Activity)), &l.Activity); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(orEmptyArray(m.Tags)), &l.Tags); err != nil {
		return nil, err
	}
	if m.Metadata != nil && *m.Metadata != "" {
		l.Metadata = &Metadata{}
		if err := json.Unmarshal([]byte(*m.Metadata), l.Metadata); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func toLeadModel(l *Lead) (leadModel, error) {
	notes, err := marshalJSON(l.Notes)
	if err != nil {
		return leadModel{}, err
	}
	activity, err := marshalJSON(l.Activity)
	if err != nil {
		return leadModel{}, err
	}
	tags, err := marshalJSON(l.Tags)
	if err != nil {
		return leadModel{}, err
	}

	m := leadModel{
		ID:             l.ID,
		FullName:       l.FullName,
		Email:          strings.TrimSpace(strings.ToLower(l.Email)),
		Phone:          l.Phone,
		ProjectType:    l.ProjectType,
		Description:    l.Description,
		Budget:         l.Budget,
		Timeline:       l.Timeline,
		Status:         string(l.Status),
		Classification: string(l.Classification),
		Notes:          notes,
		Activity:       activity,
		Tags:           tags,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
	m.CompanyName = nullable(l.CompanyName)
	m.Source = nullable(l.Source)
	m.AssignedTo = nullable(l.AssignedTo)

	if l.Metadata != nil {
		raw, err := json.Marshal(l.Metadata)
		if err != nil {
			return leadModel{}, err
		}
		s := string(raw)
		m.Metadata = &s
	}
	return m, nil
}

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	m, err := toLeadModel(l)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetByID returns (nil, nil) when the lead does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Lead, error) {
	var m leadModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(m)
}

// List returns leads newest-first with optional status filter and a
// case-insensitive search over name, company, email and project type.
func (r *Repository) List(ctx context.Context, status *Status, search string, limit, offset int) ([]*Lead, int, error) {
	q := r.db.WithContext(ctx).Model(&leadModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	if search = strings.TrimSpace(search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(project_type) LIKE ?",
			term, term, term, term,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []leadModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	leads := make([]*Lead, 0, len(models))
	for _, m := range models {
		l, err := toDomainLead(m)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	return leads, int(total), nil
}

// UpdateStatus writes the new status together with the full activity
// trail in a single row update.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status, activity []Activity) error {
	raw, err := marshalJSON(activity)
	if err != nil {
		return err
	}
	return r.update(ctx, id, map[string]interface{}{
		"status":   string(status),
		"activity": raw,
	})
}

// UpdateClassification mirrors UpdateStatus for the triage label.
func (r *Repository) UpdateClassification(ctx context.Context, id string, classification Classification, activity []Activity) error {
	raw, err := marshalJSON(activity)
	if err != nil {
		return err
	}
	return r.update(ctx, id, map[string]interface{}{
		"classification": string(classification),
		"activity":       raw,
	})
}

// UpdateNotes persists the notes list and its companion activity trail
// in one update.
func (r *Repository) UpdateNotes(ctx context.Context, id string, notes []Note, activity []Activity) error {
	rawNotes, err := marshalJSON(notes)
	if err != nil {
		return err
	}
	rawActivity, err := marshalJSON(activity)
	if err != nil {
		return err
	}
	return r.update(ctx, id, map[string]interface{}{
		"notes":    rawNotes,
		"activity": rawActivity,
	})
}

func (r *Repository) UpdateTags(ctx context.Context, id string, tags []string) error {
	raw, err := marshalJSON(tags)
	if err != nil {
		return err
	}
	return r.update(ctx, id, map[string]interface{}{"tags": raw})
}

func (r *Repository) UpdateAssignee(ctx context.Context, id string, assignedTo string) error {
	return r.update(ctx, id, map[string]interface{}{"assigned_to": nullable(assignedTo)})
}

func (r *Repository) update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).Model(&leadModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[Status(status)] = count
	}
	return counts, rows.Err()
}

func marshalJSON(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func orEmptyArray(s string) string {
	if strings.TrimSpace(s) == "" {
		return "[]"
	}
	return s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
