package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RepositoryInterface is the persistence contract of the lifecycle engine.
// Every mutating call carries the complete field set it touches, so the
// scalar change and its audit trail land atomically.
type RepositoryInterface interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, status *Status, search string, limit, offset int) ([]*Lead, int, error)
	UpdateStatus(ctx context.Context, id string, status Status, activity []Activity) error
	UpdateClassification(ctx context.Context, id string, classification Classification, activity []Activity) error
	UpdateNotes(ctx context.Context, id string, notes []Note, activity []Activity) error
	UpdateTags(ctx context.Context, id string, tags []string) error
	UpdateAssignee(ctx context.Context, id string, assignedTo string) error
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

// Notifier pushes lifecycle events to connected staff dashboards.
type Notifier interface {
	LeadCreated(l *Lead)
	LeadUpdated(l *Lead)
}

// Service is the lead lifecycle engine. All post-creation mutation of a
// lead goes through here; transitions are deliberately unconstrained
// (any status to any status) until a stricter business flow is decided.
type Service struct {
	repo     RepositoryInterface
	notifier Notifier
}

func NewService(repo RepositoryInterface, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create builds a new lead from a validated intake submission.
func (s *Service) Create(ctx context.Context, input CreateLeadInput) (*Lead, error) {
	now := time.Now()
	l := &Lead{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		CompanyName:    input.CompanyName,
		Email:          input.Email,
		Phone:          input.Phone,
		ProjectType:    input.ProjectType,
		Description:    input.Description,
		Budget:         input.Budget,
		Timeline:       input.Timeline,
		Source:         input.Source,
		Status:         StatusNew,
		Classification: ClassificationNone,
		Notes:          []Note{},
		Activity: []Activity{{
			ID:          uuid.New().String(),
			Description: "Project request submitted",
			Timestamp:   now,
		}},
		Tags:      []string{},
		Metadata:  input.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.LeadCreated(l)
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, status *Status, search string, limit, offset int) ([]*Lead, int, error) {
	return s.repo.List(ctx, status, search, limit, offset)
}

// SetStatus moves the lead to the new stage and prepends the matching
// activity entry. Both are written in one repository call.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Lead, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity := prependActivity(l.Activity, fmt.Sprintf("Lead status updated to %s", status))
	if err := s.repo.UpdateStatus(ctx, id, status, activity); err != nil {
		return nil, err
	}

	l.Status = status
	l.Activity = activity
	if s.notifier != nil {
		s.notifier.LeadUpdated(l)
	}
	return l, nil
}

// SetClassification sets the triage label, independent of status.
func (s *Service) SetClassification(ctx context.Context, id string, classification Classification) (*Lead, error) {
	if !classification.Valid() {
		return nil, ErrInvalidClassification
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity := prependActivity(l.Activity, fmt.Sprintf("Lead marked as %s", classification))
	if err := s.repo.UpdateClassification(ctx, id, classification, activity); err != nil {
		return nil, err
	}

	l.Classification = classification
	l.Activity = activity
	if s.notifier != nil {
		s.notifier.LeadUpdated(l)
	}
	return l, nil
}

// AddNote prepends an immutable note plus its companion activity entry.
// Whitespace-only content is rejected without touching the lead.
func (s *Service) AddNote(ctx context.Context, id, content, author string) (*Lead, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyNote
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        uuid.New().String(),
		Content:   content,
		Author:    author,
		CreatedAt: time.Now(),
	}
	notes := append([]Note{note}, l.Notes...)
	activity := prependActivity(l.Activity, fmt.Sprintf("Note added by %s", author))

	if err := s.repo.UpdateNotes(ctx, id, notes, activity); err != nil {
		return nil, err
	}

	l.Notes = notes
	l.Activity = activity
	if s.notifier != nil {
		s.notifier.LeadUpdated(l)
	}
	return l, nil
}

// ToggleTag flips one tag: add if absent, remove if present.
// Tag changes write no activity entry, matching the existing behavior.
func (s *Service) ToggleTag(ctx context.Context, id, tag string) (*Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var tags []string
	if l.HasTag(tag) {
		tags = make([]string, 0, len(l.Tags))
		for _, t := range l.Tags {
			if t != tag {
				tags = append(tags, t)
			}
		}
	} else {
		tags = append(append([]string{}, l.Tags...), tag)
	}

	if err := s.repo.UpdateTags(ctx, id, tags); err != nil {
		return nil, err
	}

	l.Tags = tags
	if s.notifier != nil {
		s.notifier.LeadUpdated(l)
	}
	return l, nil
}

// Assign hands the lead to a staff member.
func (s *Service) Assign(ctx context.Context, id, assignedTo string) (*Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAssignee(ctx, id, assignedTo); err != nil {
		return nil, err
	}

	l.AssignedTo = assignedTo
	if s.notifier != nil {
		s.notifier.LeadUpdated(l)
	}
	return l, nil
}

// GetStats returns the dashboard counters.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		New:    counts[StatusNew],
		Active: counts[StatusContacted] + counts[StatusInDiscussion],
		Won:    counts[StatusClosedWon],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func prependActivity(existing []Activity, description string) []Activity {
	entry := Activity{
		ID:          uuid.New().String(),
		Description: description,
		Timestamp:   time.Now(),
	}
	return append([]Activity{entry}, existing...)
}
