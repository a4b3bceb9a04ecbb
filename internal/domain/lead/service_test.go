package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory stand-in for the gorm repository.
type fakeRepo struct {
	leads map[string]*Lead
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{leads: make(map[string]*Lead)}
}

func (f *fakeRepo) Create(_ context.Context, l *Lead) error {
	cp := *l
	f.leads[l.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Lead, error) {
	l, ok := f.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, status *Status, search string, limit, offset int) ([]*Lead, int, error) {
	var out []*Lead
	for _, l := range f.leads {
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, l)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status Status, activity []Activity) error {
	l, ok := f.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	l.Status = status
	l.Activity = activity
	return nil
}

func (f *fakeRepo) UpdateClassification(_ context.Context, id string, classification Classification, activity []Activity) error {
	l, ok := f.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	l.Classification = classification
	l.Activity = activity
	return nil
}

func (f *fakeRepo) UpdateNotes(_ context.Context, id string, notes []Note, activity []Activity) error {
	l, ok := f.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	l.Notes = notes
	l.Activity = activity
	return nil
}

func (f *fakeRepo) UpdateTags(_ context.Context, id string, tags []string) error {
	l, ok := f.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	l.Tags = tags
	return nil
}

func (f *fakeRepo) UpdateAssignee(_ context.Context, id string, assignedTo string) error {
	l, ok := f.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	l.AssignedTo = assignedTo
	return nil
}

func (f *fakeRepo) CountByStatus(_ context.Context) (map[Status]int, error) {
	counts := make(map[Status]int)
	for _, l := range f.leads {
		counts[l.Status]++
	}
	return counts, nil
}

type recordingNotifier struct {
	created []string
	updated []string
}

func (n *recordingNotifier) LeadCreated(l *Lead) { n.created = append(n.created, l.ID) }
func (n *recordingNotifier) LeadUpdated(l *Lead) { n.updated = append(n.updated, l.ID) }

func newTestService() (*Service, *fakeRepo, *recordingNotifier) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	return NewService(repo, notifier), repo, notifier
}

func sampleInput() CreateLeadInput {
	return CreateLeadInput{
		FullName:    "Ada Lovelace",
		CompanyName: "Analytical Engines Ltd",
		Email:       "ada@example.com",
		Phone:       "+2348012345678",
		ProjectType: "Custom CRM",
		Description: "We need a CRM for our sales team",
		Budget:      "₦300k–₦1m",
		Timeline:    "ASAP",
		Source:      "Referral",
	}
}

func TestCreateSetsDefaults(t *testing.T) {
	svc, _, notifier := newTestService()

	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, StatusNew, l.Status)
	assert.Equal(t, ClassificationNone, l.Classification)
	assert.NotNil(t, l.Notes)
	assert.Empty(t, l.Notes)
	assert.NotNil(t, l.Tags)
	assert.Empty(t, l.Tags)

	require.Len(t, l.Activity, 1)
	assert.Equal(t, "Project request submitted", l.Activity[0].Description)

	assert.Equal(t, []string{l.ID}, notifier.created)
}

func TestSetStatusPrependsActivity(t *testing.T) {
	svc, _, notifier := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), l.ID, StatusContacted)
	require.NoError(t, err)

	assert.Equal(t, StatusContacted, updated.Status)
	require.Len(t, updated.Activity, 2)
	assert.Equal(t, "Lead status updated to Contacted", updated.Activity[0].Description)
	assert.Equal(t, "Project request submitted", updated.Activity[1].Description)
	assert.False(t, updated.Activity[0].Timestamp.Before(updated.Activity[1].Timestamp))

	assert.Equal(t, []string{l.ID}, notifier.updated)
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), l.ID, StatusClosedWon)
	require.NoError(t, err)

	// Closed deals can be reopened.
	updated, err := svc.SetStatus(context.Background(), l.ID, StatusNew)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, updated.Status)
}

func TestSetStatusRejectsUnknownStage(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), l.ID, Status("Archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusMissingLead(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), "nope", StatusContacted)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestSetClassification(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	updated, err := svc.SetClassification(context.Background(), l.ID, ClassificationQualified)
	require.NoError(t, err)

	assert.Equal(t, ClassificationQualified, updated.Classification)
	require.Len(t, updated.Activity, 2)
	assert.Equal(t, "Lead marked as Qualified", updated.Activity[0].Description)
}

func TestAddNoteRejectsWhitespace(t *testing.T) {
	svc, repo, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	_, err = svc.AddNote(context.Background(), l.ID, "   \t", "Admin")
	assert.ErrorIs(t, err, ErrEmptyNote)

	stored, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Notes)
	assert.Len(t, stored.Activity, 1)
}

func TestAddNoteNewestFirst(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	_, err = svc.AddNote(context.Background(), l.ID, "first call went well", "Tunde")
	require.NoError(t, err)
	updated, err := svc.AddNote(context.Background(), l.ID, "sent follow-up email", "Tunde")
	require.NoError(t, err)

	require.Len(t, updated.Notes, 2)
	assert.Equal(t, "sent follow-up email", updated.Notes[0].Content)
	assert.Equal(t, "first call went well", updated.Notes[1].Content)

	require.Len(t, updated.Activity, 3)
	assert.Equal(t, "Note added by Tunde", updated.Activity[0].Description)
}

func TestToggleTagRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	tagged, err := svc.ToggleTag(context.Background(), l.ID, "hot")
	require.NoError(t, err)
	assert.Equal(t, []string{"hot"}, tagged.Tags)

	untagged, err := svc.ToggleTag(context.Background(), l.ID, "hot")
	require.NoError(t, err)
	assert.Empty(t, untagged.Tags)

	// Tag flips leave the audit trail alone.
	assert.Len(t, untagged.Activity, 1)
}

func TestAssign(t *testing.T) {
	svc, _, _ := newTestService()
	l, err := svc.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	updated, err := svc.Assign(context.Background(), l.ID, "sales@lazer.com")
	require.NoError(t, err)
	assert.Equal(t, "sales@lazer.com", updated.AssignedTo)
}

func TestGetStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i, status := range []Status{StatusNew, StatusContacted, StatusInDiscussion, StatusClosedWon, StatusClosedLost} {
		l, err := svc.Create(ctx, sampleInput())
		require.NoError(t, err)
		if i > 0 {
			_, err = svc.SetStatus(ctx, l.ID, status)
			require.NoError(t, err)
		}
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.New)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Won)
}

func TestLifecycleAuditOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	l, err := svc.Create(ctx, sampleInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, l.ID, StatusContacted)
	require.NoError(t, err)
	updated, err := svc.SetClassification(ctx, l.ID, ClassificationUrgent)
	require.NoError(t, err)

	require.Len(t, updated.Activity, 3)
	assert.Equal(t, "Lead marked as Urgent", updated.Activity[0].Description)
	assert.Equal(t, "Lead status updated to Contacted", updated.Activity[1].Description)
	assert.Equal(t, "Project request submitted", updated.Activity[2].Description)
}
