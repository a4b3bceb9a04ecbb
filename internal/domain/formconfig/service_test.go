package formconfig

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo holds the singleton document in memory.
type memoryRepo struct {
	document string
	found    bool
}

func (m *memoryRepo) Get(_ context.Context) (string, bool, error) {
	return m.document, m.found, nil
}

func (m *memoryRepo) Save(_ context.Context, document string) error {
	m.document = document
	m.found = true
	return nil
}

func TestGetEmptyStoreReturnsDefaults(t *testing.T) {
	svc := NewService(&memoryRepo{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.FormTitle)
	assert.NotEmpty(t, cfg.SuccessTitle)
	require.Len(t, cfg.Fields, len(FieldNames))
	for name, fc := range cfg.Fields {
		assert.NotEmpty(t, fc.Label, "field %s", name)
	}
	assert.NotNil(t, cfg.Portfolio)
}

func TestGetMergesPersistedOverDefaults(t *testing.T) {
	doc, err := json.Marshal(map[string]any{
		"form_title": "Custom Title",
		"fields": map[string]any{
			"phone": map[string]any{
				"label":       "Mobile",
				"is_visible":  false,
				"is_required": false,
			},
		},
	})
	require.NoError(t, err)

	svc := NewService(&memoryRepo{document: string(doc), found: true})
	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Custom Title", cfg.FormTitle)
	// Untouched copy falls back to defaults.
	assert.Equal(t, Default().SuccessTitle, cfg.SuccessTitle)

	phone := cfg.Fields["phone"]
	assert.Equal(t, "Mobile", phone.Label)
	assert.False(t, phone.IsVisible)

	// Fields absent from the document keep their defaults.
	assert.Equal(t, Default().Fields["email"], cfg.Fields["email"])
	assert.Len(t, cfg.Fields, len(FieldNames))
}

func TestGetDropsUnknownFieldKeys(t *testing.T) {
	doc := `{"fields":{"favoriteColor":{"label":"Color","is_visible":true}}}`
	svc := NewService(&memoryRepo{document: doc, found: true})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	_, ok := cfg.Fields["favoriteColor"]
	assert.False(t, ok)
	assert.Len(t, cfg.Fields, len(FieldNames))
}

func TestSaveRejectsUnknownField(t *testing.T) {
	svc := NewService(&memoryRepo{})

	cfg := Default()
	cfg.Fields["favoriteColor"] = FieldConfig{Label: "Color", IsVisible: true}

	err := svc.Save(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSaveRejectsVisibleFieldWithoutLabel(t *testing.T) {
	svc := NewService(&memoryRepo{})

	cfg := Default()
	fc := cfg.Fields["email"]
	fc.Label = "   "
	cfg.Fields["email"] = fc

	err := svc.Save(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrMissingLabel)
}

func TestSaveRejectsEmptyCopy(t *testing.T) {
	svc := NewService(&memoryRepo{})

	cfg := Default()
	cfg.SuccessTitle = ""

	err := svc.Save(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrMissingCopy)
}

func TestSaveRejectsRedirectWithoutURL(t *testing.T) {
	svc := NewService(&memoryRepo{})

	cfg := Default()
	cfg.RedirectAfterSuccess = true
	cfg.SuccessURL = " "

	err := svc.Save(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrMissingSuccessURL)
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	cfg := Default()
	cfg.FormTitle = "Tell us about your project"
	cfg.RedirectAfterSuccess = true
	cfg.SuccessURL = "https://example.com/thanks"

	require.NoError(t, svc.Save(context.Background(), cfg))

	loaded, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tell us about your project", loaded.FormTitle)
	assert.True(t, loaded.RedirectAfterSuccess)
	assert.Equal(t, "https://example.com/thanks", loaded.SuccessURL)
}
