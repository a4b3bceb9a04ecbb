package formconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RepositoryInterface is the singleton-document store contract.
type RepositoryInterface interface {
	Get(ctx context.Context) (document string, found bool, err error)
	Save(ctx context.Context, document string) error
}

// Service owns the form configuration: defaults, merge on read,
// validation on write.
type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Get returns the persisted config merged over defaults. The stored
// JSON is unmarshalled onto a pre-filled default struct, so persisted
// top-level keys win and anything missing keeps its safe fallback.
func (s *Service) Get(ctx context.Context) (*FormConfig, error) {
	cfg := Default()

	document, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return cfg, nil
	}

	if err := json.Unmarshal([]byte(document), cfg); err != nil {
		return nil, fmt.Errorf("corrupt form config document: %w", err)
	}

	// Unmarshalling merges field keys into the default map; drop
	// anything outside the closed field set and restore defaults for
	// fields a stale document lost entirely.
	defaults := Default()
	for name := range cfg.Fields {
		if !knownField(name) {
			delete(cfg.Fields, name)
		}
	}
	for _, name := range FieldNames {
		if _, ok := cfg.Fields[name]; !ok {
			cfg.Fields[name] = defaults.Fields[name]
		}
	}

	if cfg.Portfolio == nil {
		cfg.Portfolio = []ProjectLogo{}
	}
	return cfg, nil
}

// Save validates and persists the complete document, replacing any
// prior value. Callers must always submit the full config object.
func (s *Service) Save(ctx context.Context, cfg *FormConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, string(raw))
}

// Validate rejects configs that would break the public form.
func Validate(cfg *FormConfig) error {
	for name, fc := range cfg.Fields {
		if !knownField(name) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if fc.IsVisible && strings.TrimSpace(fc.Label) == "" {
			return fmt.Errorf("%w: %s", ErrMissingLabel, name)
		}
	}

	copyStrings := map[string]string{
		"form_title":       cfg.FormTitle,
		"form_subtitle":    cfg.FormSubtitle,
		"cta_text":         cfg.CtaText,
		"success_title":    cfg.SuccessTitle,
		"success_subtitle": cfg.SuccessSubtitle,
		"success_cta_text": cfg.SuccessCtaText,
	}
	for key, value := range copyStrings {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingCopy, key)
		}
	}

	if cfg.RedirectAfterSuccess && strings.TrimSpace(cfg.SuccessURL) == "" {
		return ErrMissingSuccessURL
	}
	return nil
}
