package intake

import (
	"context"
	"strings"

	"github.com/Emalachi/lazersolution/internal/domain/formconfig"
	"github.com/Emalachi/lazersolution/internal/domain/lead"
)

// ConfigSource supplies the active form configuration.
type ConfigSource interface {
	Get(ctx context.Context) (*formconfig.FormConfig, error)
}

// LeadCreator is the slice of the lifecycle engine the renderer needs.
type LeadCreator interface {
	Create(ctx context.Context, input lead.CreateLeadInput) (*lead.Lead, error)
}

// fieldKinds maps each logical field to its input kind. Select fields
// are backed by the fixed catalogs; free text never leaks into them.
var fieldKinds = map[string]string{
	"fullName":    "text",
	"companyName": "text",
	"email":       "email",
	"phone":       "tel",
	"projectType": "select",
	"budget":      "select",
	"timeline":    "select",
	"description": "textarea",
	"source":      "text",
}

func fieldOptions(name string) []string {
	switch name {
	case "projectType":
		return lead.ProjectTypes
	case "budget":
		return lead.BudgetRanges
	case "timeline":
		return lead.Timelines
	default:
		return nil
	}
}

// Renderer builds the public form from the active config and turns a
// valid draft into a new lead.
type Renderer struct {
	config ConfigSource
	leads  LeadCreator
}

func NewRenderer(config ConfigSource, leads LeadCreator) *Renderer {
	return &Renderer{config: config, leads: leads}
}

// RenderForm produces the set of prompts a visitor must satisfy.
// Fields with is_visible=false are omitted from the rendered form.
func (r *Renderer) RenderForm(ctx context.Context) (*RenderedForm, error) {
	cfg, err := r.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	form := &RenderedForm{
		FormTitle:    cfg.FormTitle,
		FormSubtitle: cfg.FormSubtitle,
		CtaText:      cfg.CtaText,
		Fields:       make([]FieldView, 0, len(formconfig.FieldNames)),
		Portfolio:    cfg.Portfolio,
		Success:      successView(cfg),
		HeaderCode:   cfg.HeaderCode,
		FooterCode:   cfg.FooterCode,
	}

	for _, name := range formconfig.FieldNames {
		fc, ok := cfg.Fields[name]
		if !ok || !fc.IsVisible {
			continue
		}
		form.Fields = append(form.Fields, FieldView{
			Name:        name,
			Label:       fc.Label,
			Placeholder: fc.Placeholder,
			Kind:        fieldKinds[name],
			Required:    fc.IsRequired,
			Options:     fieldOptions(name),
		})
	}
	return form, nil
}

// Submit validates the draft against the active config and creates the
// lead. The returned map is non-nil when validation failed; in that
// case no lead was created and the caller keeps the draft for retry.
func (r *Renderer) Submit(ctx context.Context, draft map[string]string, metadata *lead.Metadata) (*lead.Lead, map[string]string, error) {
	cfg, err := r.config.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	values, violations := validateDraft(cfg, draft)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	created, err := r.leads.Create(ctx, lead.CreateLeadInput{
		FullName:    values["fullName"],
		CompanyName: values["companyName"],
		Email:       values["email"],
		Phone:       values["phone"],
		ProjectType: values["projectType"],
		Description: values["description"],
		Budget:      values["budget"],
		Timeline:    values["timeline"],
		Source:      values["source"],
		Metadata:    metadata,
	})
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// SuccessView returns the configured post-submit behavior.
func (r *Renderer) SuccessView(ctx context.Context) (SuccessView, error) {
	cfg, err := r.config.Get(ctx)
	if err != nil {
		return SuccessView{}, err
	}
	return successView(cfg), nil
}

// validateDraft applies the visibility and required rules:
//   - hidden fields are stripped and never required, whatever their
//     is_required flag says;
//   - visible required fields must be non-empty after trimming;
//   - enum fields only accept catalog values.
func validateDraft(cfg *formconfig.FormConfig, draft map[string]string) (map[string]string, map[string]string) {
	values := make(map[string]string, len(formconfig.FieldNames))
	violations := make(map[string]string)

	for _, name := range formconfig.FieldNames {
		fc, ok := cfg.Fields[name]
		if !ok || !fc.IsVisible {
			values[name] = ""
			continue
		}

		value := strings.TrimSpace(draft[name])
		if fc.IsRequired && value == "" {
			violations[name] = "required"
			continue
		}

		if value != "" {
			if catalog := fieldOptions(name); catalog != nil && !lead.InCatalog(catalog, value) {
				violations[name] = "not in catalog"
				continue
			}
		}
		values[name] = value
	}
	return values, violations
}

func successView(cfg *formconfig.FormConfig) SuccessView {
	return SuccessView{
		Title:            cfg.SuccessTitle,
		Subtitle:         cfg.SuccessSubtitle,
		CtaText:          cfg.SuccessCtaText,
		RedirectOnSubmit: cfg.RedirectAfterSuccess && strings.TrimSpace(cfg.SuccessURL) != "",
		RedirectURL:      cfg.SuccessURL,
	}
}
