package intake

import (
	"github.com/Emalachi/lazersolution/internal/domain/formconfig"
)

// SubmitRequest is the free-form draft a visitor posts. Keys are the
// logical field names; unknown keys are ignored.
type SubmitRequest struct {
	Fields           map[string]string `json:"fields" validate:"required"`
	ScreenResolution string            `json:"screen_resolution"`
}

// FieldView is one input prompt on the rendered form.
type FieldView struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Kind        string   `json:"kind"` // text, email, tel, textarea, select
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
}

// SuccessView tells the presentation layer what to do after a valid
// submission: show the inline success copy, or navigate away.
type SuccessView struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	CtaText          string `json:"cta_text"`
	RedirectOnSubmit bool   `json:"redirect_on_submit"`
	RedirectURL      string `json:"redirect_url,omitempty"`
}

// RenderedForm is the full public form derived from the active config.
// Hidden fields are absent entirely.
type RenderedForm struct {
	FormTitle    string                   `json:"form_title"`
	FormSubtitle string                   `json:"form_subtitle"`
	CtaText      string                   `json:"cta_text"`
	Fields       []FieldView              `json:"fields"`
	Portfolio    []formconfig.ProjectLogo `json:"portfolio"`
	Success      SuccessView              `json:"success"`
	HeaderCode   string                   `json:"header_code,omitempty"`
	FooterCode   string                   `json:"footer_code,omitempty"`
}

// SubmitResponse confirms a created lead and carries the success view.
type SubmitResponse struct {
	LeadID  string      `json:"lead_id"`
	Success SuccessView `json:"success"`
}
