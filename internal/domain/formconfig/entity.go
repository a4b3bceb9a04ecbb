package formconfig

// FieldConfig controls one logical field on the public intake form.
type FieldConfig struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	IsVisible   bool   `json:"is_visible"`
	IsRequired  bool   `json:"is_required"`
}

// ProjectLogo is one portfolio entry shown on the public page.
type ProjectLogo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// FieldNames is the closed set of configurable fields, in display order.
// Unknown keys are never persisted as new schema.
var FieldNames = []string{
	"fullName",
	"companyName",
	"email",
	"phone",
	"projectType",
	"budget",
	"timeline",
	"description",
	"source",
}

// FormConfig is the singleton document describing the public form and
// its success page. Exactly one is active; saves replace the whole
// document. HeaderCode and FooterCode are opaque snippets a frontend
// may choose to render; this service only stores them.
type FormConfig struct {
	FormTitle    string `json:"form_title"`
	FormSubtitle string `json:"form_subtitle"`
	CtaText      string `json:"cta_text"`

	SuccessTitle    string `json:"success_title"`
	SuccessSubtitle string `json:"success_subtitle"`
	SuccessCtaText  string `json:"success_cta_text"`

	RedirectAfterSuccess bool   `json:"redirect_after_success"`
	SuccessURL           string `json:"success_url"`

	HeaderCode string `json:"header_code"`
	FooterCode string `json:"footer_code"`

	Portfolio []ProjectLogo `json:"portfolio"`

	Fields map[string]FieldConfig `json:"fields"`
}

func knownField(name string) bool {
	for _, n := range FieldNames {
		if n == name {
			return true
		}
	}
	return false
}
