package formconfig

// Default returns the hardcoded fallback configuration. Every label,
// placeholder and page string is non-empty so the public form never
// renders blank copy, even against an empty store.
func Default() *FormConfig {
	return &FormConfig{
		FormTitle:    "Ready to build a system that actually works?",
		FormSubtitle: "Submit your project details today. Tell us what you need, and our team will review it, call you, and guide you from idea to execution.",
		CtaText:      "Initiate My Project Engine",

		SuccessTitle:    "Project Request Received!",
		SuccessSubtitle: "Thank you for reaching out to Lazer Solutions. Our sales team will review your requirements and contact you shortly.",
		SuccessCtaText:  "Submit Another Project",

		RedirectAfterSuccess: false,
		SuccessURL:           "",

		HeaderCode: "",
		FooterCode: "",

		Portfolio: []ProjectLogo{},

		Fields: map[string]FieldConfig{
			"fullName": {
				Label:       "Full Name",
				Placeholder: "e.g. Ada Lovelace",
				IsVisible:   true,
				IsRequired:  true,
			},
			"companyName": {
				Label:       "Company Name",
				Placeholder: "Your company (optional)",
				IsVisible:   true,
				IsRequired:  false,
			},
			"email": {
				Label:       "Email Address",
				Placeholder: "you@company.com",
				IsVisible:   true,
				IsRequired:  true,
			},
			"phone": {
				Label:       "Phone Number",
				Placeholder: "+234 800 000 0000",
				IsVisible:   true,
				IsRequired:  true,
			},
			"projectType": {
				Label:       "What do you want to build?",
				Placeholder: "Select a project type",
				IsVisible:   true,
				IsRequired:  true,
			},
			"budget": {
				Label:       "Budget Range",
				Placeholder: "Select a budget range",
				IsVisible:   true,
				IsRequired:  true,
			},
			"timeline": {
				Label:       "Timeline",
				Placeholder: "When do you need it?",
				IsVisible:   true,
				IsRequired:  true,
			},
			"description": {
				Label:       "Project Description",
				Placeholder: "Describe the problem you want solved...",
				IsVisible:   true,
				IsRequired:  true,
			},
			"source": {
				Label:       "How did you hear about us?",
				Placeholder: "Google, referral, social media...",
				IsVisible:   true,
				IsRequired:  false,
			},
		},
	}
}
