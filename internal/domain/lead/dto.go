package lead

// CreateLeadInput is what the form renderer hands to the lifecycle engine.
// Contact fields are already validated against the active form config.
type CreateLeadInput struct {
	FullName    string
	CompanyName string
	Email       string
	Phone       string
	ProjectType string
	Description string
	Budget      string
	Timeline    string
	Source      string
	Metadata    *Metadata
}

// UpdateStatusRequest moves a lead to a new pipeline stage.
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

// UpdateClassificationRequest sets the triage label.
type UpdateClassificationRequest struct {
	Classification Classification `json:"classification" validate:"required"`
}

// AddNoteRequest appends a staff note.
type AddNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// ToggleTagRequest flips one tag on the lead's tag set.
type ToggleTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

// AssignRequest assigns the lead to a staff member.
type AssignRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required"`
}

// ListResponse is a filtered page of leads.
type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// Stats are the dashboard summary counters.
// Active counts Contacted and In Discussion together.
type Stats struct {
	Total  int `json:"total"`
	New    int `json:"new"`
	Active int `json:"active"`
	Won    int `json:"won"`
}
