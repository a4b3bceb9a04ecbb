package lead

import "time"

// Status is the sales-pipeline stage of a lead.
type Status string

const (
	StatusNew          Status = "New"
	StatusContacted    Status = "Contacted"
	StatusInDiscussion Status = "In Discussion"
	StatusProposalSent Status = "Proposal Sent"
	StatusClosedWon    Status = "Closed-Won"
	StatusClosedLost   Status = "Closed-Lost"
)

var Statuses = []Status{
	StatusNew,
	StatusContacted,
	StatusInDiscussion,
	StatusProposalSent,
	StatusClosedWon,
	StatusClosedLost,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Classification is an orthogonal triage label, independent of Status.
type Classification string

const (
	ClassificationNone        Classification = "None"
	ClassificationQualified   Classification = "Qualified"
	ClassificationUnqualified Classification = "Unqualified"
	ClassificationJunk        Classification = "Junk"
	ClassificationFollowUp    Classification = "Follow Up"
	ClassificationUrgent      Classification = "Urgent"
)

var Classifications = []Classification{
	ClassificationNone,
	ClassificationQualified,
	ClassificationUnqualified,
	ClassificationJunk,
	ClassificationFollowUp,
	ClassificationUrgent,
}

func (c Classification) Valid() bool {
	for _, v := range Classifications {
		if c == v {
			return true
		}
	}
	return false
}

// ProjectTypes is the fixed catalog offered on the public form.
var ProjectTypes = []string{
	"Logistics Management",
	"Inventory Management",
	"E-commerce CRM",
	"Shipment & Tracking",
	"Trading & Marketplaces",
	"ERP for SMEs",
	"Custom CRM",
	"Warehouse Management (WMS)",
	"Payment-on-Delivery (POD)",
	"Order Management (OMS)",
	"Vendor & Supplier Portals",
	"Subscription & Membership",
	"Automation & Internal Tools",
	"Admin Dashboards",
	"Real Estate Lead Management",
	"Other",
}

var BudgetRanges = []string{
	"₦100k–₦300k",
	"₦300k–₦1m",
	"₦1m+",
}

var Timelines = []string{
	"ASAP",
	"1–3 months",
	"Flexible",
}

func InCatalog(catalog []string, v string) bool {
	for _, item := range catalog {
		if item == v {
			return true
		}
	}
	return false
}

// Note is an immutable staff comment attached to a lead.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity is one timestamped audit line. Newest entries sit at index 0.
type Activity struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Metadata is the client-environment snapshot captured at submission.
// Write-once: attached at creation, never edited.
type Metadata struct {
	IP               string `json:"ip"`
	UserAgent        string `json:"user_agent"`
	DeviceType       string `json:"device_type"`
	Browser          string `json:"browser"`
	OS               string `json:"os"`
	Referrer         string `json:"referrer"`
	ScreenResolution string `json:"screen_resolution"`
}

// Lead is one inbound project inquiry with its pipeline state.
type Lead struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	ProjectType string `json:"project_type"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Source      string `json:"source,omitempty"`

	Status         Status         `json:"status"`
	Classification Classification `json:"classification"`
	AssignedTo     string         `json:"assigned_to,omitempty"`

	Notes    []Note     `json:"notes"`
	Activity []Activity `json:"activity"`
	Tags     []string   `json:"tags"`
	Metadata *Metadata  `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTag reports whether the tag is currently set.
func (l *Lead) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
