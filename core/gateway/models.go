package gateway

// Records are owned by the remote API. The portal only holds re-fetchable copies.

type Reply struct {
	Content   string `json:"content"`
	Author    string `json:"author,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type Thread struct {
	ID        string  `json:"threadId"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Author    string  `json:"author,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Replies   []Reply `json:"replies,omitempty"`
}

type NewThread struct {
	Title   string `json:"title" form:"title" validate:"required,notblank,max=200"`
	Content string `json:"content" form:"content" validate:"required,notblank"`
}

type NewReply struct {
	Content string `json:"content" form:"content" validate:"required,notblank"`
}

type Post struct {
	ID        string `json:"postId"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

type Event struct {
	// Date is formatted YYYY-MM-DD.
	Date        string `json:"eventDate"`
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

var (
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	Statuses   = []string{StatusOpen, StatusInProgress, StatusResolved}
)

type Incident struct {
	ID          string `json:"incidentId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type NewIncident struct {
	Title       string `json:"title" form:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority" validate:"required,oneof=low medium high"`
	Status      string `json:"status" form:"status" validate:"required,oneof=open in_progress resolved"`
}

// Defaults fills the priority and status a new incident starts with.
func (n *NewIncident) Defaults() {
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	if n.Status == "" {
		n.Status = StatusOpen
	}
}

type StatusUpdate struct {
	Status string `json:"status" form:"status" validate:"required,oneof=open in_progress resolved"`
}

type Document struct {
	ID          string `json:"documentId"`
	Name        string `json:"name"`
	FileName    string `json:"fileName,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	UploadedAt  string `json:"uploadedAt,omitempty"`
}

type DocumentMetadata struct {
	Name        string `json:"name" form:"name" validate:"required,notblank"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description"`
}

type UploadRequest struct {
	FileName string           `json:"fileName"`
	FileType string           `json:"fileType"`
	Metadata DocumentMetadata `json:"metadata"`
}

type UploadTicket struct {
	UploadURL  string `json:"uploadUrl"`
	DocumentID string `json:"documentId"`
}

// DocumentRegistration flattens the metadata next to the identifiers.
type DocumentRegistration struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
	DocumentMetadata
}

type AccessRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ApartmentNumber string `json:"apartmentNumber"`
	UserType        string `json:"userType"`
	CompanyName     string `json:"companyName"`
	Reason          string `json:"reason"`
	Message         string `json:"message"`
}
