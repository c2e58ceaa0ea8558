package workplace

// DocumentStatus represents whether a document is live or archived
type DocumentStatus string

const (
	DocumentStatusActive   DocumentStatus = "active"
	DocumentStatusArchived DocumentStatus = "archived"
)

// AccessLevel controls who may open a document
type AccessLevel string

const (
	AccessLevelPublic       AccessLevel = "public"
	AccessLevelInternal     AccessLevel = "internal"
	AccessLevelRestricted   AccessLevel = "restricted"
	AccessLevelConfidential AccessLevel = "confidential"
)

// Document represents a stored company file
type Document struct {
	ID           string
	Name         string
	Type         string
	Category     string
	Path         string
	Size         int64
	UploadedBy   string
	UploadDate   string
	LastModified string
	Status       DocumentStatus
	Tags         []string
	AccessLevel  AccessLevel
	AllowedUsers []string
}

// GetID returns the document id
func (d Document) GetID() string {
	return d.ID
}
