package database

// User is a login principal seeded at first run.
type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email" validate:"required"`
	Password string `db:"password" validate:"required"`
	Role     string `db:"role" validate:"oneof=admin user"`
}

// GalleryItem is a before/after treatment photo pair.
// Image paths point into the media store; the database never
// re-validates them on read.
type GalleryItem struct {
	ID              int64  `db:"id"`
	Category        string `db:"category" validate:"oneof=adult child"`
	Title           string `db:"title" validate:"required"`
	BeforeImagePath string `db:"before_image_path"`
	AfterImagePath  string `db:"after_image_path"`
}

type TeamMember struct {
	ID            int64  `db:"id"`
	Name          string `db:"name" validate:"required"`
	Role          string `db:"role" validate:"required"`
	Qualification string `db:"qualification" validate:"required"`
	ImagePath     string `db:"image_path"`
	DisplayOrder  int    `db:"display_order"`
}

type Testimonial struct {
	ID            int64  `db:"id"`
	PatientName   string `db:"patient_name" validate:"required"`
	TreatmentType string `db:"treatment_type" validate:"required"`
	Content       string `db:"content" validate:"required"`
	ImagePath     string `db:"image_path"`
	Rating        int    `db:"rating" validate:"min=0,max=5"`
}

type FAQ struct {
	ID       int64  `db:"id"`
	Question string `db:"question" validate:"required"`
	Answer   string `db:"answer" validate:"required"`
}

type CareGuide struct {
	ID      int64  `db:"id"`
	Title   string `db:"title" validate:"required"`
	Content string `db:"content" validate:"required"`
}

// Lead statuses. The status field toggles between these two values,
// there is no terminal state.
const (
	LeadStatusPending   = "pending"
	LeadStatusContacted = "contacted"
)

// DefaultTreatmentInterest is applied when a lead is created without
// an explicit interest.
const DefaultTreatmentInterest = "General"

type Lead struct {
	ID                int64  `db:"id"`
	Name              string `db:"name" validate:"required"`
	Phone             string `db:"phone" validate:"required,min=10"`
	TreatmentInterest string `db:"treatment_interest"`
	Status            string `db:"status"`
	CreatedAt         string `db:"created_at"` // RFC3339 UTC
}
