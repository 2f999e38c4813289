package database

import "database/sql"

// DatabaseService is the data-access contract the presentation layer
// calls. Every operation is a single statement against the local
// database; not-found conditions are nil results or no-ops, never
// errors. List orderings are part of the contract.
type DatabaseService interface {
	// CreateDatabase ensures all tables exist and the default users
	// are seeded. Idempotent, safe to call on every application start.
	CreateDatabase() (*sql.DB, error)
	DoesDatabaseExist() bool
	Close() error

	// GetUserByEmailAndPassword returns nil (not an error) when no row
	// matches. Comparison is exact and case sensitive.
	GetUserByEmailAndPassword(email, password string) (*User, error)

	AddGalleryItem(title, category, beforeImagePath, afterImagePath string) (int64, error)
	GetGalleryItems() ([]*GalleryItem, error)
	DeleteGalleryItem(id int64) error

	AddTeamMember(member *TeamMember) (int64, error)
	// GetTeamMembers orders by display_order, equal orders newest first.
	GetTeamMembers() ([]*TeamMember, error)
	DeleteTeamMember(id int64) error

	AddTestimonial(testimonial *Testimonial) (int64, error)
	GetTestimonials() ([]*Testimonial, error)
	DeleteTestimonial(id int64) error

	AddFAQ(question, answer string) (int64, error)
	GetFAQs() ([]*FAQ, error)
	DeleteFAQ(id int64) error

	AddCareGuide(title, content string) (int64, error)
	GetCareGuides() ([]*CareGuide, error)
	DeleteCareGuide(id int64) error

	AddLead(name, phone, treatmentInterest string) (int64, error)
	GetLeads() ([]*Lead, error)
	// UpdateLeadStatus accepts only LeadStatusPending or
	// LeadStatusContacted.
	UpdateLeadStatus(id int64, status string) error
}
