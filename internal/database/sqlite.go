package database

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultDatabaseName is the fixed database file name used when the
// configuration does not override the connection string.
const DefaultDatabaseName = "RathiDental.db"

// Seed accounts inserted on first run.
var seedUsers = []User{
	{Email: "admin@rathidental.com", Password: "admin", Role: "admin"},
	{Email: "user", Password: "user", Role: "user"},
}

type SQLiteDatabase struct {
	db               *sql.DB
	connectionString string
}

func NewSQLiteDatabase(connectionString string) (DatabaseService, error) {
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}
	// Single connection: the engine serializes statements per
	// connection, and a pooled ":memory:" database would otherwise be
	// a different database per connection.
	db.SetMaxOpenConns(1)

	return &SQLiteDatabase{
		db:               db,
		connectionString: connectionString,
	}, nil
}

var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE,
		password TEXT,
		role TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT,
		title TEXT,
		before_image_path TEXT,
		after_image_path TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		role TEXT,
		qualification TEXT,
		image_path TEXT,
		display_order INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_name TEXT,
		treatment_type TEXT,
		content TEXT,
		image_path TEXT,
		rating INTEGER DEFAULT 5
	)`,
	`CREATE TABLE IF NOT EXISTS faqs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT,
		answer TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS care_guides (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		content TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		phone TEXT,
		treatment_interest TEXT DEFAULT 'General',
		status TEXT DEFAULT 'pending',
		created_at TEXT
	)`,
}

// CreateDatabase creates any missing tables and seeds the default
// users. Table creation order is irrelevant (no enforced foreign
// keys); seeding runs after the users table exists.
func (s *SQLiteDatabase) CreateDatabase() (*sql.DB, error) {
	for _, stmt := range createTableStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return nil, err
		}
	}

	if err := s.seedDefaultUsers(); err != nil {
		return nil, err
	}

	return s.db, nil
}

func (s *SQLiteDatabase) seedDefaultUsers() error {
	for _, user := range seedUsers {
		row := s.db.QueryRow("SELECT id FROM users WHERE email = ?", user.Email)
		var id int64
		err := row.Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		_, err = s.db.Exec("INSERT INTO users (email, password, role) VALUES (?, ?, ?)",
			user.Email, user.Password, user.Role)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteDatabase) DoesDatabaseExist() bool {
	// In SQLite, the database file is created when you connect to it.
	// So we can assume it exists if we can successfully ping the database.
	err := s.db.Ping()
	return err == nil
}

func (s *SQLiteDatabase) GetUserByEmailAndPassword(email, password string) (*User, error) {
	row := s.db.QueryRow(
		"SELECT id, email, password, role FROM users WHERE email = ? AND password = ?",
		email, password)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLiteDatabase) AddGalleryItem(title, category, beforeImagePath, afterImagePath string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO gallery_items (title, category, before_image_path, after_image_path) VALUES (?, ?, ?, ?)",
		title, category, beforeImagePath, afterImagePath)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetGalleryItems() ([]*GalleryItem, error) {
	rows, err := s.db.Query(
		"SELECT id, category, title, before_image_path, after_image_path FROM gallery_items ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []*GalleryItem
	for rows.Next() {
		var item GalleryItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Title, &item.BeforeImagePath, &item.AfterImagePath); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (s *SQLiteDatabase) DeleteGalleryItem(id int64) error {
	_, err := s.db.Exec("DELETE FROM gallery_items WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) AddTeamMember(member *TeamMember) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO team_members (name, role, qualification, image_path, display_order) VALUES (?, ?, ?, ?, ?)",
		member.Name, member.Role, member.Qualification, nullableString(member.ImagePath), member.DisplayOrder)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetTeamMembers() ([]*TeamMember, error) {
	rows, err := s.db.Query(
		"SELECT id, name, role, qualification, image_path, display_order FROM team_members ORDER BY display_order ASC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var members []*TeamMember
	for rows.Next() {
		var member TeamMember
		var imagePath sql.NullString
		if err := rows.Scan(&member.ID, &member.Name, &member.Role, &member.Qualification, &imagePath, &member.DisplayOrder); err != nil {
			return nil, err
		}
		member.ImagePath = imagePath.String
		members = append(members, &member)
	}
	return members, rows.Err()
}

func (s *SQLiteDatabase) DeleteTeamMember(id int64) error {
	_, err := s.db.Exec("DELETE FROM team_members WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) AddTestimonial(testimonial *Testimonial) (int64, error) {
	rating := testimonial.Rating
	if rating == 0 {
		rating = 5
	}
	result, err := s.db.Exec(
		"INSERT INTO testimonials (patient_name, treatment_type, content, image_path, rating) VALUES (?, ?, ?, ?, ?)",
		testimonial.PatientName, testimonial.TreatmentType, testimonial.Content, nullableString(testimonial.ImagePath), rating)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetTestimonials() ([]*Testimonial, error) {
	rows, err := s.db.Query(
		"SELECT id, patient_name, treatment_type, content, image_path, rating FROM testimonials ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var testimonials []*Testimonial
	for rows.Next() {
		var testimonial Testimonial
		var imagePath sql.NullString
		if err := rows.Scan(&testimonial.ID, &testimonial.PatientName, &testimonial.TreatmentType, &testimonial.Content, &imagePath, &testimonial.Rating); err != nil {
			return nil, err
		}
		testimonial.ImagePath = imagePath.String
		testimonials = append(testimonials, &testimonial)
	}
	return testimonials, rows.Err()
}

func (s *SQLiteDatabase) DeleteTestimonial(id int64) error {
	_, err := s.db.Exec("DELETE FROM testimonials WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) AddFAQ(question, answer string) (int64, error) {
	result, err := s.db.Exec("INSERT INTO faqs (question, answer) VALUES (?, ?)", question, answer)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetFAQs() ([]*FAQ, error) {
	rows, err := s.db.Query("SELECT id, question, answer FROM faqs ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var faqs []*FAQ
	for rows.Next() {
		var faq FAQ
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, &faq)
	}
	return faqs, rows.Err()
}

func (s *SQLiteDatabase) DeleteFAQ(id int64) error {
	_, err := s.db.Exec("DELETE FROM faqs WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) AddCareGuide(title, content string) (int64, error) {
	result, err := s.db.Exec("INSERT INTO care_guides (title, content) VALUES (?, ?)", title, content)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetCareGuides() ([]*CareGuide, error) {
	rows, err := s.db.Query("SELECT id, title, content FROM care_guides ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var guides []*CareGuide
	for rows.Next() {
		var guide CareGuide
		if err := rows.Scan(&guide.ID, &guide.Title, &guide.Content); err != nil {
			return nil, err
		}
		guides = append(guides, &guide)
	}
	return guides, rows.Err()
}

func (s *SQLiteDatabase) DeleteCareGuide(id int64) error {
	_, err := s.db.Exec("DELETE FROM care_guides WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) AddLead(name, phone, treatmentInterest string) (int64, error) {
	if treatmentInterest == "" {
		treatmentInterest = DefaultTreatmentInterest
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"INSERT INTO leads (name, phone, treatment_interest, status, created_at) VALUES (?, ?, ?, ?, ?)",
		name, phone, treatmentInterest, LeadStatusPending, createdAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteDatabase) GetLeads() ([]*Lead, error) {
	// id breaks ties between leads created within the same second.
	rows, err := s.db.Query(
		"SELECT id, name, phone, treatment_interest, status, created_at FROM leads ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var leads []*Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Phone, &lead.TreatmentInterest, &lead.Status, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}
	return leads, rows.Err()
}

var ErrInvalidLeadStatus = errors.New("lead status must be 'pending' or 'contacted'")

func (s *SQLiteDatabase) UpdateLeadStatus(id int64, status string) error {
	if status != LeadStatusPending && status != LeadStatusContacted {
		return ErrInvalidLeadStatus
	}
	_, err := s.db.Exec("UPDATE leads SET status = ? WHERE id = ?", status, id)
	return err
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
