package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rathi-dental/dentalnest/internal/database"
	"github.com/rathi-dental/dentalnest/internal/media"
	"github.com/rathi-dental/dentalnest/internal/prefs"
)

// CoreService owns the database, the media store and the preference
// store, and implements the multi-step flows the screens perform: a
// photo is copied into the media store before its row is inserted,
// and a row is deleted before its file so a crash in between leaves
// an orphaned file rather than a row pointing at nothing.
type CoreService struct {
	config          *ServiceConfig
	databaseService database.DatabaseService
	mediaStore      *media.MediaStore
	preferences     *prefs.Store

	currentUser *database.User
}

// NewCoreService builds the service from configuration. A failing
// database initialization is logged, not fatal: the app continues in
// a degraded state where individual operations fail.
func NewCoreService(config *ServiceConfig) *CoreService {
	service := &CoreService{
		config:      config,
		mediaStore:  media.NewMediaStore(config.MediaRoot),
		preferences: prefs.NewStore(config.PreferencesPath),
	}

	if err := service.mediaStore.EnsureDirsExist(); err != nil {
		slog.Error("failed to create media directories", "error", err)
	}

	databaseService, err := database.NewDatabase(config.Database.Type, config.Database.ConnectionString)
	if err != nil {
		// The app continues in a degraded state: with a handle,
		// operations fail individually; without one, they report
		// ErrDatabaseUnavailable.
		slog.Error("failed to initialize database service", "error", err)
	} else {
		slog.Info("database initialized successfully", "type", config.Database.Type)
	}
	service.databaseService = databaseService

	service.restoreSession()
	return service
}

// ErrDatabaseUnavailable is returned by operations while the service
// runs without a database handle.
var ErrDatabaseUnavailable = errors.New("database is unavailable")

func (service *CoreService) db() (database.DatabaseService, error) {
	if service.databaseService == nil {
		return nil, ErrDatabaseUnavailable
	}
	return service.databaseService, nil
}

// Database exposes the raw façade; nil while degraded.
func (service *CoreService) Database() database.DatabaseService {
	return service.databaseService
}

func (service *CoreService) MediaStore() *media.MediaStore {
	return service.mediaStore
}

func (service *CoreService) Preferences() *prefs.Store {
	return service.preferences
}

func (service *CoreService) Clinic() ClinicInfo {
	return service.config.Clinic
}

func (service *CoreService) Close() error {
	if service.databaseService == nil {
		return nil
	}
	return service.databaseService.Close()
}

// Login looks up the credentials and persists the session on a match.
// No match returns nil, nil.
func (service *CoreService) Login(email, password string) (*database.User, error) {
	ds, err := service.db()
	if err != nil {
		return nil, err
	}
	user, err := ds.GetUserByEmailAndPassword(email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	service.currentUser = user
	if err := service.preferences.SetUserData(user); err != nil {
		slog.Error("failed to persist session", "error", err)
	}
	return user, nil
}

func (service *CoreService) Logout() error {
	service.currentUser = nil
	return service.preferences.RemoveItem(prefs.KeyUserData)
}

func (service *CoreService) CurrentUser() *database.User {
	return service.currentUser
}

func (service *CoreService) restoreSession() {
	var user database.User
	ok, err := service.preferences.UserData(&user)
	if err != nil {
		slog.Error("failed to restore session", "error", err)
		return
	}
	if ok {
		service.currentUser = &user
	}
}

func (service *CoreService) DarkTheme() bool {
	isDark, _ := service.preferences.ThemeMode()
	return isDark
}

func (service *CoreService) ToggleTheme() error {
	return service.preferences.SetThemeMode(!service.DarkTheme())
}

// AddTeamMemberWithPhoto validates the record, copies the photo into
// the Team directory under a generated name, then inserts the row.
func (service *CoreService) AddTeamMemberWithPhoto(member *database.TeamMember, sourcePath string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	if err := database.ValidateRecord(member); err != nil {
		return 0, err
	}

	if sourcePath != "" {
		fileName := media.NewFileName("team", ".jpg")
		savedPath, err := service.mediaStore.SaveContentItem(sourcePath, media.CategoryTeam, fileName)
		if err != nil {
			return 0, fmt.Errorf("failed to save team photo: %w", err)
		}
		member.ImagePath = savedPath
	}

	return ds.AddTeamMember(member)
}

// AddTestimonialWithPhoto works like AddTeamMemberWithPhoto; the photo
// is optional.
func (service *CoreService) AddTestimonialWithPhoto(testimonial *database.Testimonial, sourcePath string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	if err := database.ValidateRecord(testimonial); err != nil {
		return 0, err
	}

	if sourcePath != "" {
		fileName := media.NewFileName("testimonial", ".jpg")
		savedPath, err := service.mediaStore.SaveContentItem(sourcePath, media.CategoryTestimonials, fileName)
		if err != nil {
			return 0, fmt.Errorf("failed to save testimonial photo: %w", err)
		}
		testimonial.ImagePath = savedPath
	}

	return ds.AddTestimonial(testimonial)
}

// AddGalleryItem copies both images via the legacy flat helper, then
// inserts the row.
func (service *CoreService) AddGalleryItem(title, category, beforeSourcePath, afterSourcePath string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	item := &database.GalleryItem{Category: category, Title: title}
	if err := database.ValidateRecord(item); err != nil {
		return 0, err
	}

	beforePath, err := service.mediaStore.SaveToRoot(beforeSourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to save before image: %w", err)
	}
	afterPath, err := service.mediaStore.SaveToRoot(afterSourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to save after image: %w", err)
	}

	return ds.AddGalleryItem(title, category, beforePath, afterPath)
}

// AddFAQ validates and inserts a question/answer pair.
func (service *CoreService) AddFAQ(question, answer string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	if err := database.ValidateRecord(&database.FAQ{Question: question, Answer: answer}); err != nil {
		return 0, err
	}
	return ds.AddFAQ(question, answer)
}

func (service *CoreService) RemoveFAQ(id int64) error {
	ds, err := service.db()
	if err != nil {
		return err
	}
	return ds.DeleteFAQ(id)
}

// AddCareGuide validates and inserts a care guide.
func (service *CoreService) AddCareGuide(title, content string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	if err := database.ValidateRecord(&database.CareGuide{Title: title, Content: content}); err != nil {
		return 0, err
	}
	return ds.AddCareGuide(title, content)
}

func (service *CoreService) RemoveCareGuide(id int64) error {
	ds, err := service.db()
	if err != nil {
		return err
	}
	return ds.DeleteCareGuide(id)
}

// RemoveTeamMember deletes the row, then the photo. The file delete is
// best effort; a leftover file is harmless, a dangling row is not.
func (service *CoreService) RemoveTeamMember(id int64) error {
	ds, err := service.db()
	if err != nil {
		return err
	}
	imagePath := ""
	members, err := ds.GetTeamMembers()
	if err != nil {
		return err
	}
	for _, member := range members {
		if member.ID == id {
			imagePath = member.ImagePath
			break
		}
	}

	if err := ds.DeleteTeamMember(id); err != nil {
		return err
	}
	if imagePath != "" {
		if err := service.mediaStore.DeleteContentItem(imagePath); err != nil {
			slog.Error("failed to delete team photo", "path", imagePath, "error", err)
		}
	}
	return nil
}

func (service *CoreService) RemoveTestimonial(id int64) error {
	ds, err := service.db()
	if err != nil {
		return err
	}
	imagePath := ""
	testimonials, err := ds.GetTestimonials()
	if err != nil {
		return err
	}
	for _, testimonial := range testimonials {
		if testimonial.ID == id {
			imagePath = testimonial.ImagePath
			break
		}
	}

	if err := ds.DeleteTestimonial(id); err != nil {
		return err
	}
	if imagePath != "" {
		if err := service.mediaStore.DeleteContentItem(imagePath); err != nil {
			slog.Error("failed to delete testimonial photo", "path", imagePath, "error", err)
		}
	}
	return nil
}

func (service *CoreService) RemoveGalleryItem(id int64) error {
	ds, err := service.db()
	if err != nil {
		return err
	}
	var beforePath, afterPath string
	items, err := ds.GetGalleryItems()
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID == id {
			beforePath = item.BeforeImagePath
			afterPath = item.AfterImagePath
			break
		}
	}

	if err := ds.DeleteGalleryItem(id); err != nil {
		return err
	}
	for _, path := range []string{beforePath, afterPath} {
		if path == "" {
			continue
		}
		if err := service.mediaStore.DeleteContentItem(path); err != nil {
			slog.Error("failed to delete gallery image", "path", path, "error", err)
		}
	}
	return nil
}

// RequestCall records a patient lead. An empty treatment interest
// falls back to the store default.
func (service *CoreService) RequestCall(name, phone, treatmentInterest string) (int64, error) {
	ds, err := service.db()
	if err != nil {
		return 0, err
	}
	lead := &database.Lead{Name: name, Phone: phone}
	if err := database.ValidateRecord(lead); err != nil {
		return 0, err
	}
	return ds.AddLead(name, phone, treatmentInterest)
}
