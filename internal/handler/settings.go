package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bekabe-press/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// Letterhead defaults used until the settings row is first saved.
const (
	defaultCompanyName    = "Bekabe Printing Press"
	defaultCompanyAddress = "123 Main Street, Accra, Ghana"
	defaultCompanyPhone   = "+233 55 123 4567"
)

const maxLogoUploadBytes = 10 << 20

var filenameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SettingsStore defines the database methods needed by SettingsHandler.
// Satisfied by *database.Queries; narrow interface for testability.
type SettingsStore interface {
	GetCompanySettings(ctx context.Context) (database.CompanySettings, error)
	UpsertCompanySettings(ctx context.Context, arg database.UpsertCompanySettingsParams) error
}

// SettingsHandler handles the company settings page and logo upload.
type SettingsHandler struct {
	store     SettingsStore
	uploadDir string
}

// NewSettingsHandler creates a new SettingsHandler. uploadDir is where
// logo files are written; it is served under /static/uploads.
func NewSettingsHandler(store SettingsStore, uploadDir string) *SettingsHandler {
	return &SettingsHandler{store: store, uploadDir: uploadDir}
}

// RegisterRoutes registers the settings endpoints to the router.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.SettingsPage)
	r.Post("/settings", h.SaveSettings)
}

type settingsPageData struct {
	Settings database.CompanySettings
	Flash    string
}

// SettingsPage renders the current company settings, falling back to the
// letterhead defaults when nothing has been saved yet.
func (h *SettingsHandler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetCompanySettings(r.Context())
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("ERROR: get company settings: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		settings = defaultCompanySettings()
	}
	render(w, "settings.html", settingsPageData{Settings: settings, Flash: popFlash(w, r)})
}

// SaveSettings stores the company details and, when present, the uploaded
// logo file.
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoUploadBytes); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/settings", http.StatusFound)
		return
	}

	current, err := h.store.GetCompanySettings(r.Context())
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("ERROR: get company settings: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logo := current.Logo
	file, header, err := r.FormFile("logo")
	if err == nil {
		defer file.Close()
		name := sanitizeFilename(header.Filename)
		if name != "" {
			if err := h.saveLogo(file, name); err != nil {
				log.Printf("ERROR: save logo: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			logo = name
		}
	}

	err = h.store.UpsertCompanySettings(r.Context(), database.UpsertCompanySettingsParams{
		Name:    r.PostFormValue("company_name"),
		Address: r.PostFormValue("company_address"),
		Phone:   r.PostFormValue("company_phone"),
		Logo:    logo,
	})
	if err != nil {
		log.Printf("ERROR: save company settings: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Settings updated successfully.")
	http.Redirect(w, r, "/settings", http.StatusFound)
}

func (h *SettingsHandler) saveLogo(src io.Reader, name string) error {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}

// sanitizeFilename strips path components and any character outside the
// portable filename set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return filenameSanitizer.ReplaceAllString(name, "")
}

func defaultCompanySettings() database.CompanySettings {
	return database.CompanySettings{
		Name:    defaultCompanyName,
		Address: defaultCompanyAddress,
		Phone:   defaultCompanyPhone,
	}
}

// companySettingsOrDefaults loads the letterhead for printable pages,
// substituting the defaults when no row exists or the lookup fails.
func companySettingsOrDefaults(ctx context.Context, store interface {
	GetCompanySettings(ctx context.Context) (database.CompanySettings, error)
}) database.CompanySettings {
	settings, err := store.GetCompanySettings(ctx)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("ERROR: get company settings: %v", err)
		}
		return defaultCompanySettings()
	}
	return settings
}
