package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePackageRepo struct {
	packages   []*models.Package
	lastStatus models.PackageStatus
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *models.Package) error {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	f.packages = append(f.packages, pkg)
	return nil
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakePackageRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if _, err := f.GetByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.packages {
		if p.ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (f *fakePackageRepo) List(ctx context.Context, status models.PackageStatus, category string) ([]*models.Package, error) {
	f.lastStatus = status
	var out []*models.Package
	for _, p := range f.packages {
		if status != "" && p.Status != status {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePackageRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.packages)), nil
}

func (f *fakePackageRepo) CountByStatus(ctx context.Context, status models.PackageStatus) (int64, error) {
	out, _ := f.List(ctx, status, "")
	return int64(len(out)), nil
}

type fakePDFService struct {
	result *services.PDFResult
}

func (f *fakePDFService) GeneratePackagePDF(ctx context.Context, pkg *models.Package, client *services.PDFClientInfo) (*services.PDFResult, error) {
	return f.result, nil
}

func (f *fakePDFService) RenderPackagePDF(pkg *models.Package, client *services.PDFClientInfo) ([]byte, string, error) {
	return []byte("%PDF-1.4 fake"), "package_test.pdf", nil
}

func seedPackage(repo *fakePackageRepo, title string, status models.PackageStatus) *models.Package {
	pkg := &models.Package{
		ID:     primitive.NewObjectID(),
		Title:  title,
		Status: status,
	}
	repo.packages = append(repo.packages, pkg)
	return pkg
}

func newPackageRouter(repo *fakePackageRepo) *gin.Engine {
	h := NewPackageHandler(repo, &fakePDFService{result: &services.PDFResult{Filename: "x.pdf"}})
	r := gin.New()
	r.GET("/packages", h.ListPublic)
	r.GET("/packages/:id", h.GetPublic)
	r.DELETE("/admin/packages/:id", h.Delete)
	r.GET("/admin/packages/:id/download-pdf", h.DownloadPDF)
	return r
}

func TestListPublicFiltersActive(t *testing.T) {
	repo := &fakePackageRepo{}
	seedPackage(repo, "Active Tour", models.PackageStatusActive)
	seedPackage(repo, "Retired Tour", models.PackageStatusInactive)
	router := newPackageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.lastStatus != models.PackageStatusActive {
		t.Errorf("public listing queried status %q, want active", repo.lastStatus)
	}

	var body struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 1 || body.Meta.Count != 1 {
		t.Errorf("data len = %d, meta count = %d, want 1 active package", len(body.Data), body.Meta.Count)
	}
}

func TestGetPublicHidesInactive(t *testing.T) {
	repo := &fakePackageRepo{}
	inactive := seedPackage(repo, "Retired Tour", models.PackageStatusInactive)
	router := newPackageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages/"+inactive.ID.Hex(), nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("inactive package status = %d, want 404", w.Code)
	}
}

func TestGetPublicInvalidID(t *testing.T) {
	router := newPackageRouter(&fakePackageRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages/not-a-hex-id", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteMissingPackage(t *testing.T) {
	router := newPackageRouter(&fakePackageRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/packages/"+primitive.NewObjectID().Hex(), nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDownloadPDFHeaders(t *testing.T) {
	repo := &fakePackageRepo{}
	pkg := seedPackage(repo, "Winter Escape", models.PackageStatusActive)
	router := newPackageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/packages/"+pkg.ID.Hex()+"/download-pdf", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="package_test.pdf"` {
		t.Errorf("content disposition = %q", cd)
	}
}
