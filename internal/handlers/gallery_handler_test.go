package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/config"
	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/pkg/storage"
)

type fakeGalleryRepo struct {
	images []*models.GalleryImage
}

func (f *fakeGalleryRepo) Create(ctx context.Context, image *models.GalleryImage) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	f.images = append(f.images, image)
	return nil
}

func (f *fakeGalleryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	for _, img := range f.images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeGalleryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, img := range f.images {
		if img.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (f *fakeGalleryRepo) List(ctx context.Context, category string) ([]*models.GalleryImage, error) {
	return f.images, nil
}

type fakeStore struct {
	uploads []string
	deleted []string
}

func (f *fakeStore) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	if _, err := io.Copy(io.Discard, request.Reader); err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, request.Key)
	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  "/uploads/" + request.Key,
		Size: request.Size,
	}, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (f *fakeStore) URL(key string) string { return "/uploads/" + key }

func newGalleryRouter(repo *fakeGalleryRepo, store *fakeStore, maxSize int64) *gin.Engine {
	h := NewGalleryHandler(repo, store, &config.UploadConfig{MaxImageSize: maxSize, PDFSubdir: "pdfs"})
	r := gin.New()
	r.POST("/admin/upload-image", h.Upload)
	r.DELETE("/admin/gallery/:id", h.Delete)
	return r
}

// uploadRequest builds a multipart body with an explicit part content
// type, which mime/multipart's CreateFormFile cannot set.
func uploadRequest(t *testing.T, filename, contentType, content string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := io.Copy(part, strings.NewReader(content)); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/upload-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadRejectsNonImage(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	router := newGalleryRouter(repo, store, 5<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "malware.exe", "application/octet-stream", "MZ", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(store.uploads) != 0 {
		t.Error("rejected file must not reach storage")
	}
	if len(repo.images) != 0 {
		t.Error("rejected file must not create a record")
	}
}

func TestUploadRejectsOversizeBeforeWrite(t *testing.T) {
	store := &fakeStore{}
	router := newGalleryRouter(&fakeGalleryRepo{}, store, 4)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "big.jpg", "image/jpeg", "more than four bytes", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(store.uploads) != 0 {
		t.Error("oversize file must not reach storage")
	}
}

func TestUploadGalleryCreatesRecord(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	router := newGalleryRouter(repo, store, 5<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "dal-lake.jpg", "image/jpeg", "fake image bytes", map[string]string{
		"title":    "Dal Lake at dawn",
		"category": "lakes",
	}))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(store.uploads) != 1 || !strings.HasPrefix(store.uploads[0], "gallery/") {
		t.Errorf("uploads = %v, want one key under gallery/", store.uploads)
	}
	if len(repo.images) != 1 {
		t.Fatalf("records = %d, want 1", len(repo.images))
	}
	if repo.images[0].Title != "Dal Lake at dawn" || repo.images[0].Category != "lakes" {
		t.Errorf("record = %+v", repo.images[0])
	}
}

func TestUploadOtherFolderSkipsRecord(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	router := newGalleryRouter(repo, store, 5<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "hero.png", "image/png", "fake image bytes", map[string]string{
		"folder": "packages",
	}))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(store.uploads) != 1 || !strings.HasPrefix(store.uploads[0], "packages/") {
		t.Errorf("uploads = %v, want one key under packages/", store.uploads)
	}
	if len(repo.images) != 0 {
		t.Error("non-gallery folders must not create gallery records")
	}
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	router := newGalleryRouter(repo, store, 5<<20)

	image := models.NewGalleryImage("Gulmarg", "mountains", "/uploads/gallery/g.jpg", "gallery/g.jpg", 10)
	if err := repo.Create(context.Background(), image); err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/gallery/"+image.ID.Hex(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(repo.images) != 0 {
		t.Error("record was not deleted")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "gallery/g.jpg" {
		t.Errorf("deleted = %v", store.deleted)
	}
}
