package services

import (
	"bytes"
	"context"
	"os"
	"regexp"
	"testing"

	"gmbtravels/internal/models"
	"gmbtravels/pkg/storage"
)

var pdfFilenameRe = regexp.MustCompile(`^package_winter-escape_\d{8}_\d{6}\.pdf$`)

func samplePackage() *models.Package {
	return &models.Package{
		Title:      "Winter Escape",
		Duration:   "5 Days / 4 Nights",
		Price:      24999,
		GroupSize:  "2-6 people",
		Highlights: []string{"Gondola ride in Gulmarg", "Shikara ride on Dal Lake"},
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Arrival in Srinagar", Description: "Airport pickup and houseboat check-in.", Activities: []string{"Shikara ride"}, Accommodation: "Houseboat"},
			{Day: 2, Title: "Gulmarg", Activities: []string{"Gondola", "Skiing"}},
		},
		Inclusions: []string{"All transfers", "Breakfast and dinner"},
		Exclusions: []string{"Airfare", "Personal expenses"},
	}
}

func TestRenderPackagePDF(t *testing.T) {
	svc := NewPDFService(nil, "pdfs", testLogger(t))

	data, filename, err := svc.RenderPackagePDF(samplePackage(), nil)
	if err != nil {
		t.Fatalf("RenderPackagePDF: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("rendered PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with the PDF magic, got %q", data[:8])
	}
	if !pdfFilenameRe.MatchString(filename) {
		t.Errorf("filename = %q, want package_<slug>_<timestamp>.pdf", filename)
	}
}

func TestRenderPackagePDFWithClient(t *testing.T) {
	svc := NewPDFService(nil, "pdfs", testLogger(t))

	client := &PDFClientInfo{Name: "Asif Dar", Email: "asif@example.com", Phone: "+911234567890"}
	data, _, err := svc.RenderPackagePDF(samplePackage(), client)
	if err != nil {
		t.Fatalf("RenderPackagePDF: %v", err)
	}

	plain, _, err := svc.RenderPackagePDF(samplePackage(), nil)
	if err != nil {
		t.Fatalf("RenderPackagePDF without client: %v", err)
	}
	// The client block adds content, so the personalized document cannot
	// be byte-identical to the anonymous one.
	if bytes.Equal(data, plain) {
		t.Error("personalized brochure matches the anonymous one")
	}
}

func TestGeneratePackagePDFStoresFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	svc := NewPDFService(store, "pdfs", testLogger(t))
	result, err := svc.GeneratePackagePDF(context.Background(), samplePackage(), nil)
	if err != nil {
		t.Fatalf("GeneratePackagePDF: %v", err)
	}

	if result.Size <= 0 {
		t.Errorf("size = %d", result.Size)
	}
	if !pdfFilenameRe.MatchString(result.Filename) {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.URL != "/uploads/"+result.Key {
		t.Errorf("url = %q, key = %q", result.URL, result.Key)
	}

	info, err := os.Stat(store.Path(result.Key))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if info.Size() != result.Size {
		t.Errorf("on-disk size %d != reported size %d", info.Size(), result.Size)
	}
}
