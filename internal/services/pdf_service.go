package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"gmbtravels/internal/models"
	"gmbtravels/internal/utils"
	"gmbtravels/pkg/logger"
	"gmbtravels/pkg/storage"
)

// PDFService renders tour package brochures for download and sharing.
type PDFService interface {
	// GeneratePackagePDF renders the brochure and stores it with the
	// upload provider.
	GeneratePackagePDF(ctx context.Context, pkg *models.Package, client *PDFClientInfo) (*PDFResult, error)

	// RenderPackagePDF renders the brochure in memory for direct
	// download without touching storage.
	RenderPackagePDF(pkg *models.Package, client *PDFClientInfo) ([]byte, string, error)
}

type PDFResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// PDFClientInfo personalizes a brochure for one client.
type PDFClientInfo struct {
	Name  string
	Email string
	Phone string
}

type pdfService struct {
	store     storage.Provider
	pdfSubdir string
	logger    *logger.Logger
}

func NewPDFService(store storage.Provider, pdfSubdir string, log *logger.Logger) PDFService {
	return &pdfService{
		store:     store,
		pdfSubdir: pdfSubdir,
		logger:    log,
	}
}

func (s *pdfService) GeneratePackagePDF(ctx context.Context, pkg *models.Package, client *PDFClientInfo) (*PDFResult, error) {
	data, filename, err := s.RenderPackagePDF(pkg, client)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.pdfSubdir, filename)
	result, err := s.store.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: "application/pdf",
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store PDF: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"key":  result.Key,
		"size": result.Size,
	}).Info("package PDF generated")

	return &PDFResult{
		Key:      result.Key,
		URL:      result.URL,
		Filename: filename,
		Size:     result.Size,
	}, nil
}

func (s *pdfService) RenderPackagePDF(pkg *models.Package, client *PDFClientInfo) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(30, 80, 120)
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetY(8)
	pdf.CellFormat(0, 10, "GMB Travels Kashmir", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, "Your Gateway to Paradise", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(42)

	if client != nil && client.Name != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "Prepared for: "+client.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		if client.Email != "" {
			pdf.CellFormat(0, 5, client.Email, "", 1, "L", false, 0, "")
		}
		if client.Phone != "" {
			pdf.CellFormat(0, 5, client.Phone, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	// Package title and essentials
	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 9, pkg.Title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, fmt.Sprintf("Duration: %s    Price: INR %.0f    Group Size: %s", pkg.Duration, pkg.Price, pkg.GroupSize), "", "L", false)
	pdf.Ln(4)

	if len(pkg.Highlights) > 0 {
		s.section(pdf, "Highlights")
		for _, h := range pkg.Highlights {
			pdf.MultiCell(0, 6, "- "+h, "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(pkg.Itinerary) > 0 {
		s.section(pdf, "Itinerary")
		for _, day := range pkg.Itinerary {
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, 7, fmt.Sprintf("Day %d: %s", day.Day, day.Title), "", "L", false)
			pdf.SetFont("Arial", "", 11)
			if day.Description != "" {
				pdf.MultiCell(0, 6, day.Description, "", "L", false)
			}
			if len(day.Activities) > 0 {
				pdf.MultiCell(0, 6, "Activities: "+strings.Join(day.Activities, ", "), "", "L", false)
			}
			if day.Accommodation != "" {
				pdf.MultiCell(0, 6, "Stay: "+day.Accommodation, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if len(pkg.Inclusions) > 0 {
		s.section(pdf, "Inclusions")
		for _, inc := range pkg.Inclusions {
			pdf.MultiCell(0, 6, "+ "+inc, "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(pkg.Exclusions) > 0 {
		s.section(pdf, "Exclusions")
		for _, exc := range pkg.Exclusions {
			pdf.MultiCell(0, 6, "x "+exc, "", "L", false)
		}
		pdf.Ln(3)
	}

	s.section(pdf, "Payment & Cancellation")
	for _, term := range []string{
		"50% advance to confirm the booking, balance 7 days before arrival.",
		"Free cancellation up to 15 days before arrival.",
		"50% charge for cancellation within 7 days of arrival.",
		"No refund for no-shows or early departures.",
	} {
		pdf.MultiCell(0, 6, "- "+term, "", "L", false)
	}
	pdf.Ln(3)

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "GMB Travels Kashmir | Dal Gate, Srinagar | info@gmbtravels.com", "T", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", time.Now().Format("02 Jan 2006")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render PDF: %w", err)
	}

	filename := fmt.Sprintf("package_%s_%s.pdf", utils.MakeSlug(pkg.Title), time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func (s *pdfService) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(30, 80, 120)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
}
