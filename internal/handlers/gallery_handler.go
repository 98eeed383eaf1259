package handlers

import (
	"path"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/config"
	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
	"gmbtravels/pkg/storage"
)

type GalleryHandler struct {
	galleryRepo interfaces.GalleryRepository
	store       storage.Provider
	upload      *config.UploadConfig
}

func NewGalleryHandler(galleryRepo interfaces.GalleryRepository, store storage.Provider, upload *config.UploadConfig) *GalleryHandler {
	return &GalleryHandler{
		galleryRepo: galleryRepo,
		store:       store,
		upload:      upload,
	}
}

// ListPublic returns gallery images, optionally filtered by category.
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	images, err := h.galleryRepo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Gallery retrieved", images, &utils.Meta{Count: len(images)})
}

// Upload stores an image under a folder chosen by the caller. Uploads
// into the gallery folder also get a gallery record; other folders
// (package photos, hero images) just return the stored URL. The file
// type and size are validated before anything is written.
func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Missing file")
		return
	}

	if !utils.IsAllowedImage(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		utils.BadRequestResponse(c, "Only image files are allowed")
		return
	}
	if fileHeader.Size > h.upload.MaxImageSize {
		utils.BadRequestResponse(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "gallery")
	key := path.Join(folder, utils.UniqueFilename(fileHeader.Filename))
	result, err := h.store.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:         key,
		Reader:      file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if folder != "gallery" {
		utils.CreatedResponse(c, "Image uploaded", gin.H{
			"url":  result.URL,
			"key":  result.Key,
			"size": result.Size,
		})
		return
	}

	image := models.NewGalleryImage(
		c.PostForm("title"),
		c.PostForm("category"),
		result.URL,
		key,
		result.Size,
	)
	if err := h.galleryRepo.Create(c.Request.Context(), image); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Image uploaded", image)
}

// Delete removes the gallery record and its stored file.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	image, err := h.galleryRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Gallery image")
		return
	}

	if err := h.galleryRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Gallery image")
		return
	}

	// Removing the file is best effort; the record is already gone.
	_ = h.store.Delete(c.Request.Context(), image.Filename)

	utils.SuccessResponse(c, "Image deleted", nil)
}
