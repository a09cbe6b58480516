// Package media exposes the class-group image upload API.
package media

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/psdahs/alumni/internal/middleware"
	"github.com/psdahs/alumni/internal/response"
	"github.com/psdahs/alumni/internal/storage"
	"github.com/psdahs/alumni/internal/upload"
)

// FormField is the multipart field carrying the image.
const FormField = "image"

// multipartOverhead is the slack allowed on top of the file size limit for
// multipart boundaries and headers.
const multipartOverhead = 1 << 20

// Handler holds HTTP handlers for image endpoints.
type Handler struct {
	policy *upload.Policy
	store  storage.Storage
	log    *zap.SugaredLogger
}

// NewHandler creates a new media Handler.
func NewHandler(policy *upload.Policy, store storage.Storage, log *zap.SugaredLogger) *Handler {
	return &Handler{policy: policy, store: store, log: log}
}

// Routes mounts the image endpoints on r. Writes go through requireAuth.
func (h *Handler) Routes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/policy", h.GetPolicy)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/{category}", h.Upload)
		r.Delete("/{category}/{name}", h.Delete)
	})
}

type imageBody struct {
	Category string `json:"category" example:"banners"`
	Path     string `json:"path"     example:"/images/class-groups/banners/5f0c6a8e-8d0b-4a43-9d53-0f5d8c9f2f1e.png"`
	URL      string `json:"url"      example:"https://cdn.example.org/images/class-groups/banners/5f0c6a8e-8d0b-4a43-9d53-0f5d8c9f2f1e.png"`
	Size     int64  `json:"size"     example:"1048576"`
}

type categoryBody struct {
	Name string `json:"name" example:"thumbnails"`
	Path string `json:"path" example:"/images/class-groups/thumbnails"`
}

type policyBody struct {
	AllowedExtensions []string                     `json:"allowedExtensions"`
	AllowedMIMETypes  []string                     `json:"allowedMimeTypes"`
	MaxFileSize       int64                        `json:"maxFileSize"   example:"5242880"`
	MaxFileSizeMB     string                       `json:"maxFileSizeMB" example:"5"`
	Categories        []categoryBody               `json:"categories"`
	Dimensions        map[string]upload.Dimensions `json:"dimensions"`
	Optimization      upload.Optimization          `json:"optimization"`
}

// GetPolicy godoc
//
//	@Summary		Upload policy
//	@Description	Accepted formats, size limit, categories and target dimensions, for client-side messaging.
//	@Tags			images
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=policyBody}
//	@Router			/images/policy [get]
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	cats := make([]categoryBody, 0, len(upload.Categories()))
	for _, c := range upload.Categories() {
		p, _ := h.policy.CategoryPath(c)
		cats = append(cats, categoryBody{Name: string(c), Path: p})
	}

	response.OK(w, policyBody{
		AllowedExtensions: h.policy.AllowedExtensions(),
		AllowedMIMETypes:  h.policy.AllowedMIMETypes(),
		MaxFileSize:       h.policy.MaxFileSize(),
		MaxFileSizeMB:     h.policy.MaxFileSizeMB(),
		Categories:        cats,
		Dimensions:        h.policy.Dimensions(),
		Optimization:      h.policy.Optimization(),
	})
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Store a class-group image in the given category. Accepts jpg, jpeg, png and webp up to 5MB.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category	path		string	true	"Image category"	Enums(class-groups, placeholders, banners, thumbnails)
//	@Param			image		formData	file	true	"Image file"
//	@Success		201			{object}	response.Envelope{data=imageBody}
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		413			{object}	response.Envelope
//	@Failure		415			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/images/{category} [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	category, dir, ok := h.category(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.policy.MaxFileSize()+multipartOverhead)

	file, hdr, err := r.FormFile(FormField)
	var candidate *upload.Candidate
	switch {
	case err == nil:
		defer file.Close()
		mimeType, err := detectMIME(file, hdr)
		if err != nil {
			h.log.Errorw("sniff upload", "error", err)
			response.InternalError(w)
			return
		}
		candidate = &upload.Candidate{MIMEType: mimeType, Size: hdr.Size}
	case isBodyTooLarge(err):
		response.TooLarge(w, h.policy.SizeLimitMessage())
		return
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// no candidate
	default:
		response.BadRequest(w, "invalid multipart body")
		return
	}

	res := h.policy.Validate(candidate)
	if !res.Valid {
		writeValidation(w, res)
		return
	}

	ext, _ := h.policy.ExtensionFor(candidate.MIMEType)
	key := path.Join(dir, uuid.NewString()+"."+ext)

	if err := h.store.Save(r.Context(), key, file, hdr.Size, candidate.MIMEType); err != nil {
		h.log.Errorw("store image", "key", key, "error", err)
		response.InternalError(w)
		return
	}

	userID, _ := middleware.UserID(r.Context())
	h.log.Infow("image stored",
		"category", category,
		"key", key,
		"size", humanize.IBytes(uint64(hdr.Size)),
		"mime", candidate.MIMEType,
		"user", userID,
	)

	response.Created(w, imageBody{
		Category: string(category),
		Path:     key,
		URL:      h.store.PublicURL(key),
		Size:     hdr.Size,
	})
}

// Delete godoc
//
//	@Summary		Delete image
//	@Description	Remove a stored image. Deleting an image that does not exist succeeds.
//	@Tags			images
//	@Produce		json
//	@Security		BearerAuth
//	@Param			category	path		string	true	"Image category"
//	@Param			name		path		string	true	"Stored file name"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/images/{category}/{name} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	category, dir, ok := h.category(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" || name != path.Base(name) || strings.ContainsAny(name, `\`+"\x00") || strings.HasPrefix(name, ".") {
		response.BadRequest(w, "invalid file name")
		return
	}

	key := path.Join(dir, name)
	if err := h.store.Delete(r.Context(), key); err != nil {
		if errors.Is(err, upload.ErrUnsafePath) {
			response.BadRequest(w, "invalid file name")
			return
		}
		h.log.Errorw("delete image", "key", key, "error", err)
		response.InternalError(w)
		return
	}

	h.log.Infow("image deleted", "category", category, "key", key)
	response.OK(w, map[string]string{"path": key})
}

// category resolves the {category} URL parameter, writing a 404 when unknown.
func (h *Handler) category(w http.ResponseWriter, r *http.Request) (upload.Category, string, bool) {
	c, ok := upload.ParseCategory(chi.URLParam(r, "category"))
	if !ok {
		response.NotFound(w, "unknown image category")
		return "", "", false
	}
	dir, ok := h.policy.CategoryPath(c)
	if !ok {
		response.NotFound(w, "unknown image category")
		return "", "", false
	}
	return c, dir, true
}

func writeValidation(w http.ResponseWriter, res upload.Result) {
	switch res.Reason {
	case upload.ReasonType:
		response.UnsupportedMediaType(w, res.Error)
	case upload.ReasonSize:
		response.TooLarge(w, res.Error)
	default:
		response.BadRequest(w, res.Error)
	}
}

// detectMIME trusts the part's declared Content-Type and only sniffs the
// content when the client sent none.
func detectMIME(file multipart.File, hdr *multipart.FileHeader) (string, error) {
	if ct := hdr.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}

	mt, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
