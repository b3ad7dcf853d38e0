package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/bettoyou/bettoyou/internal/platform/domain"
	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

const (
	// Headroom for multipart framing and the nullifier field.
	multipartOverhead = 1 << 20
	maxNullifierLen   = 256
)

type CertificatesHandler struct {
	CertificateService *service.CertificateService
}

// HandleUpload godoc
//
//	@Summary		Register a certificate
//	@Description	Fingerprints the uploaded certificate (SHA-256) and records it once per user.
//	@Description	Accepts PDF, JPEG, PNG, GIF and WebP up to 10 MiB. The file itself is not stored.
//	@Tags			Certificates
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file			formData	file	true	"Certificate document"
//	@Param			nullifier_hash	formData	string	false	"World ID nullifier to record with the certificate"
//	@Success		201				{object}	platformsdk.CertificateResponse
//	@Failure		400				{object}	platformsdk.ErrorResponse	"Missing file part"
//	@Failure		401				{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Failure		403				{object}	platformsdk.ErrorResponse	"Only scholars may upload"
//	@Failure		409				{object}	platformsdk.ErrorResponse	"Already registered"
//	@Failure		413				{object}	platformsdk.ErrorResponse	"File too large"
//	@Failure		415				{object}	platformsdk.ErrorResponse	"Unsupported format"
//	@Failure		500				{object}	platformsdk.ErrorResponse	"Processing failure"
//	@Router			/v1/certificates [post].
func (h *CertificatesHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxCertificateSize+multipartOverhead)
	mr, err := r.MultipartReader()
	if err != nil {
		platformsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	in, err := readUpload(mr)
	if err != nil {
		log.Info("unreadable certificate upload", "error", err)
		platformsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	in.UID = p.UID

	rec, err := h.CertificateService.Register(ctx, in)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCertificateResponse(rec))
}

var errNoFilePart = errors.New("multipart body has no file part")

// readUpload pulls the "file" and optional "nullifier_hash" parts. At most
// MaxCertificateSize+1 bytes of the file are read, which is enough to tell
// an oversized upload apart. Files of an unsupported type are not read.
func readUpload(mr *multipart.Reader) (service.RegisterInput, error) {
	var (
		in      service.RegisterInput
		gotFile bool
	)

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if gotFile {
				break
			}
			return in, err
		}

		switch part.FormName() {
		case "file":
			gotFile = true
			in.ContentType = part.Header.Get("Content-Type")
			if !domain.AllowedCertificateType(in.ContentType) {
				return in, nil
			}

			data, err := io.ReadAll(io.LimitReader(part, domain.MaxCertificateSize+1))
			if err != nil {
				return in, err
			}
			in.Data = data
			in.Size = int64(len(data))
			if in.Size > domain.MaxCertificateSize {
				return in, nil
			}

		case "nullifier_hash":
			b, err := io.ReadAll(io.LimitReader(part, maxNullifierLen))
			if err != nil {
				return in, err
			}
			in.Nullifier = strings.TrimSpace(string(b))
		}
		_ = part.Close()
	}

	if !gotFile {
		return in, errNoFilePart
	}
	return in, nil
}

// HandleMine godoc
//
//	@Summary		Own certificate
//	@Tags			Certificates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.CertificateResponse
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"Nothing registered yet"
//	@Router			/v1/certificates/me [get].
func (h *CertificatesHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	rec, err := h.CertificateService.Lookup(ctx, p.UID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCertificateResponse(rec))
}

// HandleList godoc
//
//	@Summary		All certificates
//	@Description	Every registered certificate in registration order. Supporters only.
//	@Tags			Certificates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.CertificateListResponse
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"Supporters only"
//	@Router			/v1/certificates [get].
func (h *CertificatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recs, err := h.CertificateService.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := platformsdk.CertificateListResponse{Certificates: make([]platformsdk.CertificateResponse, 0, len(recs))}
	for _, rec := range recs {
		out.Certificates = append(out.Certificates, toCertificateResponse(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toCertificateResponse(rec domain.CertificateRecord) platformsdk.CertificateResponse {
	return platformsdk.CertificateResponse{
		UID:              rec.UID,
		CertHash:         rec.CertHash,
		WorldIDNullifier: rec.WorldIDNullifier,
		UploadedAt:       rec.UploadedAt,
	}
}
