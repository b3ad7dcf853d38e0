package platformsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// UploadCertificate registers a certificate for the signed-in scholar.
// contentType is sent as the part's declared type.
func (s *Session) UploadCertificate(
	ctx context.Context,
	filename, contentType string,
	file io.Reader,
	nullifierHash string,
) (*CertificateResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if nullifierHash != "" {
		if err := mw.WriteField("nullifier_hash", nullifierHash); err != nil {
			return nil, fmt.Errorf("failed to write nullifier: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/certificates", &buf,
		map[string]string{"Content-Type": mw.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	var out CertificateResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyCertificate returns the caller's record or ErrCertificateNotFound.
func (s *Session) MyCertificate(ctx context.Context) (*CertificateResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/certificates/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out CertificateResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCertificates returns every record. Supporters only.
func (s *Session) ListCertificates(ctx context.Context) ([]CertificateResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/certificates", nil, nil)
	if err != nil {
		return nil, err
	}

	var out CertificateListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Certificates, nil
}
