package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
	"github.com/IgorSouzaLima/rjlima/pkg"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "rjlima_session"
	ProofPhotoField   = "proof_photo"
	LoginPath         = "/admin/login/"

	sessionTokenKey = "session_token"
	sniffLen        = 512
)

var (
	errProofTooLarge = errors.New("proof photo too large")
	errProofNotImage = errors.New("proof photo is not an image")
)

// sessionToken reads the session cookie, falling back to a bearer header.
func sessionToken(c *gin.Context) string {
	if v, ok := c.Get(sessionTokenKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

func clearSessionCookie(c *gin.Context) {
	setSessionCookie(c, "", -1)
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// readProofPhoto returns the uploaded proof photo, or nil when the request
// carries none. The content type is sniffed from the file itself; the caller
// must invoke the returned close func once the body has been consumed.
func readProofPhoto(c *gin.Context, maxBytes int64) (*interfaces.ProofFile, func(), error) {
	fh, err := c.FormFile(ProofPhotoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	if fh.Size == 0 {
		return nil, func() {}, nil
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, func() {}, errProofTooLarge
	}
	return openProofPhoto(fh)
}

func openProofPhoto(fh *multipart.FileHeader) (*interfaces.ProofFile, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	closeFn := func() { _ = f.Close() }

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		closeFn()
		return nil, func() {}, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		closeFn()
		return nil, func() {}, errProofNotImage
	}

	return &interfaces.ProofFile{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        io.MultiReader(bytes.NewReader(head), f),
	}, closeFn, nil
}

func mapProofPhotoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, errProofTooLarge):
		return pkg.NewDomainErrorSimple("PROOF_PHOTO_TOO_LARGE", "A foto do comprovante excede o tamanho maximo permitido", http.StatusRequestEntityTooLarge)
	case errors.Is(err, errProofNotImage):
		return pkg.NewDomainErrorSimple("INVALID_PROOF_PHOTO", "A foto do comprovante deve ser uma imagem", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	}
}
