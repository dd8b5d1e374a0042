// Package ats validates resume uploads and produces the ATS compatibility report.
package ats

import (
	"errors"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// MaxUploadBytes is the largest accepted upload.
const MaxUploadBytes = 10 << 20

// Accepted document types.
const (
	TypePDF  = "application/pdf"
	TypeDOC  = "application/msword"
	TypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedTypes lists the accepted content types.
var AllowedTypes = []string{TypePDF, TypeDOC, TypeDOCX}

var (
	// ErrUnsupportedType is returned for anything but PDF, DOC or DOCX.
	ErrUnsupportedType = errors.New("Please upload a PDF, DOC, or DOCX file.")
	// ErrTooLarge is returned for uploads over MaxUploadBytes.
	ErrTooLarge = errors.New("File size must be less than 10MB.")
	// ErrMissingFile is returned when the request carries no file.
	ErrMissingFile = errors.New("file is required")
)

// Upload describes a received file. The content itself is not kept.
type Upload struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"oneof=application/pdf application/msword application/vnd.openxmlformats-officedocument.wordprocessingml.document"`
	Size        int64  `json:"size" validate:"gte=0,lte=10485760"`
}

var validate = validator.New()

// Validate checks the type first, then the size.
func (u Upload) Validate() error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var sizeErr, nameErr bool
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "ContentType":
			return ErrUnsupportedType
		case "Size":
			sizeErr = true
		case "FileName":
			nameErr = true
		}
	}
	if sizeErr {
		return ErrTooLarge
	}
	if nameErr {
		return ErrMissingFile
	}
	return err
}

// DetectType returns the declared media type without parameters, or sniffs
// head when the client declared nothing useful.
func DetectType(declared string, head []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			declared = mt
		}
	}
	if declared != "" && declared != "application/octet-stream" {
		return strings.ToLower(declared)
	}
	detected := mimetype.Detect(head)
	for _, allowed := range AllowedTypes {
		if detected.Is(allowed) {
			return allowed
		}
	}
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String()
	}
	return mt
}
