package services

import "strings"

// AllowedFile reports whether filename carries a .pdf extension (any case).
// Contents are not inspected; a renamed file fails later, in extraction.
func AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return false
	}
	return strings.ToLower(filename[idx+1:]) == "pdf"
}

// ValidateUpload checks the two request inputs in the order the handler
// reports them: presence first, then file type.
func ValidateUpload(filename string, hasFile bool, jobDescription string) error {
	if !hasFile || filename == "" || jobDescription == "" {
		return ErrMissingInput
	}
	if !AllowedFile(filename) {
		return ErrInvalidFileType
	}
	return nil
}
