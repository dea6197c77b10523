package storage

import (
	"io"
	"mime/multipart"
)

// ReadMultipart reads a multipart form file fully into memory.
// The onboarding flow buffers files until the final submission.
func ReadMultipart(file *multipart.FileHeader) ([]byte, string, error) {
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return data, file.Header.Get("Content-Type"), nil
}
