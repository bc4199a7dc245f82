package dto_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"viasol/internal/domains/media/model/dto"
	"viasol/shared/validator"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		Size:     size,
	}
}

func TestUploadMediaRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr bool
	}{
		{
			name:    "jpeg accepted",
			header:  fileHeader("buzios-beach.jpg", "image/jpeg", 2 << 20),
			wantErr: false,
		},
		{
			name:    "webp accepted",
			header:  fileHeader("buzios-beach.webp", "image/webp", 2 << 20),
			wantErr: false,
		},
		{
			name:    "mp4 video accepted",
			header:  fileHeader("buzios-tour.mp4", "video/mp4", 30 << 20),
			wantErr: false,
		},
		{
			name:    "webm video accepted",
			header:  fileHeader("buzios-tour.webm", "video/webm", 30 << 20),
			wantErr: false,
		},
		{
			name:    "quicktime video accepted",
			header:  fileHeader("buzios-tour.mov", "video/quicktime", 30 << 20),
			wantErr: false,
		},
		{
			name:    "plain text rejected",
			header:  fileHeader("notes.txt", "text/plain", 1 << 10),
			wantErr: true,
		},
		{
			name:    "oversize file rejected",
			header:  fileHeader("buzios-tour.mp4", "video/mp4", 51 << 20),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UploadMediaRequest{
				Media: tt.header,
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
