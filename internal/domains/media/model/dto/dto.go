package dto

import (
	"mime/multipart"
)

type UploadMediaRequest struct {
	Media     *multipart.FileHeader `json:"media" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp video/mp4 video/webm video/quicktime,maxfilesize=50"`
	MediaFile multipart.File        `json:"-"`
}

type UploadMediaResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadMediaResponse) FromUpload(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteMediaRequest struct {
	MediaURLs []string `json:"media_urls" validate:"required,min=1,dive,url"`
}
