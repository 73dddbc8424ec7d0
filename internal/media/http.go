// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/respond"
)

const defaultContentType = "application/octet-stream"

// Handler accepts multipart uploads.
type Handler struct {
	uploader Uploader
	logger   *slog.Logger
}

func NewHandler(uploader Uploader, logger *slog.Logger) *Handler {
	return &Handler{uploader: uploader, logger: logger}
}

/*
Upload returns the handler for POST /api/v1/{kind}/upload.

Request: multipart/form-data with the file in the "file" field (max 10 MiB).

Response:
  - 200: Object
  - 400: No file, or the body exceeds the size limit
  - 500: The object store rejected the upload
*/
func (handler *Handler) Upload(folder string) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)

		if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respond.Error(writer, request, apperr.ValidationError("File exceeds the 10 MiB limit"))
				return
			}
			respond.Error(writer, request, apperr.ValidationError("No file uploaded"))
			return
		}
		defer func() { _ = request.MultipartForm.RemoveAll() }()

		file, header, err := request.FormFile(constants.UploadFormField)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("No file uploaded"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = defaultContentType
		}

		key := ObjectKey(folder, header.Filename)
		object, err := handler.uploader.Upload(request.Context(), key, file, header.Size, contentType)
		if err != nil {
			respond.Error(writer, request, apperr.Internal(err))
			return
		}

		handler.logger.Info("media_uploaded",
			slog.String("file_id", object.FileID),
			slog.Int64("size", header.Size),
		)
		respond.OK(writer, object)
	})
}
