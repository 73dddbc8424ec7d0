// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/media"
)

type fakeUploader struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, key string, body io.Reader, _ int64, contentType string) (media.Object, error) {
	if f.err != nil {
		return media.Object{}, f.err
	}
	f.key = key
	f.contentType = contentType
	f.body, _ = io.ReadAll(body)
	return media.Object{URL: "https://cdn.example.com/" + key, FileID: key}, nil
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/upload", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func newHandler(uploader media.Uploader) *media.Handler {
	return media.NewHandler(uploader, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestObjectKey(t *testing.T) {
	key := media.ObjectKey("/projects", `C:\Users\me\Hero Shot (Final).PNG`)

	pattern := regexp.MustCompile(`^projects/[0-9a-f-]{36}-hero-shot-final\.png$`)
	assert.Regexp(t, pattern, key)

	assert.True(t, strings.HasSuffix(media.ObjectKey("youtube", "???"), "-file"))
}

func TestUpload_Success(t *testing.T) {
	uploader := &fakeUploader{}
	request := multipartRequest(t, "file", "logo.svg", []byte("<svg/>"))

	recorder := httptest.NewRecorder()
	newHandler(uploader).Upload("projects").ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data media.Object `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, uploader.key, body.Data.FileID)
	assert.Equal(t, "https://cdn.example.com/"+uploader.key, body.Data.URL)
	assert.True(t, strings.HasPrefix(uploader.key, "projects/"))
	assert.Equal(t, []byte("<svg/>"), uploader.body)
}

func TestUpload_MissingFile(t *testing.T) {
	uploader := &fakeUploader{}

	recorder := httptest.NewRecorder()
	newHandler(uploader).Upload("projects").ServeHTTP(recorder, multipartRequest(t, "other", "a.png", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	plain := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("{}"))
	plain.Header.Set("Content-Type", "application/json")
	newHandler(uploader).Upload("projects").ServeHTTP(recorder, plain)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Empty(t, uploader.key)
}

func TestUpload_StoreFailure(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("bucket unavailable")}

	recorder := httptest.NewRecorder()
	newHandler(uploader).Upload("projects").ServeHTTP(recorder, multipartRequest(t, "file", "a.png", []byte("x")))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "bucket unavailable")
}
