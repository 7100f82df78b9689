package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `#SHEETMUSIC
#SONG INFO
title: Scale
#TIME
signature: 1/2
bars: 1
#NOTES
pitch: c1
pitch: d1
pitch: e1
duration: 1/2
`

func newHandler(logs *bytes.Buffer) http.Handler {
	s := New(render.Options{Header: true}, log.New(logs, "", 0))
	return s.Handler([]string{"*"})
}

func do(t *testing.T, h http.Handler, method, path string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func createEditReqBody(t *testing.T, edits ...model.Edit) io.Reader {
	data, err := json.Marshal(model.EditRequest{Document: doc, Edits: edits})
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func readError(t *testing.T, resp *http.Response) model.ErrorResponse {
	var res model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestRender(t *testing.T) {
	var logs bytes.Buffer
	resp := do(t, newHandler(&logs), http.MethodPost, "/render", strings.NewReader(doc))
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.True(strings.HasPrefix(string(body), "Title: Scale\n"))
	assert.Contains(string(body), "Length in bars: 2")

	id := resp.Header.Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(err)
	assert.Contains(logs.String(), "POST /render "+id+" 200")
	assert.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRenderRejectsBadDocument(t *testing.T) {
	var logs bytes.Buffer
	resp := do(t, newHandler(&logs), http.MethodPost, "/render", strings.NewReader("#NOTES\n"))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readError(t, resp).Error, "missing #SHEETMUSIC header")
	assert.Contains(t, logs.String(), " 400")
}

func TestEdit(t *testing.T) {
	var logs bytes.Buffer
	body := createEditReqBody(t,
		model.Edit{Op: model.OpModify, Bar: 1, Note: 2, Pitch: "f#1", Duration: "1/4"},
		model.Edit{Op: model.OpHarmony, Bar: 2, Note: 1, Pitch: "g1"},
		model.Edit{Op: model.OpLyrics, Lyrics: "do re mi"},
	)
	resp := do(t, newHandler(&logs), http.MethodPost, "/edit", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.EditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	assert := assert.New(t)
	assert.Contains(res.Document, "pitch: f#1\nduration: 1/4\n")
	assert.Contains(res.Document, "pitch: e1\nduration: 1/2\nharmony: g1\n")
	assert.Contains(res.Document, "#LYRICS\ndo re mi\n")
	assert.True(strings.HasPrefix(res.Rendered, "Title: Scale\n"))
	assert.True(strings.HasSuffix(res.Rendered, "    do   re        mi\n"))
}

func TestEditInfo(t *testing.T) {
	var logs bytes.Buffer
	body := createEditReqBody(t, model.Edit{Op: model.OpInfo, Title: "New", Author: "Me", Time: "1/4", Bars: 1})
	resp := do(t, newHandler(&logs), http.MethodPost, "/edit", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.EditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Contains(t, res.Document, "title: New\nauthor: Me\n")
	assert.Contains(t, res.Document, "signature: 1/4\nbars: 2\n")
}

func TestEditValidation(t *testing.T) {
	var logs bytes.Buffer
	h := newHandler(&logs)

	resp := do(t, h, http.MethodPost, "/edit", createEditReqBody(t, model.Edit{Op: model.OpModify, Bar: 1, Note: 1}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := readError(t, resp)
	assert := assert.New(t)
	assert.Equal("validation failed", res.Error)
	assert.Equal("required_if", res.Fields["EditRequest.Edits[0].Pitch"])
	assert.Equal("required_if", res.Fields["EditRequest.Edits[0].Duration"])

	resp = do(t, h, http.MethodPost, "/edit", createEditReqBody(t, model.Edit{Op: "delete"}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal("oneof", readError(t, resp).Fields["EditRequest.Edits[0].Op"])

	resp = do(t, h, http.MethodPost, "/edit", strings.NewReader("{"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal("invalid request body", readError(t, resp).Error)
}

func TestEditFailsOnBadIndex(t *testing.T) {
	var logs bytes.Buffer
	body := createEditReqBody(t, model.Edit{Op: model.OpHarmony, Bar: 5, Note: 1, Pitch: "e1"})
	resp := do(t, newHandler(&logs), http.MethodPost, "/edit", body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readError(t, resp).Error, "edit 1 (harmony)")
}

func TestHealth(t *testing.T) {
	var logs bytes.Buffer
	resp := do(t, newHandler(&logs), http.MethodGet, "/healthz", nil)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}
