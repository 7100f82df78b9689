//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ts       *httptest.Server
	birthday string
)

func TestMain(m *testing.M) {
	clef, err := render.LoadClef("../data/g-clef.txt")
	if err != nil {
		panic(err.Error())
	}
	data, err := os.ReadFile("../data/birthday.txt")
	if err != nil {
		panic(err.Error())
	}
	birthday = string(data)

	s := server.New(render.Options{Clef: clef, Header: true}, log.New(io.Discard, "", 0))
	ts = httptest.NewServer(s.Handler([]string{"*"}))

	exitVal := m.Run()

	ts.Close()
	os.Exit(exitVal)
}

func createEditReqBody(edits ...model.Edit) io.Reader {
	data, err := json.Marshal(model.EditRequest{Document: birthday, Edits: edits})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestRenderBirthdayE2E(t *testing.T) {
	resp, err := http.Post(ts.URL+"/render", "text/plain", strings.NewReader(birthday))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSuffix(string(body), "\n"), "\n")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	require.Len(t, lines, 5+13+1)
	assert.Equal("Time Signature (amount of whole notes in a bar): 3/4", lines[2])
	// 6 notes and 2 bars, after an 11 wide clef
	for _, line := range lines[5:18] {
		assert.Len(line, 11+5*8+1)
	}
	bar1 := "    Hap- py   birth-day  "
	bar2 := "    to   you"
	assert.Equal(strings.Repeat(" ", 11)+bar1+" "+bar2, lines[18])
}

func TestEditThenRenderE2E(t *testing.T) {
	body := createEditReqBody(
		model.Edit{Op: model.OpInfo, Title: "Happy Birthday", Author: "Mildred Hill", Time: "3/4", Bars: 3},
		model.Edit{Op: model.OpModify, Bar: 2, Note: 2, Pitch: "rest", Duration: "1/4"},
	)
	resp, err := http.Post(ts.URL+"/edit", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var res model.EditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	assert := assert.New(t)
	assert.Contains(res.Document, "bars: 3\n")
	assert.Contains(res.Document, "pitch: rest\nduration: 1/4\n")

	// the edited document renders the same on its own
	again, err := http.Post(ts.URL+"/render", "text/plain", strings.NewReader(res.Document))
	require.NoError(t, err)
	defer again.Body.Close()
	rendered, _ := io.ReadAll(again.Body)
	assert.Equal(res.Rendered, string(rendered))
}
