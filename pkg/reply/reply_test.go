package reply

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJson(t *testing.T) {
	rec := httptest.NewRecorder()
	Json(rec, http.StatusOK, map[string]int{"count": 3})

	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestJsonMarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	Json(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	HTML(rec, http.StatusOK, []byte("<p>ok</p>"))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}
