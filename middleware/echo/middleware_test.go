package echomw_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
	echomw "github.com/reoring/jsoncol/middleware/echo"
)

func newServer() *echo.Echo {
	e := echo.New()
	e.POST("/columns", func(c echo.Context) error {
		a, ok := echomw.GetArray(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, array.TypeString(a))
	}, echomw.BuildJSON(jsoncol.ParseOpt{}))
	return e
}

func TestBuildJSON_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/columns", strings.NewReader(`[{"x": 1}, {"x": 2.5}]`))
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got, want := rec.Body.String(), "{x: float64}"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBuildJSON_DuplicateKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/columns", strings.NewReader(`{"a": 1, "a": 2}`))
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
			Path string `json:"path"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != jsoncol.CodeDuplicateKey || body.Error.Path != "/a" {
		t.Fatalf("got %+v", body.Error)
	}
}
