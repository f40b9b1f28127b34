package exofop

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obskit/sg1submit/internal/config"
	"github.com/obskit/sg1submit/internal/naming"
	"github.com/obskit/sg1submit/internal/submission"
)

func testEntry() submission.Entry {
	return submission.Entry{
		Planet:         "TOI1234.01",
		Telescope:      "ObsA",
		TelSize:        "0.36",
		Camera:         "QHY600",
		Filter:         "V",
		PixScale:       "0.39",
		PSF:            "3.41",
		ApertureRadius: "15.0",
		ObsDate:        "2023-01-15",
		ObsDuration:    "15",
		ObsCount:       "3",
		Coverage:       config.CoverageFull,
		Tag:            "20230115_observer_tic12345678_01",
		Group:          "tfopwg",
		TargetID:       "12345678",
	}
}

func TestLogin(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tess/password_check.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		got = map[string]string{
			"username": r.PostFormValue("username"),
			"password": r.PostFormValue("password"),
			"ref":      r.PostFormValue("ref"),
			"ref_page": r.PostFormValue("ref_page"),
		}
		http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "abc123"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Login(context.Background(), "observer", "hunter2"))
	assert.Equal(t, map[string]string{
		"username": "observer",
		"password": "hunter2",
		"ref":      "login_user",
		"ref_page": "/tess/",
	}, got)
}

func TestLogin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Login(context.Background(), "observer", "wrong")
	assert.ErrorContains(t, err, "login failed")
}

func TestInsertTimeSeries(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tess/insert_tseries.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostFormValue(k)
		}
	}))
	defer srv.Close()

	entry := testEntry()
	require.NoError(t, NewClient(srv.URL).InsertTimeSeries(context.Background(), entry))

	assert.Equal(t, "TOI1234.01", form["planet"])
	assert.Equal(t, "ObsA", form["tel"])
	assert.Equal(t, "Continuous", form["obstype"])
	assert.Equal(t, "Full", form["transcov"])
	assert.Equal(t, "20230115_observer_tic12345678_01", form["tag"])
	assert.Equal(t, "12345678", form["id"])
}

func TestInsertTimeSeries_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).InsertTimeSeries(context.Background(), testEntry())
	assert.ErrorContains(t, err, "filter V")
}

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TIC12345678-01_20230115_ObsA_V_lightcurve.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	var form map[string]string
	var fileName, fileBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tess/insert_file.php", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = map[string]string{}
		for k := range r.MultipartForm.Value {
			form[k] = r.FormValue(k)
		}
		f, hdr, err := r.FormFile("file_name")
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		fileName, fileBody = hdr.Filename, string(body)
	}))
	defer srv.Close()

	entry := testEntry()
	err := NewClient(srv.URL).UploadFile(context.Background(), path, entry, naming.DescLightCurve)
	require.NoError(t, err)

	assert.Equal(t, "TIC12345678-01_20230115_ObsA_V_lightcurve.png", fileName)
	assert.Equal(t, "png-bytes", fileBody)
	assert.Equal(t, "Light_Curve", form["file_type"])
	assert.Equal(t, "TOI1234.01", form["planet"])
	assert.Equal(t, string(naming.DescLightCurve), form["file_desc"])
	assert.Equal(t, entry.Tag, form["file_tag"])
	assert.Equal(t, "tfopwg", form["groupname"])
	assert.Equal(t, "on", form["propflag"])
	assert.Equal(t, "12345678", form["tid"])
}

func TestUploadFile_Missing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	err := NewClient(srv.URL).UploadFile(context.Background(),
		filepath.Join(t.TempDir(), "absent.png"), testEntry(), naming.DescLightCurve)
	assert.ErrorContains(t, err, "absent.png")
}

func TestSessionCookiePersists(t *testing.T) {
	var sawCookie bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tess/password_check.php":
			http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "abc123"})
		case "/tess/insert_tseries.php":
			c, err := r.Cookie("PHPSESSID")
			sawCookie = err == nil && c.Value == "abc123"
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Login(context.Background(), "observer", "hunter2"))
	require.NoError(t, c.InsertTimeSeries(context.Background(), testEntry()))
	assert.True(t, sawCookie, "session cookie from login should ride along on later posts")
}
