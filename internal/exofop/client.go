package exofop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"

	"github.com/obskit/sg1submit/internal/naming"
	"github.com/obskit/sg1submit/internal/submission"
)

// DefaultBaseURL is the production ExoFOP-TESS site.
const DefaultBaseURL = "https://exofop.ipac.caltech.edu"

const (
	loginPath      = "/tess/password_check.php"
	insertPath     = "/tess/insert_tseries.php"
	uploadFilePath = "/tess/insert_file.php"
)

// fileType is the fixed upload category for every SG1 observation file.
const fileType = "Light_Curve"

// Client holds an authenticated ExoFOP session. The session cookie set by
// Login lives in the underlying cookie jar and authenticates every later
// request, so a single Client must serve the whole run.
type Client struct {
	http *resty.Client
}

// NewClient returns a client for the given base URL; pass "" for the
// production site.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// Login establishes the session. ExoFOP's login handler answers with a
// redirect into the site on success, so any status below 400 is accepted.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
			"ref":      "login_user",
			"ref_page": "/tess/",
		}).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("login failed: %s", resp.Status())
	}
	return nil
}

// InsertTimeSeries posts one time-series summary record.
func (c *Client) InsertTimeSeries(ctx context.Context, entry submission.Entry) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(entry.FormValues()).
		Post(insertPath)
	if err != nil {
		return fmt.Errorf("time series add failed (filter %s): %w", entry.Filter, err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("time series add failed (filter %s): %s", entry.Filter, resp.Status())
	}
	return nil
}

// UploadFile posts one observation file, tied to its entry's tag and target.
func (c *Client) UploadFile(ctx context.Context, path string, entry submission.Entry, desc naming.Descriptor) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file upload failed: %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file_name", filepath.Base(path), f).
		SetFormData(map[string]string{
			"file_type": fileType,
			"planet":    entry.Planet,
			"file_desc": string(desc),
			"file_tag":  entry.Tag,
			"groupname": entry.Group,
			"propflag":  "on",
			"tid":       entry.TargetID,
		}).
		Post(uploadFilePath)
	if err != nil {
		return fmt.Errorf("file upload failed: %s: %w", filepath.Base(path), err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("file upload failed: %s: %s", filepath.Base(path), resp.Status())
	}
	return nil
}
