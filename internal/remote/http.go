package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"containment/internal/domain"
)

// ErrNotFound is returned when the server has no such report.
var ErrNotFound = errors.New("remote: not found")

// HTTP talks to a containmentd server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil client selects
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Solve submits p and returns the server's report.
func (c *HTTP) Solve(ctx context.Context, p domain.Problem) (domain.Report, error) {
	var out domain.Report
	if err := c.post(ctx, "/solve", p, &out); err != nil {
		return domain.Report{}, err
	}
	return out, nil
}

// FetchReport returns a report stored on the server.
func (c *HTTP) FetchReport(ctx context.Context, id domain.ReportID) (domain.Report, error) {
	var out domain.Report
	if err := c.getJSON(ctx, "/reports/"+url.PathEscape(id.String()), &out); err != nil {
		return domain.Report{}, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg := readError(resp.Body)
		err := fmt.Errorf("remote %s %s: %s", req.Method, req.URL, resp.Status)
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		if resp.StatusCode == http.StatusNotFound {
			return errors.Join(ErrNotFound, err)
		}
		return err
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func readError(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}

var _ domain.RemoteClient = (*HTTP)(nil)
