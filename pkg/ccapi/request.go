package ccapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const statusOK = 0

// The status line is hexadecimal without a 0x prefix.
const statusRadix = 16

type request struct {
	client  *Client
	command string
	params  url.Values
}

type response struct {
	lines []string
}

func (c *Client) newRequest(command string) *request {
	return &request{
		client:  c,
		command: command,
		params:  url.Values{},
	}
}

func (r *request) param(name, value string) *request {
	r.params.Set(name, value)
	return r
}

func (r *request) send(ctx context.Context) (*response, error) {
	u := url.URL{
		Scheme:   "http",
		Host:     fmt.Sprintf("%s:%d", r.client.host, r.client.port),
		Path:     "/ccapi/" + r.command,
		RawQuery: r.params.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %q request", r.command)
	}

	res, err := r.client.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reach console at %s", u.Host)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q response", r.command)
	}

	lines := strings.Split(string(body), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.Errorf("empty response for %q", r.command)
	}

	code, err := strconv.ParseUint(strings.TrimSpace(lines[0]), statusRadix, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed status line %q", lines[0])
	}

	if code != statusOK {
		return nil, &StatusError{Command: r.command, Code: CellError(code)}
	}

	return &response{lines: lines}, nil
}

// line returns the n-th payload line. Line 0 is the status line, payload
// starts at 1.
func (r *response) line(n int) (string, error) {
	if n >= len(r.lines) {
		return "", errors.Errorf("response is missing payload line %d", n)
	}
	return r.lines[n], nil
}

// payload returns all lines after the status line, without the empty line
// a trailing newline produces.
func (r *response) payload() []string {
	lines := r.lines[1:]
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
