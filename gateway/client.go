package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client issues requests against the remote visitor-portal API. It holds no
// session state: the bearer credential, where one is needed, is passed into
// every call by the caller.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *logrus.Entry
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     logrus.WithField("component", "gateway"),
	}
}

// BaseURL returns the remote origin the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends one JSON request and decodes the JSON response into out when out is
// non-nil. Every call carries a deadline; nothing is retried here. A non-2xx
// response is normalized into *Error with the remote "message" field when the
// body parses, else a generic "HTTP error <status>".
func (c *Client) do(ctx context.Context, method, endpoint, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindBadRequest, Message: "could not encode request body", Err: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, body)
	if err != nil {
		return &Error{Kind: KindBadRequest, Message: "could not build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(ctx, req, token, endpoint, out)
}

// send applies the deadline, the bearer credential and the shared response
// handling. Multipart requests enter here directly from Upload.
func (c *Client) send(ctx context.Context, req *http.Request, token, endpoint string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.log.WithField("endpoint", endpoint).Warn("request timed out")
			return &Error{Kind: KindTimeout, Message: "the request timed out, please try again", Err: err}
		}
		c.log.WithFields(logrus.Fields{"endpoint": endpoint, "error": err}).Warn("request failed")
		return &Error{Kind: KindNetwork, Message: "Network error. Please check your connection and try again.", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gwErr := errorFromResponse(resp)
		c.log.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"kind":     gwErr.Kind.String(),
		}).Warn("remote API rejected request")
		return gwErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindRemote, Status: resp.StatusCode, Message: "malformed response from server", Err: err}
	}
	return nil
}

// raw performs a request and hands back the undecoded body, for file
// downloads.
func (c *Client) raw(ctx context.Context, method, endpoint, token string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, "", &Error{Kind: KindBadRequest, Message: "could not build request", Err: err}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, "", &Error{Kind: KindTimeout, Message: "the request timed out, please try again", Err: err}
		}
		return nil, "", &Error{Kind: KindNetwork, Message: "Network error. Please check your connection and try again.", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", errorFromResponse(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{Kind: KindRemote, Status: resp.StatusCode, Message: "malformed response from server", Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func errorFromResponse(resp *http.Response) *Error {
	gwErr := &Error{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP error %d", resp.StatusCode),
	}

	var payload struct {
		Message string `json:"message"`
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return gwErr
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		gwErr.Message = payload.Message
	}
	return gwErr
}
