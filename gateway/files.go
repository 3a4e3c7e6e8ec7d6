package gateway

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Upload stores a supporting document. The request is multipart with a "file"
// part and a "type" field, matching what the browser build sent via FormData.
func (c *Client) Upload(ctx context.Context, token, filename string, content io.Reader, fileType string) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "could not build upload", Err: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "could not read upload content", Err: err}
	}
	if err := writer.WriteField("type", fileType); err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "could not build upload", Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "could not build upload", Err: err}
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return nil, &Error{Kind: KindBadRequest, Message: "could not build request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result UploadResult
	if err := c.send(ctx, req, token, "/files/upload", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Download returns the raw file bytes and the remote content type.
func (c *Client) Download(ctx context.Context, token, fileID string) ([]byte, string, error) {
	return c.raw(ctx, http.MethodGet, "/files/download/"+url.PathEscape(fileID), token)
}

func (c *Client) DeleteFile(ctx context.Context, token, fileID string) error {
	return c.do(ctx, http.MethodDelete, "/files/"+url.PathEscape(fileID), token, nil, nil)
}
