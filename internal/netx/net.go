// Package netx moves attachment bytes to and from presigned object-storage
// URLs.
package netx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transfer performs plain HTTP PUT/GET against presigned URLs. The URLs
// carry their own authorization, so no headers beyond the content type are
// sent.
type Transfer struct {
	http *resty.Client
}

func NewTransfer(timeout time.Duration) *Transfer {
	return &Transfer{http: resty.New().SetTimeout(timeout)}
}

// Upload PUTs data to a presigned URL.
func (t *Transfer) Upload(ctx context.Context, url string, data []byte) error {
	resp, err := t.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put(url)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status(), resp.String())
	}
	return nil
}

// Download GETs the object behind a presigned URL.
func (t *Transfer) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := t.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status())
	}
	return resp.Body(), nil
}
