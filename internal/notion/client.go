package notion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"github.com/tidwall/gjson"
)

// do sends one request with exponential backoff. Network errors, 429 and 5xx
// are retried; any other failure is returned immediately.
func (u *implUploader) do(ctx context.Context, method, path string, body interface{}) (*resty.Response, error) {
	backoff := retry.WithMaxRetries(uint64(u.opts.MaxRetries), retry.NewExponential(u.opts.RetryBase))

	var resp *resty.Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req := u.client.R().SetContext(ctx)
		if body != nil {
			req.SetBody(body)
		}

		r, err := req.Execute(method, path)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			u.logger.Warn(ctx, "Notion %s %s failed, retrying: %v", method, path, err)
			return retry.RetryableError(fmt.Errorf("%s %s: %w", method, path, err))
		}

		if r.IsError() {
			apiErr := newAPIError(r.StatusCode(), r.Body())
			if apiErr.Retryable() {
				u.logger.Warn(ctx, "Notion %s %s returned %d, retrying", method, path, r.StatusCode())
				return retry.RetryableError(apiErr)
			}
			return apiErr
		}

		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (u *implUploader) createPage(ctx context.Context, payload map[string]interface{}) (string, string, error) {
	resp, err := u.do(ctx, http.MethodPost, "/pages", payload)
	if err != nil {
		return "", "", fmt.Errorf("create page: %w", err)
	}
	id := gjson.GetBytes(resp.Body(), "id").String()
	if id == "" {
		return "", "", fmt.Errorf("create page: response has no id")
	}
	return id, gjson.GetBytes(resp.Body(), "url").String(), nil
}

func (u *implUploader) appendChildren(ctx context.Context, pageID string, blocks []Block) error {
	for start := 0; start < len(blocks); start += u.opts.BatchSize {
		end := min(start+u.opts.BatchSize, len(blocks))
		body := map[string]interface{}{"children": blocks[start:end]}
		if _, err := u.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", body); err != nil {
			return fmt.Errorf("append blocks %d-%d: %w", start, end, err)
		}
		u.logger.Debug(ctx, "Appended blocks %d-%d of %d", start, end, len(blocks))
	}
	return nil
}

// findParentPage returns the first page the integration can see.
func (u *implUploader) findParentPage(ctx context.Context) (string, error) {
	body := map[string]interface{}{
		"query":     "",
		"filter":    map[string]string{"property": "object", "value": "page"},
		"page_size": 1,
	}
	resp, err := u.do(ctx, http.MethodPost, "/search", body)
	if err != nil {
		return "", fmt.Errorf("search pages: %w", err)
	}
	id := gjson.GetBytes(resp.Body(), "results.0.id").String()
	if id == "" {
		return "", fmt.Errorf("no parent page found: set NOTION_DATABASE_ID or share a page with the integration")
	}
	return id, nil
}
