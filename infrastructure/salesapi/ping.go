package salesapi

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Ping reports whether the upstream sales service is reachable. Any HTTP
// response, including an error status, counts as reachable. Only transport
// failures count as offline.
func (c *SalesClient) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("%s/sales/user/test", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return true
}
