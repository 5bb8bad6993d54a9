package lookup

import "context"

// FetchCredits returns the server-side balance. The server is the only
// source of truth here; callers that fail this treat the balance as unknown,
// never as zero.
func (c *Client) FetchCredits(ctx context.Context) (CreditsResponse, error) {
	var out CreditsResponse
	if err := c.postJSON(ctx, "/get-credits", nil, &out); err != nil {
		return CreditsResponse{}, err
	}
	return out, nil
}
