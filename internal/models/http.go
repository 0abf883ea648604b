// Package models defines the request and response data structures used
// for communication between the client and the URL shortener service.
package models

// Request represents a request to shorten a URL.
type Request struct {
	// URL is the original URL to be shortened.
	URL string `json:"url"`
}

// Response represents the response containing the shortened URL.
type Response struct {
	// Result contains the shortened version of the original URL.
	Result string `json:"result"`
}

// BatchRequest represents one URL in a batch shortening request, with a
// correlation ID for matching the response entry to the request entry.
type BatchRequest struct {
	CorrelationID string `json:"correlation_id"`
	OriginalURL   string `json:"original_url"`
}

// BatchResponse represents the response for a single URL in a batch
// shortening request.
type BatchResponse struct {
	CorrelationID string `json:"correlation_id"`
	ShortURL      string `json:"short_url"`
}

// ExpandRequest asks to resolve a shortened URL back to the original.
// ShortURL may be a bare key, a path, or a full short URL.
type ExpandRequest struct {
	ShortURL string `json:"short_url"`
}

// ExpandResponse carries the canonical URL a short key points to.
type ExpandResponse struct {
	OriginalURL string `json:"original_url"`
}
