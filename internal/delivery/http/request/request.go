package request

// CrawlRequest is the payload of POST /crawl.
type CrawlRequest struct {
	Keywords    []string `json:"keywords"`
	MaxCount    int      `json:"maxCount"`
	SearchPages int      `json:"searchPages"`
}
