package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckLink probes a resource URL and reports whether it answers with a
// non-error status. Used as a best-effort health check when admins attach
// learning resources; a failing link is logged, never rejected.
func CheckLink(link string) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(link)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", link, err)
	}

	// Some hosts refuse HEAD, retry with GET before flagging the link.
	if resp.StatusCode() == 405 {
		resp, err = client.R().Get(link)
		if err != nil {
			return fmt.Errorf("failed to reach %s: %w", link, err)
		}
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("link %s answered with status %d", link, resp.StatusCode())
	}
	return nil
}
