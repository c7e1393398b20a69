package checker

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/boypt/simple-trackercheck/common"
)

var listClient = &http.Client{Timeout: 30 * time.Second}

// fetchTrackerLists downloads every configured list and dedups lines
// into candidate endpoint strings, first seen wins. A list that fails
// to download is logged and skipped rather than aborting the run.
func (c *Checker) fetchTrackerLists(urls []string) ([]string, error) {
	seen := make(map[string]struct{})
	var candidates []string
	var fetched int

	for _, url := range urls {
		lines, err := fetchList(url)
		if common.HandleError(err) {
			continue
		}
		fetched++
		for _, line := range lines {
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			candidates = append(candidates, line)
		}
	}

	if fetched == 0 {
		return nil, fmt.Errorf("all %d tracker list(s) failed to download", len(urls))
	}

	log.Printf("[fetch] %d unique candidates from %d list(s)", len(candidates), len(urls))
	return candidates, nil
}

func fetchList(url string) ([]string, error) {
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil, fmt.Errorf("fetchList: trackers list url invalid: %s", url)
	}

	log.Printf("[fetch] loading trackers from %s", url)
	resp, err := listClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchList: %s: unexpected status %s", url, resp.Status)
	}

	var txtlines []string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		txtlines = append(txtlines, line)
	}

	log.Printf("[fetch] loaded %d trackers", len(txtlines))
	return txtlines, scanner.Err()
}
