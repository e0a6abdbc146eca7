// Package fetch retrieves remote install artifacts: GitHub release
// metadata, release assets, and plain file downloads.
package fetch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// apiBase is overridable for tests.
var apiBase = "https://api.github.com"

// Release represents a GitHub release.
type Release struct {
	TagName     string         `json:"tag_name"`
	PublishedAt string         `json:"published_at"`
	Assets      []ReleaseAsset `json:"assets"`
}

// ReleaseAsset represents a downloadable file in a GitHub release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// LatestRelease fetches the latest release metadata for a repo ("owner/name").
func LatestRelease(repo string) (*Release, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest("GET", apiBase+"/repos/"+repo+"/releases/latest", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release for %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 403 || resp.StatusCode == 429 {
		return nil, fmt.Errorf("GitHub API rate limited. Try again later")
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("parsing release response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release for %s has no tag", repo)
	}
	return &release, nil
}

// FindAsset returns the release asset whose name contains every given
// substring (e.g. "linux", "amd64", ".zip").
func (r *Release) FindAsset(substrings ...string) (*ReleaseAsset, error) {
	for i := range r.Assets {
		name := r.Assets[i].Name
		ok := true
		for _, s := range substrings {
			if !strings.Contains(name, s) {
				ok = false
				break
			}
		}
		if ok {
			return &r.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("no release asset matching %s", strings.Join(substrings, " "))
}

// Download fetches url into dest. A non-200 response or an empty body is
// an error, and dest is removed on any failure.
func Download(url, dest string) error {
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d: %s", resp.StatusCode, url)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("writing download: %w", err)
	}
	if written == 0 {
		os.Remove(dest)
		return fmt.Errorf("download was empty: %s", url)
	}
	return nil
}
