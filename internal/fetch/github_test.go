package fetch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLatestRelease(t *testing.T) {
	release := Release{
		TagName: "v3.1.7",
		Assets: []ReleaseAsset{
			{Name: "nuclei_3.1.7_linux_amd64.zip", BrowserDownloadURL: "https://example.com/linux"},
			{Name: "nuclei_3.1.7_macOS_arm64.zip", BrowserDownloadURL: "https://example.com/darwin"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/projectdiscovery/nuclei/releases/latest" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(release)
	}))
	defer server.Close()

	oldBase := apiBase
	apiBase = server.URL
	defer func() { apiBase = oldBase }()

	got, err := LatestRelease("projectdiscovery/nuclei")
	if err != nil {
		t.Fatalf("LatestRelease() error = %v", err)
	}
	if got.TagName != "v3.1.7" {
		t.Errorf("TagName = %s, want v3.1.7", got.TagName)
	}
	if len(got.Assets) != 2 {
		t.Errorf("Assets count = %d, want 2", len(got.Assets))
	}
}

func TestLatestReleaseMissingTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	oldBase := apiBase
	apiBase = server.URL
	defer func() { apiBase = oldBase }()

	_, err := LatestRelease("owner/repo")
	if err == nil {
		t.Fatal("LatestRelease() expected error for missing tag")
	}
}

func TestLatestReleaseRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
	}))
	defer server.Close()

	oldBase := apiBase
	apiBase = server.URL
	defer func() { apiBase = oldBase }()

	_, err := LatestRelease("owner/repo")
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("expected rate limit error, got %v", err)
	}
}

func TestFindAsset(t *testing.T) {
	release := &Release{
		TagName: "v3.1.7",
		Assets: []ReleaseAsset{
			{Name: "nuclei_3.1.7_windows_amd64.zip"},
			{Name: "nuclei_3.1.7_linux_amd64.zip"},
			{Name: "checksums.txt"},
		},
	}

	asset, err := release.FindAsset("linux", "amd64", ".zip")
	if err != nil {
		t.Fatalf("FindAsset() error = %v", err)
	}
	if asset.Name != "nuclei_3.1.7_linux_amd64.zip" {
		t.Errorf("FindAsset() = %s", asset.Name)
	}

	if _, err := release.FindAsset("freebsd"); err == nil {
		t.Error("FindAsset(freebsd) expected error")
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("artifact-bytes"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "artifact")
	if err := Download(server.URL, dest); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "artifact-bytes" {
		t.Errorf("downloaded content = %q", content)
	}
}

func TestDownloadEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with no body
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "artifact")
	err := Download(server.URL, dest)
	if err == nil {
		t.Fatal("Download() expected error for empty body")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(dest); statErr == nil {
		t.Error("empty download should not leave a file behind")
	}
}

func TestDownloadNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "artifact")
	if err := Download(server.URL, dest); err == nil {
		t.Fatal("Download() expected error for 404")
	}
}
