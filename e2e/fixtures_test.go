//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const searchJSON = `{
  "items": [
    {"id": {"videoId": "vid001"}, "snippet": {"title": "Elden Ring Review", "channelTitle": "GameSpot", "publishedAt": "2022-02-23T14:00:00Z", "description": "Our review."}},
    {"id": {"videoId": "vid002"}, "snippet": {"title": "Elden Ring Boss Guide", "channelTitle": "Fextralife", "publishedAt": "2022-03-01T10:00:00Z", "description": "Every boss."}}
  ]
}`

const videosJSON = `{
  "items": [
    {"id": "vid001", "contentDetails": {"duration": "PT12M5S"}, "statistics": {"viewCount": "1234567"}},
    {"id": "vid002", "contentDetails": {"duration": "PT1H2M3S"}, "statistics": {"viewCount": "42"}}
  ]
}`

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
 <title>Test Channel</title>
 <entry>
  <id>yt:video:feed001</id>
  <yt:videoId>feed001</yt:videoId>
  <yt:channelId>UCtest</yt:channelId>
  <title>Fresh Upload</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=feed001"/>
  <author><name>Test Channel</name></author>
  <published>%s</published>
 </entry>
</feed>`

// FakeAPI serves canned search, videos and feed responses
type FakeAPI struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

// NewFakeAPI starts the fake API server; it is closed with the test
func (tf *TUITestFramework) NewFakeAPI() *FakeAPI {
	api := &FakeAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.queries = append(api.queries, r.URL.Query().Get("q"))
		api.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, searchJSON)
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, videosJSON)
	})
	mux.HandleFunc("/feeds/videos.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprintf(w, feedXML, time.Now().Add(-2*time.Hour).UTC().Format(time.RFC3339))
	})
	api.Server = httptest.NewServer(mux)
	tf.t.Cleanup(api.Close)
	return api
}

// Queries returns the q parameters the server has seen
func (api *FakeAPI) Queries() []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.queries...)
}

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "ytgrip-e2e-")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a config file into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	path := filepath.Join(tf.workspace, "ytgrip.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// CreateFakePlayer writes a script that records its arguments and exits.
// It returns the script path and the file the arguments land in.
func (tf *TUITestFramework) CreateFakePlayer() (string, string, error) {
	script := filepath.Join(tf.workspace, "fake-player.sh")
	record := filepath.Join(tf.workspace, "played.txt")
	body := "#!/bin/sh\nprintf '%s\\n' \"$@\" >> '" + record + "'\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		return "", "", err
	}
	return script, record, nil
}

// WaitForFile polls until path exists and contains want
func WaitForFile(path, want string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), want) {
			return true
		}
		time.Sleep(25 * time.Millisecond)
	}
	return false
}

// AppArgs points the binary at the fake API and the given config
func AppArgs(api *FakeAPI, configPath string, extra ...string) []string {
	args := []string{
		"--config", configPath,
		"--api-base", api.URL,
		"--feed-base", api.URL + "/feeds/videos.xml",
	}
	return append(args, extra...)
}
