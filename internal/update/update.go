// Package update implements a lightweight release check against the GitHub
// releases API. Results are cached on disk so repeat invocations inside the
// cache window stay offline; the actual binary replacement is handled by the
// CLI's self-update path.
package update

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
)

const (
	repoLatestURL = "https://api.github.com/repos/leakscan/leakscan/releases/latest"
	cacheFileName = "update.json"
	cacheTTL      = 24 * time.Hour
)

type checkCache struct {
	CheckedAt time.Time `json:"checked_at"`
	Version   string    `json:"version"`
}

func cachePath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "leakscan", cacheFileName)
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "leakscan", cacheFileName)
}

func readCache() checkCache {
	var c checkCache
	p := cachePath()
	if p == "" {
		return c
	}
	if b, err := os.ReadFile(p); err == nil {
		_ = json.Unmarshal(b, &c)
	}
	return c
}

func writeCache(c checkCache) {
	p := cachePath()
	if p == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(p), 0755)
	b, _ := json.MarshalIndent(c, "", "  ")
	_ = os.WriteFile(p, b, 0644)
}

func latestVersionOnline() (string, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	req, _ := http.NewRequest("GET", repoLatestURL, nil)
	req.Header.Set("User-Agent", "leakscan-updater")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var obj struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", err
	}
	v := obj.TagName
	if v == "" {
		v = obj.Name
	}
	return strings.TrimPrefix(strings.TrimSpace(v), "v"), nil
}

// Check returns (latest, isNewer, error). It uses the on-disk cache while it
// is fresh and is a no-op in CI or when noNetwork is set.
func Check(current string, noNetwork bool) (string, bool, error) {
	if os.Getenv("CI") != "" || noNetwork {
		return "", false, nil
	}
	c := readCache()
	latest := c.Version
	if latest == "" || time.Since(c.CheckedAt) > cacheTTL {
		if v, err := latestVersionOnline(); err == nil {
			latest = v
			writeCache(checkCache{CheckedAt: time.Now(), Version: v})
		}
	}
	if latest == "" {
		return "", false, nil
	}
	return latest, isNewer(latest, current), nil
}

// isNewer compares two version strings as tolerant semver; anything that
// fails to parse is never reported as an upgrade.
func isNewer(latest, current string) bool {
	lv, err := semver.ParseTolerant(latest)
	if err != nil {
		return false
	}
	cv, err := semver.ParseTolerant(current)
	if err != nil {
		return false
	}
	return lv.GT(cv)
}
