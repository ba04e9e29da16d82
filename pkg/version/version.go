package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

var latestReleaseURL = "https://api.github.com/repos/diillson/azure-finops-report-go/releases/latest"

// buildSetting returns a vcs.* value embedded by the Go toolchain.
func buildSetting(bi *debug.BuildInfo, key string) string {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// populateFromBuildInfo preenche Commit/BuildTime (e Version, quando há tag)
// a partir do build info, sem sobrescrever valores vindos de ldflags.
func populateFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	if rev := buildSetting(bi, "vcs.revision"); Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if ts := buildSetting(bi, "vcs.time"); BuildTime == "" && ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			BuildTime = t.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := buildSetting(bi, "vcs.tag"); tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(buildSetting(bi, "vcs.modified"), "true") {
			Version += "-dirty"
		}
	}
}

func init() {
	populateFromBuildInfo()
}

// IsNewer reports whether latest is a higher dotted version than current.
// Pre-release suffixes ("-dirty", "-rc1") are ignored.
func IsNewer(latest, current string) bool {
	parse := func(v string) []int {
		v = strings.TrimPrefix(v, "v")
		if i := strings.IndexAny(v, "-+"); i >= 0 {
			v = v[:i]
		}
		var parts []int
		for _, p := range strings.Split(v, ".") {
			n, err := strconv.Atoi(p)
			if err != nil {
				n = 0
			}
			parts = append(parts, n)
		}
		return parts
	}

	l, c := parse(latest), parse(current)
	for i := 0; i < len(l) || i < len(c); i++ {
		var lv, cv int
		if i < len(l) {
			lv = l[i]
		}
		if i < len(c) {
			cv = c[i]
		}
		if lv != cv {
			return lv > cv
		}
	}
	return false
}

// CheckLatestVersion verifica se uma versão mais recente está disponível.
func CheckLatestVersion(currentVersion string) {
	// Versões dev não são verificadas
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(latestReleaseURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if IsNewer(release.TagName, currentVersion) {
		pterm.Warning.Println(fmt.Sprintf("A new version of Azure FinOps Report is available: %s", strings.TrimPrefix(release.TagName, "v")))
		pterm.Info.Println("Please update using: go install github.com/diillson/azure-finops-report-go/cmd/azure-finops-report@latest")
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	switch {
	case Commit == "" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case Commit == "":
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, BuildTime)
	case BuildTime != "":
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
	default:
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	}
}
