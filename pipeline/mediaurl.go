package pipeline

import (
	"net"
	"net/url"
	"strings"
)

// BuildDownloadURL joins the public base URL with the artifact's download
// path. When no explicit download path is known it falls back to the static
// /exports mount.
func BuildDownloadURL(filename, downloadPath, baseURL string) string {
	path := downloadPath
	if path == "" {
		path = "/exports/" + filename
	}
	return strings.TrimRight(baseURL, "/") + path
}

// ResolveMediaURL decides whether the artifact can be attached as media.
// The WhatsApp gateway fetches media over the public internet, so a base URL
// on a loopback/local host yields "" and the caller must embed the download
// link in the message body instead. This is a heuristic on the host name,
// never an actual reachability probe.
func ResolveMediaURL(filename, downloadPath, baseURL string) string {
	if isLocalBase(baseURL) {
		return ""
	}
	return BuildDownloadURL(filename, downloadPath, baseURL)
}

func isLocalBase(baseURL string) bool {
	u, err := url.Parse(baseURL)
	if err != nil {
		return true
	}
	host := u.Hostname()
	if host == "" || host == "localhost" || host == "0.0.0.0" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && (ip.IsLoopback() || ip.IsUnspecified()) {
		return true
	}
	return false
}
