package nets

import (
	"fmt"
	"net/url"
)

// InstallerProxy returns the proxy the package installer should use to
// reach indexURL, or "" for a direct connection. Local indexes are reached
// directly.
type InstallerProxy func(indexURL string) (string, error)

func (Module) InstallerProxy(
	getURL GetProxyURL,
	isLocal IsLocalAddr,
) InstallerProxy {
	return func(indexURL string) (string, error) {
		u, err := getURL()
		if err != nil {
			return "", err
		}
		if u == nil {
			return "", nil
		}
		if indexURL != "" {
			index, err := url.Parse(indexURL)
			if err != nil {
				return "", fmt.Errorf("index url %s: %w", indexURL, err)
			}
			if index.Hostname() != "" {
				local, err := isLocal(index.Hostname())
				if err != nil {
					return "", err
				}
				if local {
					return "", nil
				}
			}
		}
		return u.String(), nil
	}
}
