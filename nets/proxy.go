package nets

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/modes"
	"github.com/reusee/venvboot/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	return vars.FirstNonZero(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		configs.First[ProxyAddr](loader, "proxy_address"),
		configs.First[ProxyAddr](loader, "http_proxy"),
		configs.First[ProxyAddr](loader, "socks_proxy"),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTPS_PROXY")),
		ProxyAddr(os.Getenv("https_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
		ProxyAddr(os.Getenv("SOCKS_PROXY")),
		ProxyAddr(os.Getenv("socks_proxy")),
	)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		addr := string(proxyAddr)
		if !strings.Contains(addr, "://") {
			// host:port, as pip and curl accept it
			addr = "http://" + addr
		}
		u, err := url.Parse(addr)
		if err != nil {
			return nil, err
		}
		switch u.Scheme {
		case "http", "https":
		case "socks":
			u.Scheme = "socks5"
			fallthrough
		default:
			// anything else must be a scheme x/net/proxy can dial through
			if _, err := proxy.FromURL(u, proxy.Direct); err != nil {
				return nil, fmt.Errorf("proxy %s: %w", u.Redacted(), err)
			}
		}
		if u.Host == "" {
			return nil, fmt.Errorf("proxy %s: missing host", proxyAddr)
		}
		return u, nil
	})
}
