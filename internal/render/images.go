package render

import (
	"io/fs"
	"net/url"
	"strings"

	"github.com/panampa98/portfolio/internal/page"
)

// ClassLoaded marks images whose source is available.
const ClassLoaded = "is-loaded"

// ApplyImageFallbacks checks every img[data-fallback] against assets.
// A local src that is missing or empty is swapped for the fallback; images
// whose (possibly swapped) src exists get the is-loaded class. Remote
// sources are left alone. pagePath resolves relative src values.
func ApplyImageFallbacks(p *page.Page, pagePath string, assets fs.FS) {
	base := &url.URL{Path: "/" + strings.TrimPrefix(pagePath, "/")}

	for _, img := range p.FallbackImages() {
		src, _ := page.GetAttr(img, "src")
		name, local := localAsset(base, src)
		if !local {
			continue
		}

		if !available(assets, name) {
			fallback, _ := page.GetAttr(img, page.AttrFallback)
			if fallback == "" || fallback == src {
				continue
			}
			page.SetAttr(img, "src", fallback)
			if name, local = localAsset(base, fallback); !local || !available(assets, name) {
				continue
			}
		}
		page.AddClass(img, ClassLoaded)
	}
}

// localAsset resolves src against base and returns the asset path, or false
// for absolute URLs with a scheme or host and for data URIs.
func localAsset(base *url.URL, src string) (string, bool) {
	if src == "" {
		return "", true
	}
	ref, err := url.Parse(src)
	if err != nil || ref.Scheme != "" || ref.Host != "" {
		return "", false
	}
	return strings.TrimPrefix(base.ResolveReference(ref).Path, "/"), true
}

func available(assets fs.FS, name string) bool {
	if name == "" || assets == nil {
		return false
	}
	info, err := fs.Stat(assets, name)
	return err == nil && !info.IsDir() && info.Size() > 0
}
