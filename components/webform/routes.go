package webform

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path for the form page under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the page, response, and asset handlers under
// basePath on mux and returns the page mount path.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return New(fns...).RegisterRoutes(mux, basePath)
}

// RegisterRoutes registers the component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("webform: missing mux")
	}

	pagePattern := mountPath(basePath, c.opts.RoutePath)
	mux.Handle(pagePattern, c.PageHandler())

	responsePattern := mountPath(basePath, c.opts.ResponsePath)
	mux.Handle(responsePattern, c.ResponseHandler())

	assetsPattern := mountPath(basePath, c.opts.AssetsPath)
	if !strings.HasSuffix(assetsPattern, "/") {
		assetsPattern += "/"
	}
	mux.Handle(assetsPattern, http.StripPrefix(assetsPattern, c.AssetsHandler()))

	return pagePattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
