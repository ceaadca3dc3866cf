package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	domainerr "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StaticHandler serves the built front-end for requests no API route matched
type StaticHandler struct {
	root string
}

// NewStaticHandler serves files under root; an empty root disables it
func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

// NoRoute serves a file for GET and HEAD, and a JSON 404 otherwise
func (h *StaticHandler) NoRoute(c *gin.Context) {
	if h.root != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
		if path, ok := h.resolve(c.Request.URL.Path); ok {
			c.File(path)
			return
		}
	}

	c.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Not found",
		Code:  domainerr.CodeInvalidRequest,
	})
}

// resolve maps a URL path to a regular file inside root. Directories resolve
// to their index.html.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	clean := filepath.FromSlash(filepath.Clean("/" + urlPath))
	path := filepath.Join(h.root, clean)
	if !strings.HasPrefix(path, filepath.Clean(h.root)) {
		return "", false
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
