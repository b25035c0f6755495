package dashboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// Poster 内嵌为 data URI 的海报图片
type Poster struct {
	DataURI template.URL
	Width   int
}

// LoadPoster 读取海报；文件缺失返回提示文本而非错误，页面继续渲染
func LoadPoster(path string) (*Poster, string) {
	if path == "" {
		return nil, ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		name := filepath.Base(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Sprintf("Movie poster image not found. Please ensure '%s' is in the app directory.", name)
		}
		return nil, fmt.Sprintf("Movie poster image '%s' could not be read: %v", name, err)
	}

	mime := http.DetectContentType(data)
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &Poster{DataURI: template.URL(uri), Width: 400}, ""
}
