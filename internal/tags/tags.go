// Package tags reads the item sets shown on the sphere.
package tags

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iburimskiy/tagsphere/internal/cloud"
)

var ErrEmpty = errors.New("tags: no items")

type document struct {
	Items []cloud.ItemSpec `json:"items"`
}

// Parse accepts either a bare JSON array of items or an object with an
// "items" array.
func Parse(data []byte) ([]cloud.ItemSpec, error) {
	data = bytes.TrimSpace(data)
	var specs []cloud.ItemSpec
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("parse tags: %w", err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse tags: %w", err)
		}
		specs = doc.Items
	}
	if len(specs) == 0 {
		return nil, ErrEmpty
	}
	return specs, nil
}

// Load reads a tags file. Relative image paths are taken relative to the
// file's directory.
func Load(path string) ([]cloud.ItemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	specs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range specs {
		if img := specs[i].Image; img != "" && !filepath.IsAbs(img) {
			specs[i].Image = filepath.Join(dir, img)
		}
	}
	return specs, nil
}

// Default is the set shown when no tags file is given.
func Default() []cloud.ItemSpec {
	labels := []string{
		"Go", "ebiten", "beep", "sphere", "rotation", "projection",
		"opacity", "tween", "scheduler", "layout", "tooltip", "palette",
		"goroutine", "channel", "interface", "context", "module", "vector",
	}
	specs := make([]cloud.ItemSpec, len(labels))
	for i, l := range labels {
		specs[i] = cloud.ItemSpec{Label: l, Tooltip: "#" + l}
	}
	specs[0].URL = "https://go.dev"
	specs[0].Target = "_blank"
	specs[0].FontSize = "20"
	specs[0].FontWeight = "bold"
	return specs
}
