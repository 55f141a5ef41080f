package tags

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Pick asks the user for a tags file. A cancelled dialog returns "" and no
// error.
func Pick() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Tags File"),
		zenity.FileFilters{{
			Name:     "Tags",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
