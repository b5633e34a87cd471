package registry

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"pkt.systems/toterm/schema"
)

// RefreshStatuses marks each script whose path no longer exists as
// NotFound and returns how many were marked. Scripts whose path exists keep
// their current status. The filesystem is only probed, never modified.
func RefreshStatuses(fs afero.Fs, scripts []schema.Script) int {
	missing := 0
	for i := range scripts {
		if _, err := fs.Stat(scripts[i].Path); err != nil && errors.Is(err, os.ErrNotExist) {
			scripts[i].MarkNotFound()
			missing++
		}
	}
	return missing
}
