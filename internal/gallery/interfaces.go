package gallery

import (
	"context"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// Lister fetches the stored file list from the server.
type Lister interface {
	List(ctx context.Context) ([]model.FileItem, error)
}
