package ports

import "mime/multipart"

// ImageStoragePort stores an uploaded motorbike avatar under the given
// id and returns the public URL of the stored file.
type ImageStoragePort interface {
	SaveImage(file *multipart.FileHeader, id string) (string, error)
}
