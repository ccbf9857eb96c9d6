package entity

// FileMetadata describes an uploaded file.
type FileMetadata struct {
	Name string
	Type string
	Size int64
}
