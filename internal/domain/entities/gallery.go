package entities

import "time"

// ImageFolder is one node of the gallery folder tree. The tree is a simple
// self-referential parent pointer; Path materializes the slash-joined chain
// of folder names for breadcrumb reconstruction and storage prefixes.
//
// An empty ParentID means the folder hangs off the root. The root itself is
// implicit and has no record.
//
// Storage model (DynamoDB):
//   - PK: id

type ImageFolder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageAsset is the metadata row of one stored image. The blob lives in the
// object store under StoragePath; deleting the owning folder reassigns the
// image to the root instead of cascading.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (folder_id-index): folder_id

type ImageAsset struct {
	ID           string    `json:"id"`
	FolderID     string    `json:"folder_id,omitempty"`
	Name         string    `json:"name"`
	AltText      string    `json:"alt_text,omitempty"`
	Description  string    `json:"description,omitempty"`
	StoragePath  string    `json:"storage_path"`
	ContentType  string    `json:"content_type,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	SizeBytes    int64     `json:"size_bytes,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
