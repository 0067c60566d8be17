package response

import (
	"time"

	"portfolio_studio/internal/domain/entities"
)

// FolderResponse is one node of the gallery tree, nested children included.
type FolderResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ParentID  string           `json:"parent_id,omitempty"`
	Path      string           `json:"path"`
	CreatedAt time.Time        `json:"created_at"`
	Children  []FolderResponse `json:"children"`
}

// BuildFolderTree assembles the flat folder list into the nested tree the
// admin gallery renders. Orphaned nodes (dangling parent id) surface at the
// root rather than disappearing.
func BuildFolderTree(folders []entities.ImageFolder) []FolderResponse {
	children := make(map[string][]entities.ImageFolder, len(folders))
	byID := make(map[string]bool, len(folders))
	for _, f := range folders {
		byID[f.ID] = true
	}

	roots := make([]entities.ImageFolder, 0)
	for _, f := range folders {
		if f.ParentID == "" || !byID[f.ParentID] {
			roots = append(roots, f)
			continue
		}
		children[f.ParentID] = append(children[f.ParentID], f)
	}

	var build func(f entities.ImageFolder) FolderResponse
	build = func(f entities.ImageFolder) FolderResponse {
		node := FolderResponse{
			ID:        f.ID,
			Name:      f.Name,
			ParentID:  f.ParentID,
			Path:      f.Path,
			CreatedAt: f.CreatedAt,
			Children:  []FolderResponse{},
		}
		for _, child := range children[f.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	out := make([]FolderResponse, 0, len(roots))
	for _, f := range roots {
		out = append(out, build(f))
	}
	return out
}

type ImageResponse struct {
	ID           string    `json:"id"`
	FolderID     string    `json:"folder_id,omitempty"`
	Name         string    `json:"name"`
	AltText      string    `json:"alt_text,omitempty"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	SizeBytes    int64     `json:"size_bytes,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromImage(img entities.ImageAsset, url string) ImageResponse {
	return ImageResponse{
		ID:           img.ID,
		FolderID:     img.FolderID,
		Name:         img.Name,
		AltText:      img.AltText,
		Description:  img.Description,
		URL:          url,
		ContentType:  img.ContentType,
		Width:        img.Width,
		Height:       img.Height,
		SizeBytes:    img.SizeBytes,
		DisplayOrder: img.DisplayOrder,
		CreatedAt:    img.CreatedAt,
		UpdatedAt:    img.UpdatedAt,
	}
}
