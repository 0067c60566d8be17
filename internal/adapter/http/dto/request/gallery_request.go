package request

type FolderRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id"`
}

type ImageMetadataRequest struct {
	Name        string `json:"name" binding:"required"`
	AltText     string `json:"alt_text"`
	Description string `json:"description"`
}

type ImageMoveRequest struct {
	TargetFolderID string `json:"target_folder_id"`
}

type ImageRenameRequest struct {
	FileName string `json:"file_name" binding:"required"`
}
