package api

import "github.com/iudanet/filesmanager/internal/models"

// CreateFileRequest представляет запрос POST /files
type CreateFileRequest struct {
	Name     string           `json:"name"`
	Type     models.FileType  `json:"type"`
	Data     string           `json:"data,omitempty"`     // base64 содержимое для file и image
	ParentID models.ParentRef `json:"parentId"`           // 0 или отсутствует для корня
	IsPublic bool             `json:"isPublic,omitempty"` // по умолчанию false
}

// File публичная проекция узла (без пути на диске)
type File struct {
	ID       string           `json:"id"`
	UserID   string           `json:"userId"`
	Name     string           `json:"name"`
	Type     models.FileType  `json:"type"`
	ParentID models.ParentRef `json:"parentId"`
	IsPublic bool             `json:"isPublic"`
}

// NewFile builds the public projection of node.
func NewFile(node *models.FileNode) File {
	return File{
		ID:       node.ID,
		UserID:   node.OwnerID,
		Name:     node.Name,
		Type:     node.Type,
		ParentID: node.ParentID,
		IsPublic: node.IsPublic,
	}
}

// NewFiles builds projections for a page of nodes; never returns nil.
func NewFiles(nodes []*models.FileNode) []File {
	files := make([]File, 0, len(nodes))
	for _, n := range nodes {
		files = append(files, NewFile(n))
	}
	return files
}
