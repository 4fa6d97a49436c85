package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FileType тип узла файловой иерархии
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// Valid reports whether t is one of the known node kinds.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// HasContent reports whether nodes of this type carry an on-disk payload.
func (t FileType) HasContent() bool {
	return t == FileTypeFile || t == FileTypeImage
}

// RootParentID is the wire and query-string form of the root sentinel.
const RootParentID = "0"

// ParentRef references the parent of a node: either the root or an existing folder.
// The zero value is the root.
type ParentRef struct {
	id string
}

// RootParent returns the reference to the top level.
func RootParent() ParentRef {
	return ParentRef{}
}

// ParentNode returns a reference to the folder with the given id.
func ParentNode(id string) ParentRef {
	return ParentRef{id: id}
}

// ParseParentRef converts the loosely typed wire value into a ParentRef.
// Empty string and "0" denote the root.
func ParseParentRef(s string) ParentRef {
	if s == "" || s == RootParentID {
		return RootParent()
	}
	return ParentNode(s)
}

// IsRoot reports whether the reference points at the top level.
func (p ParentRef) IsRoot() bool {
	return p.id == ""
}

// ID returns the parent folder id, empty for the root.
func (p ParentRef) ID() string {
	return p.id
}

func (p ParentRef) String() string {
	if p.IsRoot() {
		return RootParentID
	}
	return p.id
}

// MarshalJSON encodes the root as the number 0 and folders as their id string.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(p.id)
}

// UnmarshalJSON accepts 0, "0", "", null or a folder id given as a string or a number.
// Any numeric zero is the root; other numbers are kept as ids and fail the parent lookup.
func (p *ParentRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = RootParent()
		return nil
	}

	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid parentId: %s", string(data))
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*p = RootParent()
			return nil
		}
		*p = ParentNode(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid parentId: %s", string(data))
	}

	*p = ParseParentRef(s)
	return nil
}

// FileNode представляет папку, файл или изображение пользователя.
// LocalPath заполнен только для типов с содержимым и никогда не отдается клиенту.
type FileNode struct {
	CreatedAt time.Time `json:"-"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"userId"`
	Name      string    `json:"name"`
	Type      FileType  `json:"type"`
	LocalPath string    `json:"-"`
	ParentID  ParentRef `json:"parentId"`
	IsPublic  bool      `json:"isPublic"`
}

// IsOwnedBy reports whether userID owns the node.
func (f *FileNode) IsOwnedBy(userID string) bool {
	return userID != "" && f.OwnerID == userID
}

// ThumbnailJob описывает задание на генерацию миниатюр для загруженного изображения
type ThumbnailJob struct {
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"userId"`
	FileID    string    `json:"fileId"`
	Name      string    `json:"name"`
}

// NewThumbnailJob builds the job descriptor for an uploaded image.
func NewThumbnailJob(userID, fileID string) *ThumbnailJob {
	return &ThumbnailJob{
		UserID:    userID,
		FileID:    fileID,
		Name:      fmt.Sprintf("Image thumbnail [%s-%s]", userID, fileID),
		CreatedAt: time.Now(),
	}
}
