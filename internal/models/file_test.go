package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileType_Valid(t *testing.T) {
	tests := []struct {
		fileType   FileType
		valid      bool
		hasContent bool
	}{
		{FileTypeFolder, true, false},
		{FileTypeFile, true, true},
		{FileTypeImage, true, true},
		{FileType("video"), false, false},
		{FileType(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.fileType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.fileType.Valid())
			assert.Equal(t, tt.hasContent, tt.fileType.HasContent())
		})
	}
}

func TestParseParentRef(t *testing.T) {
	assert.True(t, ParseParentRef("").IsRoot())
	assert.True(t, ParseParentRef("0").IsRoot())

	ref := ParseParentRef("abc")
	assert.False(t, ref.IsRoot())
	assert.Equal(t, "abc", ref.ID())
	assert.Equal(t, "abc", ref.String())
	assert.Equal(t, "0", RootParent().String())
}

func TestParentRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRoot bool
		wantID   string
		wantErr  bool
	}{
		{name: "number zero", input: `0`, wantRoot: true},
		{name: "string zero", input: `"0"`, wantRoot: true},
		{name: "empty string", input: `""`, wantRoot: true},
		{name: "null", input: `null`, wantRoot: true},
		{name: "folder id", input: `"5f1e"`, wantID: "5f1e"},
		{name: "other number", input: `12`, wantID: "12"},
		{name: "negative number", input: `-3`, wantID: "-3"},
		{name: "float zero", input: `0.0`, wantRoot: true},
		{name: "bool", input: `true`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref ParentRef
			err := json.Unmarshal([]byte(tt.input), &ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, ref.IsRoot())
			assert.Equal(t, tt.wantID, ref.ID())
		})
	}
}

func TestParentRef_MissingFieldIsRoot(t *testing.T) {
	var req struct {
		ParentID ParentRef `json:"parentId"`
		Name     string    `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &req))
	assert.True(t, req.ParentID.IsRoot())
}

func TestFileNode_PublicProjection(t *testing.T) {
	node := &FileNode{
		ID:        "file-1",
		OwnerID:   "user-1",
		Name:      "photo.png",
		Type:      FileTypeImage,
		LocalPath: "/tmp/files_manager/secret",
		ParentID:  RootParent(),
		IsPublic:  true,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"file-1","userId":"user-1","name":"photo.png","type":"image","isPublic":true,"parentId":0}`, string(data))
	assert.NotContains(t, string(data), "secret")

	node.ParentID = ParentNode("folder-1")
	data, err = json.Marshal(node)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"parentId":"folder-1"`)
}

func TestFileNode_IsOwnedBy(t *testing.T) {
	node := &FileNode{OwnerID: "user-1"}
	assert.True(t, node.IsOwnedBy("user-1"))
	assert.False(t, node.IsOwnedBy("user-2"))
	assert.False(t, node.IsOwnedBy(""))
}

func TestNewThumbnailJob(t *testing.T) {
	job := NewThumbnailJob("u1", "f1")
	assert.Equal(t, "u1", job.UserID)
	assert.Equal(t, "f1", job.FileID)
	assert.Equal(t, "Image thumbnail [u1-f1]", job.Name)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
}
