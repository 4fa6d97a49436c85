package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filesmanager/internal/logging"
	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/content"
	"github.com/iudanet/filesmanager/internal/server/storage"
)

// mockFileStorage is an in-memory FileStorage preserving insertion order
type mockFileStorage struct {
	createErr error
	nodes     []*models.FileNode
	seq       int
	mu        sync.Mutex
}

func (m *mockFileStorage) CreateFile(ctx context.Context, file *models.FileNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	file.ID = fmt.Sprintf("node-%03d", m.seq)
	file.CreatedAt = time.Now()
	copied := *file
	m.nodes = append(m.nodes, &copied)
	return nil
}

func (m *mockFileStorage) find(id string) *models.FileNode {
	for _, n := range m.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (m *mockFileStorage) GetFileByID(ctx context.Context, id string) (*models.FileNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.find(id)
	if n == nil {
		return nil, storage.ErrFileNotFound
	}
	copied := *n
	return &copied, nil
}

func (m *mockFileStorage) GetUserFile(ctx context.Context, id, ownerID string) (*models.FileNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.find(id)
	if n == nil || n.OwnerID != ownerID {
		return nil, storage.ErrFileNotFound
	}
	copied := *n
	return &copied, nil
}

func (m *mockFileStorage) ListUserFiles(ctx context.Context, ownerID string, parent models.ParentRef, limit, offset int) ([]*models.FileNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []*models.FileNode
	for _, n := range m.nodes {
		if n.OwnerID == ownerID && n.ParentID == parent {
			copied := *n
			matched = append(matched, &copied)
		}
	}
	if offset >= len(matched) {
		return []*models.FileNode{}, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], nil
}

func (m *mockFileStorage) SetFilePublic(ctx context.Context, id, ownerID string, isPublic bool) (*models.FileNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.find(id)
	if n == nil || n.OwnerID != ownerID {
		return nil, storage.ErrFileNotFound
	}
	n.IsPublic = isPublic
	copied := *n
	return &copied, nil
}

func (m *mockFileStorage) CountFiles(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.nodes)), nil
}

type mockDispatcher struct {
	calls [][2]string
}

func (m *mockDispatcher) DispatchThumbnail(ctx context.Context, userID, fileID string) {
	m.calls = append(m.calls, [2]string{userID, fileID})
}

type serviceFixture struct {
	service    *Service
	storage    *mockFileStorage
	content    *content.Store
	dispatcher *mockDispatcher
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	store, err := content.NewStore(logging.Discard(), t.TempDir())
	require.NoError(t, err)

	f := &serviceFixture{
		storage:    &mockFileStorage{},
		content:    store,
		dispatcher: &mockDispatcher{},
	}
	f.service = NewService(logging.Discard(), f.storage, f.content, f.dispatcher)
	return f
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestService_Create_Validation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	folder, err := f.service.Create(ctx, "bob", CreateParams{Name: "images", Type: models.FileTypeFolder})
	require.NoError(t, err)
	file, err := f.service.Create(ctx, "bob", CreateParams{Name: "a.txt", Type: models.FileTypeFile, Data: encode("a")})
	require.NoError(t, err)
	foreign, err := f.service.Create(ctx, "alice", CreateParams{Name: "alice", Type: models.FileTypeFolder})
	require.NoError(t, err)

	tests := []struct {
		wantErr error
		params  CreateParams
		name    string
	}{
		{name: "missing name", params: CreateParams{Type: models.FileTypeFolder}, wantErr: ErrMissingName},
		{name: "missing type", params: CreateParams{Name: "x"}, wantErr: ErrMissingType},
		{name: "unknown type", params: CreateParams{Name: "x", Type: "video"}, wantErr: ErrMissingType},
		{name: "file without data", params: CreateParams{Name: "x", Type: models.FileTypeFile}, wantErr: ErrMissingData},
		{name: "image without data", params: CreateParams{Name: "x", Type: models.FileTypeImage}, wantErr: ErrMissingData},
		{name: "invalid base64", params: CreateParams{Name: "x", Type: models.FileTypeFile, Data: "%%%"}, wantErr: ErrInvalidData},
		{name: "folder under missing parent", params: CreateParams{Name: "x", Type: models.FileTypeFolder, ParentID: models.ParentNode("nope")}, wantErr: ErrParentNotFound},
		{name: "file under missing parent", params: CreateParams{Name: "x", Type: models.FileTypeFile, Data: encode("x"), ParentID: models.ParentNode("nope")}, wantErr: ErrParentNotFound},
		{name: "image under missing parent", params: CreateParams{Name: "x", Type: models.FileTypeImage, Data: encode("x"), ParentID: models.ParentNode("nope")}, wantErr: ErrParentNotFound},
		{name: "parent is a file", params: CreateParams{Name: "x", Type: models.FileTypeFolder, ParentID: models.ParentNode(file.ID)}, wantErr: ErrParentNotFolder},
		{name: "parent of another user", params: CreateParams{Name: "x", Type: models.FileTypeFolder, ParentID: models.ParentNode(foreign.ID)}, wantErr: ErrParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := f.service.Create(ctx, "bob", tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, node)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	child, err := f.service.Create(ctx, "bob", CreateParams{Name: "x", Type: models.FileTypeFolder, ParentID: models.ParentNode(folder.ID)})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, child.ParentID.ID())
}

func TestService_Create_FolderHasNoContentPath(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "bob", CreateParams{Name: "images", Type: models.FileTypeFolder, Data: encode("ignored")})
	require.NoError(t, err)

	got, err := f.service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FileTypeFolder, got.Type)
	assert.Empty(t, got.LocalPath)
	assert.True(t, got.ParentID.IsRoot())

	entries, _ := os.ReadDir(f.content.Root())
	assert.Empty(t, entries)
}

func TestService_Create_FileRoundTrip(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	payload := "Hello Webstack!\n"
	created, err := f.service.Create(ctx, "bob", CreateParams{Name: "hello.txt", Type: models.FileTypeFile, Data: encode(payload), IsPublic: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.LocalPath)
	assert.True(t, created.IsPublic)
	assert.NotContains(t, created.LocalPath, "hello.txt")
	assert.Empty(t, f.dispatcher.calls)

	c, err := f.service.ReadContent(ctx, created.ID, &models.User{ID: "bob"}, "")
	require.NoError(t, err)
	assert.Equal(t, []byte(payload), c.Data)
	assert.Contains(t, c.ContentType, "text/plain")
}

func TestService_Create_ImageDispatchesThumbnail(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Create(context.Background(), "bob", CreateParams{Name: "cat.png", Type: models.FileTypeImage, Data: encode("png")})
	require.NoError(t, err)

	require.Len(t, f.dispatcher.calls, 1)
	assert.Equal(t, [2]string{"bob", created.ID}, f.dispatcher.calls[0])
}

func TestService_Create_StorageFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.storage.createErr = errors.New("disk full")

	_, err := f.service.Create(context.Background(), "bob", CreateParams{Name: "cat.png", Type: models.FileTypeImage, Data: encode("png")})
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Empty(t, f.dispatcher.calls)
}

func TestService_GetOwned(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "bob", CreateParams{Name: "docs", Type: models.FileTypeFolder})
	require.NoError(t, err)

	got, err := f.service.GetOwned(ctx, created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.service.GetOwned(ctx, created.ID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.GetOwned(ctx, "missing", "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_Pagination(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created := make(map[string]bool)
	for i := range 25 {
		node, err := f.service.Create(ctx, "bob", CreateParams{Name: fmt.Sprintf("folder %d", i), Type: models.FileTypeFolder})
		require.NoError(t, err)
		created[node.ID] = true
	}
	_, err := f.service.Create(ctx, "alice", CreateParams{Name: "alice", Type: models.FileTypeFolder})
	require.NoError(t, err)

	page0, err := f.service.List(ctx, "bob", models.RootParent(), 0)
	require.NoError(t, err)
	page1, err := f.service.List(ctx, "bob", models.RootParent(), 1)
	require.NoError(t, err)
	page2, err := f.service.List(ctx, "bob", models.RootParent(), 2)
	require.NoError(t, err)

	assert.Len(t, page0, PageSize)
	assert.Len(t, page1, 5)
	assert.Empty(t, page2)

	seen := make(map[string]bool)
	for _, n := range append(page0, page1...) {
		assert.False(t, seen[n.ID], "duplicate %s", n.ID)
		seen[n.ID] = true
	}
	assert.Equal(t, created, seen)

	again, err := f.service.List(ctx, "bob", models.RootParent(), 0)
	require.NoError(t, err)
	for i := range page0 {
		assert.Equal(t, page0[i].ID, again[i].ID)
	}

	negative, err := f.service.List(ctx, "bob", models.RootParent(), -3)
	require.NoError(t, err)
	assert.Equal(t, page0[0].ID, negative[0].ID)
}

func TestService_List_HugePageIsEmpty(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	for i := range 25 {
		_, err := f.service.Create(ctx, "bob", CreateParams{Name: fmt.Sprintf("folder %d", i), Type: models.FileTypeFolder})
		require.NoError(t, err)
	}

	for _, page := range []int{math.MaxInt/PageSize + 1, math.MaxInt} {
		nodes, err := f.service.List(ctx, "bob", models.RootParent(), page)
		require.NoError(t, err)
		assert.NotNil(t, nodes)
		assert.Empty(t, nodes, "page %d", page)
	}

	last, err := f.service.List(ctx, "bob", models.RootParent(), math.MaxInt/PageSize)
	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestService_List_RootIsExactMatch(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	folder, err := f.service.Create(ctx, "bob", CreateParams{Name: "docs", Type: models.FileTypeFolder})
	require.NoError(t, err)
	_, err = f.service.Create(ctx, "bob", CreateParams{Name: "a.txt", Type: models.FileTypeFile, Data: encode("a"), ParentID: models.ParentNode(folder.ID)})
	require.NoError(t, err)

	root, err := f.service.List(ctx, "bob", models.RootParent(), 0)
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.Equal(t, folder.ID, root[0].ID)

	children, err := f.service.List(ctx, "bob", models.ParentNode(folder.ID), 0)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "a.txt", children[0].Name)
}

func TestService_SetVisibility(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "bob", CreateParams{Name: "a.txt", Type: models.FileTypeFile, Data: encode("a")})
	require.NoError(t, err)

	_, err = f.service.SetVisibility(ctx, created.ID, "alice", true)
	assert.ErrorIs(t, err, ErrNotFound)

	reread, err := f.service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reread.IsPublic)

	updated, err := f.service.SetVisibility(ctx, created.ID, "bob", true)
	require.NoError(t, err)
	assert.True(t, updated.IsPublic)

	updated, err = f.service.SetVisibility(ctx, created.ID, "bob", false)
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)

	_, err = f.service.SetVisibility(ctx, "missing", "bob", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ReadContent_Authorization(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	private, err := f.service.Create(ctx, "bob", CreateParams{Name: "secret.txt", Type: models.FileTypeFile, Data: encode("secret")})
	require.NoError(t, err)
	public, err := f.service.Create(ctx, "bob", CreateParams{Name: "public.txt", Type: models.FileTypeFile, Data: encode("public"), IsPublic: true})
	require.NoError(t, err)
	privateFolder, err := f.service.Create(ctx, "bob", CreateParams{Name: "private", Type: models.FileTypeFolder})
	require.NoError(t, err)
	publicFolder, err := f.service.Create(ctx, "bob", CreateParams{Name: "public", Type: models.FileTypeFolder, IsPublic: true})
	require.NoError(t, err)

	bob := &models.User{ID: "bob"}
	alice := &models.User{ID: "alice"}

	tests := []struct {
		caller  *models.User
		wantErr error
		name    string
		id      string
		want    string
	}{
		{name: "private anonymous", id: private.ID, wantErr: ErrNotFound},
		{name: "private non-owner", id: private.ID, caller: alice, wantErr: ErrNotFound},
		{name: "private owner", id: private.ID, caller: bob, want: "secret"},
		{name: "public anonymous", id: public.ID, want: "public"},
		{name: "public non-owner", id: public.ID, caller: alice, want: "public"},
		{name: "private folder owner", id: privateFolder.ID, caller: bob, wantErr: ErrFolderHasNoContent},
		{name: "public folder anonymous", id: publicFolder.ID, wantErr: ErrFolderHasNoContent},
		{name: "private folder non-owner", id: privateFolder.ID, caller: alice, wantErr: ErrNotFound},
		{name: "missing", id: "missing", caller: bob, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := f.service.ReadContent(ctx, tt.id, tt.caller, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(c.Data))
		})
	}
}

func TestService_ReadContent_SizeVariants(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	bob := &models.User{ID: "bob"}

	image, err := f.service.Create(ctx, "bob", CreateParams{Name: "cat.png", Type: models.FileTypeImage, Data: encode("original")})
	require.NoError(t, err)

	_, err = f.service.ReadContent(ctx, image.ID, bob, "250")
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := f.storage.GetFileByID(ctx, image.ID)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(content.VariantPath(stored.LocalPath, "250"), []byte("thumb"), 0o600))

	c, err := f.service.ReadContent(ctx, image.ID, bob, "250")
	require.NoError(t, err)
	assert.Equal(t, "thumb", string(c.Data))
	assert.Equal(t, "image/png", c.ContentType)

	_, err = f.service.ReadContent(ctx, image.ID, bob, "../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentTypeOf(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeOf("cat.png"))
	assert.Equal(t, "application/octet-stream", ContentTypeOf("noext"))
	assert.Equal(t, "application/octet-stream", ContentTypeOf("weird.zzzunknown"))
}

func TestService_Count(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, "bob", CreateParams{Name: "docs", Type: models.FileTypeFolder})
	require.NoError(t, err)

	n, err := f.service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
