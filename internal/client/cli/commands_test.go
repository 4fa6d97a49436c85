package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filesmanager/internal/client/iocli"
	"github.com/iudanet/filesmanager/pkg/api"
)

type openRecorder struct {
	client *APIClientMock
	server string
	dbPath string
	closed int
}

func (o *openRecorder) open(t *testing.T) Opener {
	return func(ctx context.Context, io iocli.IO, server, dbPath string) (*Cli, func() error, error) {
		o.server = server
		o.dbPath = dbPath
		store := newTestStore(t)
		loggedIn(t, store)
		c := New(io, o.client, store, testServer)
		return c, func() error {
			o.closed++
			return nil
		}, nil
	}
}

func execute(t *testing.T, rec *openRecorder, out *bytes.Buffer, args ...string) error {
	t.Helper()

	root := NewRootCommand(newTestIO(out), VersionInfo{Version: "1.2.3", BuildDate: "today", GitCommit: "abc"}, rec.open(t))
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestRootCommand_Version(t *testing.T) {
	var out bytes.Buffer
	rec := &openRecorder{client: &APIClientMock{}}

	require.NoError(t, execute(t, rec, &out, "--version"))
	assert.Contains(t, out.String(), "Version: 1.2.3")
	assert.Contains(t, out.String(), "Git commit: abc")
	assert.Zero(t, rec.closed)
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	var out bytes.Buffer
	client, _ := newTokenRecorder()
	client.MeFunc = func(ctx context.Context) (*api.UserResponse, error) {
		return &api.UserResponse{ID: "u1", Email: "bob@dwarves.com"}, nil
	}
	rec := &openRecorder{client: client}

	require.NoError(t, execute(t, rec, &out, "--server", "http://other:9000", "--db", "/tmp/x.db", "whoami"))
	assert.Equal(t, "http://other:9000", rec.server)
	assert.Equal(t, "/tmp/x.db", rec.dbPath)
	assert.Equal(t, 1, rec.closed)
}

func TestRootCommand_Defaults(t *testing.T) {
	t.Setenv("FILESMANAGER_SERVER", "")
	t.Setenv("FILESMANAGER_DB", "")

	client, _ := newTokenRecorder()
	client.MeFunc = func(ctx context.Context) (*api.UserResponse, error) {
		return &api.UserResponse{ID: "u1"}, nil
	}
	rec := &openRecorder{client: client}

	require.NoError(t, execute(t, rec, &bytes.Buffer{}, "whoami"))
	assert.Equal(t, DefaultServer, rec.server)
	assert.Equal(t, DefaultDBPath, rec.dbPath)
}

func TestRootCommand_EnvServer(t *testing.T) {
	t.Setenv("FILESMANAGER_SERVER", "http://env:7000")

	client, _ := newTokenRecorder()
	client.MeFunc = func(ctx context.Context) (*api.UserResponse, error) {
		return &api.UserResponse{ID: "u1"}, nil
	}
	rec := &openRecorder{client: client}

	require.NoError(t, execute(t, rec, &bytes.Buffer{}, "whoami"))
	assert.Equal(t, "http://env:7000", rec.server)
}

func TestRootCommand_CommandFlags(t *testing.T) {
	client, _ := newTokenRecorder()
	client.ListFilesFunc = func(ctx context.Context, parentID string, page int) ([]api.File, error) {
		return nil, nil
	}
	client.DownloadFunc = func(ctx context.Context, id, size string) ([]byte, string, error) {
		return []byte("x"), "text/plain", nil
	}
	rec := &openRecorder{client: client}

	require.NoError(t, execute(t, rec, &bytes.Buffer{}, "ls", "--parent", "p1", "--page", "3"))
	require.Len(t, client.ListFilesCalls(), 1)
	assert.Equal(t, "p1", client.ListFilesCalls()[0].ParentID)
	assert.Equal(t, 3, client.ListFilesCalls()[0].Page)

	require.NoError(t, execute(t, rec, &bytes.Buffer{}, "download", "f1", "--size", "250"))
	require.Len(t, client.DownloadCalls(), 1)
	assert.Equal(t, "250", client.DownloadCalls()[0].Size)
}

func TestRootCommand_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "register without email", args: []string{"register"}},
		{name: "info without id", args: []string{"info"}},
		{name: "logout with extra arg", args: []string{"logout", "x"}},
		{name: "negative page", args: []string{"ls", "--page", "-1"}},
		{name: "unknown command", args: []string{"rm", "f1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTokenRecorder()
			rec := &openRecorder{client: client}
			assert.Error(t, execute(t, rec, &bytes.Buffer{}, tt.args...))
		})
	}
}

func TestRootCommand_CloseOnError(t *testing.T) {
	client, _ := newTokenRecorder()
	client.PublishFunc = func(ctx context.Context, id string) (*api.File, error) {
		return nil, errors.New("boom")
	}
	rec := &openRecorder{client: client}

	err := execute(t, rec, &bytes.Buffer{}, "publish", "f1")
	require.Error(t, err)
	assert.Equal(t, 1, rec.closed)
}
