// Package cli implements the commands of the filesmanager client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/filesmanager/internal/client/iocli"
	"github.com/iudanet/filesmanager/internal/client/storage"
	"github.com/iudanet/filesmanager/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient

// APIClient is the subset of the HTTP client the commands rely on.
type APIClient interface {
	SetToken(token string)
	Status(ctx context.Context) (*api.StatusResponse, error)
	Stats(ctx context.Context) (*api.StatsResponse, error)
	Register(ctx context.Context, email, password string) (*api.UserResponse, error)
	Connect(ctx context.Context, email, password string) (string, error)
	Disconnect(ctx context.Context) error
	Me(ctx context.Context) (*api.UserResponse, error)
	CreateFile(ctx context.Context, req api.CreateFileRequest) (*api.File, error)
	GetFile(ctx context.Context, id string) (*api.File, error)
	ListFiles(ctx context.Context, parentID string, page int) ([]api.File, error)
	Publish(ctx context.Context, id string) (*api.File, error)
	Unpublish(ctx context.Context, id string) (*api.File, error)
	Download(ctx context.Context, id, size string) ([]byte, string, error)
}

// ErrNotLoggedIn возвращается командами, которым нужна сессия
var ErrNotLoggedIn = errors.New("not logged in, run 'login' first")

type Cli struct {
	io     iocli.IO
	client APIClient
	store  storage.AuthStorage
	now    func() time.Time
	server string
}

// New creates the command runner bound to one server URL.
func New(io iocli.IO, client APIClient, store storage.AuthStorage, server string) *Cli {
	return &Cli{
		io:     io,
		client: client,
		store:  store,
		server: server,
		now:    time.Now,
	}
}

// requireSession подставляет сохраненный токен в клиент
func (c *Cli) requireSession(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.store.GetAuth(ctx, c.server)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	c.client.SetToken(auth.Token)
	return auth, nil
}

func (c *Cli) printFile(f *api.File) {
	c.io.Printf("ID:        %s\n", f.ID)
	c.io.Printf("Name:      %s\n", f.Name)
	c.io.Printf("Type:      %s\n", f.Type)
	c.io.Printf("Parent:    %s\n", f.ParentID)
	c.io.Printf("Public:    %t\n", f.IsPublic)
}

func (c *Cli) readPassword(prompt string) (string, error) {
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
