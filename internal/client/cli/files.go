package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/pkg/api"
)

// createOptions общие флаги mkdir и upload
type createOptions struct {
	parent string
	public bool
	image  bool
}

func (c *Cli) runMkdir(ctx context.Context, name string, opts createOptions) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	file, err := c.client.CreateFile(ctx, api.CreateFileRequest{
		Name:     name,
		Type:     models.FileTypeFolder,
		ParentID: models.ParseParentRef(opts.parent),
		IsPublic: opts.public,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Folder created")
	c.printFile(file)
	return nil
}

func (c *Cli) runUpload(ctx context.Context, path string, opts createOptions) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	fileType := models.FileTypeFile
	if opts.image {
		fileType = models.FileTypeImage
	}

	file, err := c.client.CreateFile(ctx, api.CreateFileRequest{
		Name:     filepath.Base(path),
		Type:     fileType,
		Data:     base64.StdEncoding.EncodeToString(content),
		ParentID: models.ParseParentRef(opts.parent),
		IsPublic: opts.public,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Uploaded %d bytes\n", len(content))
	c.printFile(file)
	return nil
}

func (c *Cli) runList(ctx context.Context, parent string, page int) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	files, err := c.client.ListFiles(ctx, parent, page)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		c.io.Println("No files found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTYPE\tPUBLIC\tNAME")
	for _, f := range files {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", f.ID, f.Type, f.IsPublic, f.Name)
	}
	return tw.Flush()
}

func (c *Cli) runInfo(ctx context.Context, id string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	file, err := c.client.GetFile(ctx, id)
	if err != nil {
		return err
	}

	c.printFile(file)
	return nil
}

func (c *Cli) runPublish(ctx context.Context, id string, public bool) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	var (
		file *api.File
		err  error
	)
	if public {
		file, err = c.client.Publish(ctx, id)
	} else {
		file, err = c.client.Unpublish(ctx, id)
	}
	if err != nil {
		return err
	}

	c.printFile(file)
	return nil
}

func (c *Cli) runDownload(ctx context.Context, id, size, out string) error {
	// Публичные файлы доступны и без сессии
	if _, err := c.requireSession(ctx); err != nil && !errors.Is(err, ErrNotLoggedIn) {
		return err
	}

	data, contentType, err := c.client.Download(ctx, id, size)
	if err != nil {
		return err
	}

	if out == "" {
		_, err := c.io.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	c.io.Printf("✓ Saved %d bytes (%s) to %s\n", len(data), contentType, out)
	return nil
}
