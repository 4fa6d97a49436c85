package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	clientapi "github.com/iudanet/filesmanager/internal/client/api"
	"github.com/iudanet/filesmanager/internal/client/iocli"
	"github.com/iudanet/filesmanager/internal/client/storage/boltdb"
)

const (
	// DefaultServer адрес сервера по умолчанию
	DefaultServer = "http://localhost:5000"
	// DefaultDBPath путь к локальной базе по умолчанию
	DefaultDBPath = "filesmanager-client.db"

	envPrefix = "FILESMANAGER"
)

// VersionInfo is printed by --version.
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Opener builds a Cli for the given server and local database.
// The returned func releases what was opened.
type Opener func(ctx context.Context, io iocli.IO, server, dbPath string) (*Cli, func() error, error)

// OpenDefault opens the BoltDB session store and the HTTP client.
func OpenDefault(ctx context.Context, io iocli.IO, server, dbPath string) (*Cli, func() error, error) {
	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return New(io, clientapi.NewClient(server), store, server), store.Close, nil
}

// NewRootCommand builds the command tree.
// Global flags may also come from FILESMANAGER_SERVER and FILESMANAGER_DB.
func NewRootCommand(io iocli.IO, info VersionInfo, open Opener) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "filesmanager",
		Short:         "Client for the filesmanager storage server",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(io)
	root.SetVersionTemplate(fmt.Sprintf("Version: %s\nBuild date: %s\nGit commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))

	root.PersistentFlags().String("server", DefaultServer, "server URL")
	root.PersistentFlags().String("db", DefaultDBPath, "path to local database")
	_ = v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("db", root.PersistentFlags().Lookup("db"))

	// withCli открывает зависимости на время одной команды
	var withCli runner = func(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) (err error) {
			c, closeFn, err := open(cmd.Context(), io, v.GetString("server"), v.GetString("db"))
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, closeFn())
			}()
			return fn(cmd.Context(), c, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show server health and counters",
			Args:  cobra.NoArgs,
			RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runStatus(ctx)
			}),
		},
		&cobra.Command{
			Use:   "register <email>",
			Short: "Create an account",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runRegister(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "login <email>",
			Short: "Open a session and store its token locally",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runLogin(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Close the session",
			Args:  cobra.NoArgs,
			RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runLogout(ctx)
			}),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the current user",
			Args:  cobra.NoArgs,
			RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runWhoami(ctx)
			}),
		},
		newMkdirCommand(withCli),
		newUploadCommand(withCli),
		newListCommand(withCli),
		&cobra.Command{
			Use:   "info <id>",
			Short: "Show file metadata",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runInfo(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "publish <id>",
			Short: "Make a file public",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runPublish(ctx, args[0], true)
			}),
		},
		&cobra.Command{
			Use:   "unpublish <id>",
			Short: "Make a file private",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runPublish(ctx, args[0], false)
			}),
		},
		newDownloadCommand(withCli),
	)

	return root
}

type runner func(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error

func newMkdirCommand(withCli runner) *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
			return c.runMkdir(ctx, args[0], opts)
		}),
	}
	cmd.Flags().StringVar(&opts.parent, "parent", "", "parent folder id (root if empty)")
	cmd.Flags().BoolVar(&opts.public, "public", false, "make the folder public")
	return cmd
}

func newUploadCommand(withCli runner) *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
			return c.runUpload(ctx, args[0], opts)
		}),
	}
	cmd.Flags().StringVar(&opts.parent, "parent", "", "parent folder id (root if empty)")
	cmd.Flags().BoolVar(&opts.public, "public", false, "make the file public")
	cmd.Flags().BoolVar(&opts.image, "image", false, "upload as image and request thumbnails")
	return cmd
}

func newListCommand(withCli runner) *cobra.Command {
	var (
		parent string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List files of a folder",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
			if page < 0 {
				return fmt.Errorf("invalid page: %d", page)
			}
			return c.runList(ctx, parent, page)
		}),
	}
	cmd.Flags().StringVar(&parent, "parent", "", "folder id (root if empty)")
	cmd.Flags().IntVar(&page, "page", 0, "page number, 20 entries per page")
	return cmd
}

func newDownloadCommand(withCli runner) *cobra.Command {
	var size, out string
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download file content",
		Args:  cobra.ExactArgs(1),
		RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
			return c.runDownload(ctx, args[0], size, out)
		}),
	}
	cmd.Flags().StringVar(&size, "size", "", "thumbnail width: 500, 250 or 100")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}
