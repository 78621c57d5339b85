package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/gallery"
)

// galleryCommand creates the gallery command serving rendered runs over HTTP.
func (c *CLI) galleryCommand() *cobra.Command {
	var (
		addr string
		root string
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Serve rendered runs over HTTP",
		Long: `Serve rendered runs over HTTP.

The server scans the artifact root on every request, so new renders
appear on reload without a restart. The pages are read-only: an index
of runs, a page per run with thumbnails, and the raw artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGallery(cmd.Context(), addr, root)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.GalleryAddr, "listen address")
	cmd.Flags().StringVar(&root, "root", c.Config.OutDir, "artifact root directory")

	return cmd
}

// runGallery starts the server and blocks until the context is cancelled or
// the listener fails.
func (c *CLI) runGallery(ctx context.Context, addr, root string) error {
	app, err := gallery.NewApp(root, c.Logger)
	if err != nil {
		return err
	}

	printInfo("Serving gallery at %s", StyleLink.Render("http://"+addr))
	printDetail("Artifact root: %s", root)
	printDetail("Press Ctrl+C to stop")
	printNewline()

	return app.ListenAndServe(ctx, addr)
}
