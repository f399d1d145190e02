package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/release-server/internal/service/publisher"
)

func newPublishCommand() *cobra.Command {
	opts := new(publisher.PublishOptions)

	command := &cobra.Command{
		Use:   "publish [platform] [arch] [channel] [version] [artifact-url]",
		Short: "Publish a release",
		Long: `Registers a release with the server.

The checksum is computed locally as a SHA-512 digest of --artifact, or taken
verbatim from --checksum. The artifact itself is never uploaded: make it
available at artifact-url before or right after publishing.`,
		Args: cobra.ExactArgs(5), //nolint:mnd // Five positional arguments form the release key and URL.
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			opts.Target = target
			opts.Platform, opts.Arch, opts.Channel, opts.Version, opts.ArtifactURL = args[0], args[1], args[2], args[3], args[4]

			_, err := publisher.Publish(ctx, opts)

			return err
		},
	}

	flags := command.Flags()
	flags.StringVarP(&opts.ArtifactPath, "artifact", "a", "", "local artifact file to compute the checksum from")
	flags.StringVar(&opts.Checksum, "checksum", "", "precomputed checksum, e.g. sha256:<hex>")
	flags.StringVar(&opts.SignaturePath, "signature", "", "detached signature file")
	flags.StringVar(&opts.NotesPath, "notes", "", "release notes file")

	return command
}

func newRetractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retract [platform] [arch] [channel] [version]",
		Short: "Retract a release; retracting an unknown release succeeds",
		Args:  cobra.ExactArgs(4), //nolint:mnd // Four positional arguments form the release key.
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return publisher.Retract(ctx, &publisher.RetractOptions{
				Target:   target,
				Platform: args[0],
				Arch:     args[1],
				Channel:  args[2],
				Version:  args[3],
			})
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [platform] [arch] [channel] [current-version]",
		Short: "Show which release a client on current-version would be offered",
		Args:  cobra.ExactArgs(4), //nolint:mnd // Four positional arguments describe the client.
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			_, err := publisher.Check(ctx, &publisher.CheckOptions{
				Target:         target,
				Platform:       args[0],
				Arch:           args[1],
				Channel:        args[2],
				CurrentVersion: args[3],
			})

			return err
		},
	}
}
