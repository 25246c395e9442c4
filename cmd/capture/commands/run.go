package commands

import (
	"github.com/spf13/cobra"

	"github.com/opencapture/opencapture/pkg/controls"
	"github.com/opencapture/opencapture/pkg/script"
	"github.com/opencapture/opencapture/pkg/session"
	"github.com/opencapture/opencapture/pkg/telemetry"
)

func newRunCommand() *cobra.Command {
	var frames uint

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a simulated capture session over a script",
		Long: `Compile a capture script and drive a capture session over it. Each
frame's request is stamped with the controls the script sets for that frame
and handed to the session sink. Without a device attached the sink logs the
queued requests.`,
		Example: `  # Capture 100 frames with scripted controls
  capture run --frames 100 session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			path := args[0]
			logger = telemetry.WithScript(logger, path)

			s, err := script.Load(path, controls.DefaultCatalog(), logger)
			if err != nil {
				return err
			}

			sess, err := session.New(s, &session.LogSink{Logger: logger}, session.Options{
				Frames: frames,
			}, logger)
			if err != nil {
				return err
			}

			return sess.Run(cmd.Context())
		},
	}

	cmd.Flags().UintVar(&frames, "frames", 100, "number of frames to capture")

	return cmd
}
