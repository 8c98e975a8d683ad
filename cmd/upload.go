package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image",
	Long: `Upload an image and print its URL. Attach the URL to a profile,
event, listing or post afterwards.

Examples:
  forumctl upload ./photo.jpg --type listing
  forumctl profile --avatar "$(forumctl upload ./me.png --type avatar --quiet)"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().String("type", "post", "image usage: avatar, event, listing or post")
}

func runUpload(cmd *cobra.Command, args []string) error {
	usage, _ := cmd.Flags().GetString("type")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	image, err := views.Upload().Image(cmd.Context(), args[0], f, usage)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(image)
	}
	printer.Success("Image uploaded")
	// Bare URL on stdout so the command composes in shell pipelines.
	fmt.Fprintln(cmd.OutOrStdout(), image.URL)
	return nil
}
