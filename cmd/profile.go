package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update your profile. Only the flags you pass are changed.

Examples:
  forumctl profile update --bio "Tinkerer, gardener"
  forumctl profile update --name "Ada Lovelace" --location "London"
  forumctl profile update --website https://ada.example.com`,
	RunE: runProfileUpdate,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)

	profileUpdateCmd.Flags().String("username", "", "public username")
	profileUpdateCmd.Flags().String("name", "", "full name")
	profileUpdateCmd.Flags().String("bio", "", "short bio")
	profileUpdateCmd.Flags().String("location", "", "location")
	profileUpdateCmd.Flags().String("website", "", "website URL")
	profileUpdateCmd.Flags().String("avatar", "", "avatar image URL")
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	updates := domain.ProfileUpdate{}
	updates.Username, _ = cmd.Flags().GetString("username")
	updates.FullName, _ = cmd.Flags().GetString("name")
	updates.Bio, _ = cmd.Flags().GetString("bio")
	updates.Location, _ = cmd.Flags().GetString("location")
	updates.Website, _ = cmd.Flags().GetString("website")
	updates.AvatarURL, _ = cmd.Flags().GetString("avatar")

	if updates == (domain.ProfileUpdate{}) {
		printer.Warning("Nothing to update: pass at least one flag")
		return nil
	}

	user, err := views.Auth().UpdateProfile(cmd.Context(), updates)
	if err != nil {
		return err
	}

	if jsonOut {
		return printer.JSON(user)
	}
	printer.Success("Profile updated for %s", user.Username)
	return nil
}
