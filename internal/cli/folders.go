package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
)

func newUpdateFolderCmd(a *app) *cobra.Command {
	var name, changeKey string
	cmd := &cobra.Command{
		Use:     "update-folder <folder-id>",
		Short:   "Rename a folder",
		Example: `  ewsctl update-folder AAMkADAw... --name Archive`,
		Args:    cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			id, err := parseFolder(args[0])
			if err != nil {
				return err
			}
			if changeKey != "" {
				id = id.WithChangeKey(changeKey)
			} else if !id.IsDistinguished() {
				f, err := s.svc.GetFolder(cmd.Context(), id, ews.FolderShape{BaseShape: ews.IDOnly})
				if err != nil {
					return err
				}
				id = f.FolderID()
			}

			newID, err := s.svc.UpdateFolder(cmd.Context(), id, ews.SetItemField(ews.NewProperty(ews.PathFolderDisplayName, name)))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			success(w, "Renamed folder to %q", name)
			field(w, "Id", newID.ID)
			field(w, "ChangeKey", newID.ChangeKey)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&changeKey, "change-key", "", "change key of the folder (looked up when omitted)")
	return cmd
}
