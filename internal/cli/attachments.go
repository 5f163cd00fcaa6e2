package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
)

func newSaveAttachmentCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "save-attachment <item-id>",
		Short: "Save the file attachments of an item",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			ctx := cmd.Context()
			item, err := s.svc.GetItem(ctx, ews.NewItemID(args[0], ""),
				ews.NewItemShape(ews.IDOnly, ews.PathItemAttachments))
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			w := cmd.OutOrStdout()
			saved := 0
			for _, ref := range item.Attachments() {
				att, err := s.svc.GetAttachment(ctx, ref.ID(), ews.AttachmentShape{})
				if err != nil {
					return err
				}
				if att.Kind() != ews.FileAttachment {
					field(w, "Skipped item attachment", att.Name())
					continue
				}
				path := filepath.Join(dir, filepath.Base(att.Name()))
				n, err := att.WriteContentToFile(path)
				if err != nil {
					return err
				}
				field(w, "Saved", fmt.Sprintf("%s (%d bytes)", path, n))
				saved++
			}
			if saved == 0 {
				none(w, "file attachments")
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write attachments to")
	return cmd
}
