package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/internal/logger"
	"github.com/custodia-labs/ews-go/internal/store"
)

func newSyncCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize folders with resumable cursors",
		Long: `Synchronize folders incrementally. The SyncState returned by the server
is stored after every batch, so an interrupted sync resumes where it stopped
and later runs only report what changed since.`,
	}
	cmd.AddCommand(newSyncItemsCmd(a), newSyncHierarchyCmd(a), newSyncStatusCmd(a))
	return cmd
}

func newSyncItemsCmd(a *app) *cobra.Command {
	var reset bool
	var batch, maxBatches int
	cmd := &cobra.Command{
		Use:   "items <folder>",
		Short: "Report item changes in a folder since the last run",
		Example: `  ewsctl sync items inbox
  ewsctl sync items tasks --reset`,
		Args: cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *session, args []string) error {
			ctx := cmd.Context()
			folder, err := parseFolder(args[0])
			if err != nil {
				return err
			}
			st, err := s.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			key := folder.Name()
			if reset {
				if err := st.ResetSyncState(ctx, s.mailbox(), key, store.KindItems); err != nil {
					return err
				}
			}
			state, err := st.SyncState(ctx, s.mailbox(), key, store.KindItems)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			total := 0
			for n := 0; maxBatches == 0 || n < maxBatches; {
				res, err := s.svc.SyncFolderItems(ctx, folder, state, ews.SyncItemsOptions{
					Shape:      ews.NewItemShape(ews.IDOnly, ews.PathItemSubject),
					MaxChanges: batch,
				})
				if ews.CodeOf(err) == ews.ErrorInvalidSyncStateData && state != "" {
					logger.Warn("cli: stored sync state for %s was rejected, starting over", key)
					if err := st.ResetSyncState(ctx, s.mailbox(), key, store.KindItems); err != nil {
						return err
					}
					state = ""
					continue
				}
				if err != nil {
					return err
				}
				n++
				for _, c := range res.Changes {
					printItemChange(w, c)
				}
				total += len(res.Changes)
				state = res.SyncState
				if err := st.SaveSyncState(ctx, s.mailbox(), key, store.KindItems, state, res.IncludesLastItemInRange); err != nil {
					return err
				}
				if res.IncludesLastItemInRange {
					break
				}
			}
			success(w, "%d change(s) in %s", total, key)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored cursor and start over")
	cmd.Flags().IntVar(&batch, "batch", 100, "changes per request (1-512)")
	cmd.Flags().IntVar(&maxBatches, "max-batches", 0, "stop after this many requests (0 for no limit)")
	return cmd
}

func printItemChange(w io.Writer, c ews.ItemChange) {
	switch c.Type {
	case ews.ChangeCreate, ews.ChangeUpdate:
		fmt.Fprintf(w, "%-14s %s  %s\n", c.Type, c.ItemID.ID, c.Item.Subject())
	case ews.ChangeReadFlagChange:
		fmt.Fprintf(w, "%-14s %s  read=%t\n", c.Type, c.ItemID.ID, c.IsRead)
	default:
		fmt.Fprintf(w, "%-14s %s\n", c.Type, c.ItemID.ID)
	}
}

func newSyncHierarchyCmd(a *app) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "hierarchy",
		Short: "Report folder changes in the mailbox since the last run",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			ctx := cmd.Context()
			st, err := s.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if reset {
				if err := st.ResetSyncState(ctx, s.mailbox(), "", store.KindHierarchy); err != nil {
					return err
				}
			}
			state, err := st.SyncState(ctx, s.mailbox(), "", store.KindHierarchy)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			total := 0
			for {
				res, err := s.svc.SyncFolderHierarchy(ctx, nil, state, ews.FolderShape{BaseShape: ews.DefaultShape})
				if err != nil {
					return err
				}
				for _, c := range res.Changes {
					name := c.FolderID.ID
					if c.Folder != nil {
						name = c.Folder.DisplayName()
					}
					fmt.Fprintf(w, "%-8s %s\n", c.Type, name)
				}
				total += len(res.Changes)
				state = res.SyncState
				if err := st.SaveSyncState(ctx, s.mailbox(), "", store.KindHierarchy, state, res.IncludesLastFolderInRange); err != nil {
					return err
				}
				if res.IncludesLastFolderInRange {
					break
				}
			}
			success(w, "%d folder change(s)", total)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored cursor and start over")
	return cmd
}

func newSyncStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List stored cursors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadProfile()
			if err != nil {
				return err
			}
			st, err := store.Open(cmd.Context(), p.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			s := &session{profile: p}
			cursors, err := st.Cursors(cmd.Context(), s.mailbox())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(cursors) == 0 {
				none(w, "cursors")
				return nil
			}
			heading(w, "Cursors for %s", s.mailbox())
			for _, c := range cursors {
				folder := c.Folder
				if folder == "" {
					folder = "(mailbox)"
				}
				state := "partial"
				if c.Complete {
					state = "in sync"
				}
				fmt.Fprintf(w, "  %-20s %-10s %-8s %s\n", folder, c.Kind, state, c.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
