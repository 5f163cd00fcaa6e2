package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/internal/store"
)

var eventNames = map[string]ews.EventType{
	"new":      ews.NewMailEvent,
	"created":  ews.CreatedEvent,
	"deleted":  ews.DeletedEvent,
	"modified": ews.ModifiedEvent,
	"moved":    ews.MovedEvent,
	"copied":   ews.CopiedEvent,
}

func newSubscribeCmd(a *app) *cobra.Command {
	var folders, events []string
	var timeout, polls int
	var interval time.Duration
	var resume, keep bool
	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Watch folders with a pull subscription",
		Long: `Create a pull subscription and poll it for events.

The watermark is stored after every poll. With --resume the last stored
subscription is recreated from its watermark so no events are missed.`,
		Example: `  ewsctl subscribe --folder inbox --event new --polls 10
  ewsctl subscribe --resume --keep`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *session, _ []string) error {
			ctx := cmd.Context()
			ids := make([]ews.FolderID, 0, len(folders))
			for _, f := range folders {
				id, err := parseFolder(f)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			types := make([]ews.EventType, 0, len(events))
			for _, e := range events {
				t, ok := eventNames[e]
				if !ok {
					return fmt.Errorf("unknown event %q", e)
				}
				types = append(types, t)
			}

			st, err := s.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			var sub *ews.Subscription
			if resume {
				prev, err := st.LastSubscription(ctx, s.mailbox())
				if err != nil && !errors.Is(err, store.ErrNoSubscription) {
					return err
				}
				if prev != nil {
					sub, err = s.svc.SubscribeFromWatermark(ctx, ids, types, timeout, prev.Watermark)
					if err != nil {
						return err
					}
					_ = st.DeleteSubscription(ctx, s.mailbox(), prev.ID)
				}
			}
			if sub == nil {
				sub, err = s.svc.Subscribe(ctx, ids, types, timeout)
				if err != nil {
					return err
				}
			}
			if err := st.SaveSubscription(ctx, s.mailbox(), sub); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			success(w, "Subscribed %s", sub.ID)
			for n := 0; polls == 0 || n < polls; n++ {
				if n > 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(interval):
					}
				}
				for {
					note, err := s.svc.GetEvents(ctx, sub)
					if err != nil {
						return err
					}
					for _, ev := range note.Events {
						printEvent(w, ev)
					}
					if err := st.SaveSubscription(ctx, s.mailbox(), sub); err != nil {
						return err
					}
					if !note.MoreEvents {
						break
					}
				}
			}

			if keep {
				return nil
			}
			if err := s.svc.Unsubscribe(ctx, sub.ID); err != nil {
				return err
			}
			if err := st.DeleteSubscription(ctx, s.mailbox(), sub.ID); err != nil {
				return err
			}
			success(w, "Unsubscribed %s", sub.ID)
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&folders, "folder", []string{string(ews.FolderInbox)}, "folders to watch")
	cmd.Flags().StringSliceVar(&events, "event", []string{"new", "created", "deleted", "modified", "moved"}, "events: new, created, deleted, modified, moved, copied")
	cmd.Flags().IntVar(&timeout, "timeout", 10, "minutes the server keeps an idle subscription (1-1440)")
	cmd.Flags().IntVar(&polls, "polls", 1, "number of polls (0 polls until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "time between polls")
	cmd.Flags().BoolVar(&resume, "resume", false, "recreate the last stored subscription from its watermark")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the subscription open for a later --resume")
	return cmd
}

func printEvent(w io.Writer, ev ews.Event) {
	id := ev.ItemID.ID
	if id == "" {
		id = ev.FolderID.Name()
	}
	fmt.Fprintf(w, "%-14s %s  %s\n", ev.Type, ev.TimeStamp, id)
}
