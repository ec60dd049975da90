package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/uniswap/internal/client/chat"
	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
)

const conversationsKey = "all"

func (a *App) Conversations(ctx context.Context, _ []string) error {
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.RouteMessages)

	convs, err := cached(ctx, a, viewcache.Conversations, conversationsKey, func(ctx context.Context) ([]models.Conversation, error) {
		return a.messages.Conversations(ctx, u.UserID)
	})
	if err != nil {
		return err
	}
	if len(convs) == 0 {
		a.println("No conversations yet.")
		return nil
	}
	a.table("PARTNER\tNAME\tUNREAD\tLAST MESSAGE\tWHEN", func(w *tabwriter.Writer) {
		for _, c := range convs {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				c.PartnerID, c.PartnerUsername, c.UnreadCount, shorten(c.LastMessage, 40), c.LastMessageTime)
		}
	})
	return nil
}

// Chat shows the thread with a partner and then sends every line typed
// until an empty one.
func (a *App) Chat(ctx context.Context, args []string) error {
	partnerID, err := idArg(args, "chat <partnerId> [itemId]")
	if err != nil {
		return err
	}
	var itemID int64
	if len(args) > 1 {
		if itemID, err = idArg(args[1:], "chat <partnerId> [itemId]"); err != nil {
			return err
		}
	}
	u, err := a.store.User()
	if err != nil {
		return err
	}
	a.router.Navigate(navigation.ChatRoute(strconv.FormatInt(partnerID, 10)))

	thread, err := cached(ctx, a, viewcache.Messages, strconv.FormatInt(partnerID, 10), func(ctx context.Context) ([]models.Message, error) {
		return a.messages.Conversation(ctx, u.UserID, partnerID)
	})
	if err != nil {
		return err
	}
	for _, m := range thread {
		a.printMessage(u.UserID, m)
	}
	if err := a.messages.MarkRead(ctx, u.UserID, partnerID); err != nil {
		a.log.Debug(ctx, "failed to mark conversation read", "error", err)
	}

	a.println("Type a message and press Enter to send. An empty line leaves the chat.")
	for {
		line, err := readLine(a.reader)
		if err != nil || line == "" {
			return nil
		}
		m, err := a.sender.Send(ctx, u.UserID, partnerID, line, itemID)
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
		case err != nil:
			a.report(ctx, err)
		default:
			a.printMessage(u.UserID, *m)
		}
	}
}

func (a *App) printMessage(me int64, m models.Message) {
	who := "?"
	if m.Sender != nil {
		who = m.Sender.Username
		if m.Sender.UserID == me {
			who = "me"
		}
	}
	a.printf("[%s] %s: %s\n", orDash(m.SentTime), who, m.Text)
}
